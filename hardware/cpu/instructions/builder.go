// This file is part of CoreBoy.
//
// CoreBoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoreBoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoreBoy.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	"fmt"

	"github.com/sganesh456/CoreBoy/hardware/cpu/alu"
)

// OpcodeBuilder assembles the micro-operation sequence for one opcode. The
// fluent methods mirror the way the instructions read in the CPU manual:
// loads put a value into the context, ALU steps transform it, stores write
// it out.
//
// The builder validates as it goes. Any mistake in a table definition, an
// unknown argument token, a missing ALU function, a store of the wrong
// width, is a bug in the table itself and not something a running emulator
// can recover from, so the builder panics rather than returning errors.
type OpcodeBuilder struct {
	fns   *alu.Functions
	value uint8
	label string
	ops   []*Op

	// data type of the value currently in the context
	last   alu.DataType
	loaded bool
}

// NewOpcodeBuilder is the preferred method of initialisation for the
// OpcodeBuilder type. ALU steps are resolved against fns.
func NewOpcodeBuilder(fns *alu.Functions, value uint8, label string) *OpcodeBuilder {
	return &OpcodeBuilder{
		fns:   fns,
		value: value,
		label: label,
	}
}

func (b *OpcodeBuilder) malformed(msg string) {
	panic(fmt.Sprintf("instructions: opcode table is malformed: %#02x (%s): %s", b.value, b.label, msg))
}

func (b *OpcodeBuilder) mustArgument(label string) *Argument {
	arg, err := ParseArgument(label)
	if err != nil {
		b.malformed(fmt.Sprintf("not an argument: %s", label))
	}
	return arg
}

func (b *OpcodeBuilder) mustFunc(operation string, dt alu.DataType) *alu.Func {
	fn, err := b.fns.Find(operation, dt)
	if err != nil {
		b.malformed(fmt.Sprintf("no ALU function for %s %s", operation, dt))
	}
	return fn
}

func (b *OpcodeBuilder) mustBiFunc(operation string, dt1 alu.DataType, dt2 alu.DataType) *alu.BiFunc {
	fn, err := b.fns.FindBi(operation, dt1, dt2)
	if err != nil {
		b.malformed(fmt.Sprintf("no ALU function for %s %s %s", operation, dt1, dt2))
	}
	return fn
}

// CopyByte moves a value from source to target in one load/store pair. All
// the LD instructions are this.
func (b *OpcodeBuilder) CopyByte(target string, source string) *OpcodeBuilder {
	return b.Load(source).Store(target)
}

// Load puts the value of source into the context.
func (b *OpcodeBuilder) Load(source string) *OpcodeBuilder {
	arg := b.mustArgument(source)
	b.ops = append(b.ops, &Op{kind: opLoad, arg: arg})
	b.last = arg.DataType()
	b.loaded = true
	return b
}

// LoadWord puts a literal word into the context.
func (b *OpcodeBuilder) LoadWord(value int) *OpcodeBuilder {
	b.ops = append(b.ops, &Op{kind: opLoadWord, value: value})
	b.last = alu.D16
	b.loaded = true
	return b
}

// Store writes the context to target. A word store to the (a16) indirection
// becomes two byte stores, low byte first, each costing its own cycle.
func (b *OpcodeBuilder) Store(target string) *OpcodeBuilder {
	arg := b.mustArgument(target)

	if !b.loaded {
		b.malformed(fmt.Sprintf("store to %s with nothing loaded", target))
	}

	if b.last == alu.D16 && arg.Label() == "(a16)" {
		b.ops = append(b.ops,
			&Op{kind: opStoreWordLSB, arg: arg},
			&Op{kind: opStoreWordMSB, arg: arg},
		)
		return b
	}

	if !arg.writable() {
		b.malformed(fmt.Sprintf("%s is not writable", target))
	}

	if b.last != arg.DataType() {
		b.malformed(fmt.Sprintf("cannot store %s into %s", b.last, arg.Label()))
	}

	b.ops = append(b.ops, &Op{kind: opStore, arg: arg})
	return b
}

// ProceedIf makes the rest of the instruction conditional on one of the
// four condition codes.
func (b *OpcodeBuilder) ProceedIf(cond string) *OpcodeBuilder {
	c, err := parseCondition(cond)
	if err != nil {
		b.malformed(fmt.Sprintf("not a condition: %s", cond))
	}
	b.ops = append(b.ops, &Op{kind: opProceedIf, cond: c})
	return b
}

// Push writes the context word to the stack, high byte first, decrementing
// SP before each write.
func (b *OpcodeBuilder) Push() *OpcodeBuilder {
	dec := b.mustFunc("DEC", alu.D16)
	b.ops = append(b.ops,
		&Op{kind: opPushHigh, fn: dec},
		&Op{kind: opPushLow, fn: dec},
	)
	return b
}

// Pop reads a word from the stack into the context, low byte first,
// incrementing SP after each read.
func (b *OpcodeBuilder) Pop() *OpcodeBuilder {
	inc := b.mustFunc("INC", alu.D16)
	b.ops = append(b.ops,
		&Op{kind: opPopLow, fn: inc},
		&Op{kind: opPopHigh, fn: inc},
	)
	b.last = alu.D16
	b.loaded = true
	return b
}

// Alu applies a binary ALU operation to the context and a second operand
// read through an addressing mode. Word-wide operations are followed by a
// wait cycle, matching the real CPU's extra cycle on its 16-bit adder.
func (b *OpcodeBuilder) Alu(operation string, operand string) *OpcodeBuilder {
	arg := b.mustArgument(operand)
	if !b.loaded {
		b.malformed(fmt.Sprintf("%s with nothing loaded", operation))
	}
	bi := b.mustBiFunc(operation, b.last, arg.DataType())
	b.ops = append(b.ops, &Op{kind: opAlu, arg: arg, bi: bi})
	if b.last == alu.D16 {
		b.ExtraCycle()
	}
	return b
}

// AluConst applies a binary ALU operation to the context and a literal
// byte.
func (b *OpcodeBuilder) AluConst(operation string, value int) *OpcodeBuilder {
	if !b.loaded {
		b.malformed(fmt.Sprintf("%s with nothing loaded", operation))
	}
	bi := b.mustBiFunc(operation, b.last, alu.D8)
	b.ops = append(b.ops, &Op{kind: opAluConst, bi: bi, value: value})
	if b.last == alu.D16 {
		b.ExtraCycle()
	}
	return b
}

// AluUnary applies a unary ALU operation to the context. As with Alu, the
// word-wide form takes a wait cycle.
func (b *OpcodeBuilder) AluUnary(operation string) *OpcodeBuilder {
	if !b.loaded {
		b.malformed(fmt.Sprintf("%s with nothing loaded", operation))
	}
	fn := b.mustFunc(operation, b.last)
	b.ops = append(b.ops, &Op{kind: opAluUnary, fn: fn})
	if b.last == alu.D16 {
		b.ExtraCycle()
	}
	return b
}

// AluHL increments or decrements HL without the wait cycle a word-wide
// AluUnary would take. The post-increment and post-decrement loads
// ("LD (HL+),A" and friends) hide the index update inside the memory access
// cycle, so the update itself must be free.
func (b *OpcodeBuilder) AluHL(operation string) *OpcodeBuilder {
	b.Load("HL")
	fn := b.mustFunc(operation, alu.D16)
	b.ops = append(b.ops, &Op{kind: opAluHL, fn: fn})
	return b.Store("HL")
}

// BitHL tests one bit of the byte HL points at. Unlike the register forms
// there is no load/store pair; the single read is the whole operation.
func (b *OpcodeBuilder) BitHL(bit int) *OpcodeBuilder {
	bi := b.mustBiFunc("BIT", alu.D8, alu.D8)
	b.ops = append(b.ops, &Op{kind: opBitHL, bi: bi, value: bit})
	return b
}

// ClearZ forces the zero flag off. The RLCA/RLA/RRCA/RRA forms share ALU
// functions with their CB-prefixed cousins but always leave Z clear.
func (b *OpcodeBuilder) ClearZ() *OpcodeBuilder {
	b.ops = append(b.ops, &Op{kind: opClearZ})
	return b
}

// SwitchInterrupts changes the interrupt master enable through the
// interrupt controller.
func (b *OpcodeBuilder) SwitchInterrupts(enable bool, delayed bool) *OpcodeBuilder {
	b.ops = append(b.ops, &Op{kind: opSwitchInterrupts, enable: enable, delayed: delayed})
	return b
}

// ExtraCycle inserts a wait cycle.
func (b *OpcodeBuilder) ExtraCycle() *OpcodeBuilder {
	b.ops = append(b.ops, &Op{kind: opExtraCycle})
	return b
}

// ForceFinish inserts a step that ends the current machine cycle without
// touching memory.
func (b *OpcodeBuilder) ForceFinish() *OpcodeBuilder {
	b.ops = append(b.ops, &Op{kind: opForceFinish})
	return b
}

// Build assembles the final Opcode. The operand length of the opcode is the
// widest requirement among its ops; the same two operand bytes are visible
// to every op in the sequence.
func (b *OpcodeBuilder) Build() *Opcode {
	length := 0
	for _, op := range b.ops {
		if l := op.OperandLength(); l > length {
			length = l
		}
	}
	return &Opcode{
		value:  b.value,
		label:  b.label,
		ops:    b.ops,
		length: length,
	}
}

func (b *OpcodeBuilder) String() string {
	return b.label
}
