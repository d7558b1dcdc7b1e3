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
	"github.com/sganesh456/CoreBoy/hardware/cpu/oambug"
	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
	"github.com/sganesh456/CoreBoy/hardware/interrupts"
	"github.com/sganesh456/CoreBoy/hardware/memory/cpubus"
)

// opKind enumerates every micro-operation the opcode builder can emit. The
// set is closed: an instruction is a sequence of these and nothing else.
type opKind int

const (
	opLoad opKind = iota
	opLoadWord
	opStore
	opStoreWordLSB
	opStoreWordMSB
	opProceedIf
	opPushHigh
	opPushLow
	opPopLow
	opPopHigh
	opAlu
	opAluConst
	opAluUnary
	opAluHL
	opBitHL
	opClearZ
	opSwitchInterrupts
	opExtraCycle
	opForceFinish
)

// condition is one of the four condition codes a conditional instruction
// can test.
type condition int

const (
	condNZ condition = iota
	condZ
	condNC
	condC
)

func parseCondition(label string) (condition, error) {
	switch label {
	case "NZ":
		return condNZ, nil
	case "Z":
		return condZ, nil
	case "NC":
		return condNC, nil
	case "C":
		return condC, nil
	}
	return 0, fmt.Errorf("instructions: not a condition: %s", label)
}

func (c condition) holds(f *registers.Flags) bool {
	switch c {
	case condNZ:
		return !f.Zero
	case condZ:
		return f.Zero
	case condNC:
		return !f.Carry
	case condC:
		return f.Carry
	}
	return false
}

func (c condition) String() string {
	switch c {
	case condNZ:
		return "NZ"
	case condZ:
		return "Z"
	case condNC:
		return "NC"
	case condC:
		return "C"
	}
	return "unknown"
}

// Op is a single micro-operation of an instruction. The dispatch loop walks
// an opcode's ops in order, threading the context value from one Execute to
// the next and allotting a machine cycle to every op that touches memory.
//
// Op values are built by the opcode builder and never change afterwards.
type Op struct {
	kind opKind

	arg     *Argument   // load, store and binary ALU operand
	fn      *alu.Func   // unary ALU steps, including push/pop SP arithmetic
	bi      *alu.BiFunc // binary ALU steps
	value   int         // word literal, ALU literal or bit index
	cond    condition   // proceedIf
	enable  bool        // switchInterrupts
	delayed bool
}

// ReadsMemory reports whether executing the op performs a bus read, which
// costs a machine cycle.
func (op *Op) ReadsMemory() bool {
	switch op.kind {
	case opLoad, opAlu:
		return op.arg.AccessesMemory()
	case opPopLow, opPopHigh, opBitHL:
		return true
	case opExtraCycle:
		// claims a read so the dispatch loop allots the wait cycle
		return true
	}
	return false
}

// WritesMemory reports whether executing the op performs a bus write, which
// costs a machine cycle.
func (op *Op) WritesMemory() bool {
	switch op.kind {
	case opStore:
		return op.arg.AccessesMemory()
	case opStoreWordLSB, opStoreWordMSB, opPushHigh, opPushLow:
		return true
	}
	return false
}

// OperandLength returns the number of operand bytes the op expects to find
// in the operand buffer.
func (op *Op) OperandLength() int {
	switch op.kind {
	case opLoad, opStore, opAlu:
		return op.arg.OperandLength()
	case opStoreWordLSB, opStoreWordMSB:
		return 2
	}
	return 0
}

// Proceed reports whether the dispatch loop should continue with the
// remaining ops of the instruction. Only the conditional op ever answers
// no; a false answer ends the instruction early, which is what shortens
// branch-not-taken timings.
func (op *Op) Proceed(r *registers.Registers) bool {
	if op.kind == opProceedIf {
		return op.cond.holds(&r.F)
	}
	return true
}

// Execute the op. The context value carries intermediate results from op to
// op within one instruction; Execute returns the context for the next op.
func (op *Op) Execute(r *registers.Registers, mem cpubus.Memory, operands []uint8, context int) int {
	switch op.kind {
	case opLoad:
		return op.arg.Read(r, mem, operands)

	case opLoadWord:
		return op.value

	case opStore:
		op.arg.Write(r, mem, operands, context)

	case opStoreWordLSB:
		mem.Write(uint16(word(operands)), uint8(context))

	case opStoreWordMSB:
		mem.Write(uint16(word(operands)+1), uint8(context>>8))

	case opPushHigh:
		r.SP = uint16(op.fn.Apply(&r.F, int(r.SP)))
		mem.Write(r.SP, uint8(context>>8))

	case opPushLow:
		r.SP = uint16(op.fn.Apply(&r.F, int(r.SP)))
		mem.Write(r.SP, uint8(context))

	case opPopLow:
		v := int(mem.Read(r.SP))
		r.SP = uint16(op.fn.Apply(&r.F, int(r.SP)))
		return v

	case opPopHigh:
		v := int(mem.Read(r.SP))
		r.SP = uint16(op.fn.Apply(&r.F, int(r.SP)))
		return context | v<<8

	case opAlu:
		return op.bi.Apply(&r.F, context, op.arg.Read(r, mem, operands))

	case opAluConst:
		return op.bi.Apply(&r.F, context, op.value)

	case opAluUnary, opAluHL:
		return op.fn.Apply(&r.F, context)

	case opBitHL:
		op.bi.Apply(&r.F, int(mem.Read(r.HL())), op.value)

	case opClearZ:
		r.F.Zero = false
	}

	// proceedIf, switchInterrupts, extraCycle and forceFinish all leave the
	// context alone
	return context
}

// SwitchInterrupts forwards the op's interrupt change, if it carries one, to
// the controller. The dispatch loop calls this after Execute for every op.
func (op *Op) SwitchInterrupts(ic interrupts.Controller) {
	if op.kind != opSwitchInterrupts {
		return
	}
	if op.enable {
		ic.EnableInterrupts(op.delayed)
	} else {
		ic.DisableInterrupts(op.delayed)
	}
}

// ForceFinishCycle reports whether the op must be the last one serviced in
// the current machine cycle even though it performs no memory access.
func (op *Op) ForceFinishCycle() bool {
	return op.kind == opForceFinish
}

// CausesOAMBug classifies the OAM corruption, if any, this op has triggered.
// The dispatch loop queries it after Execute, so the stack steps judge the
// stack pointer they have just moved and the inc/dec steps judge the context
// value they have just produced.
func (op *Op) CausesOAMBug(r *registers.Registers, context int) oambug.Corruption {
	switch op.kind {
	case opAluUnary:
		if oambug.Triggers(op.fn, context) {
			return oambug.IncDec
		}

	case opAluHL:
		if oambug.Triggers(op.fn, context) {
			return oambug.LoadHL
		}

	case opPushHigh:
		if oambug.InOAMArea(int(r.SP)) {
			return oambug.PushHigh
		}

	case opPushLow:
		if oambug.InOAMArea(int(r.SP)) {
			return oambug.PushLow
		}

	case opPopLow:
		if oambug.InOAMArea(int(r.SP)) {
			return oambug.PopLow
		}

	case opPopHigh:
		if oambug.InOAMArea(int(r.SP)) {
			return oambug.PopHigh
		}
	}

	return oambug.None
}

// String writes the op in the pipeline notation used for disassembly and
// debugging: [_] is the context as a byte, [__] the context as a word.
func (op *Op) String() string {
	switch op.kind {
	case opLoad:
		return fmt.Sprintf("%s → [%s]", op.arg, contextMark(op.arg.DataType()))
	case opLoadWord:
		return fmt.Sprintf("%#04x → [__]", op.value)
	case opStore:
		return fmt.Sprintf("[%s] → %s", contextMark(op.arg.DataType()), op.arg)
	case opStoreWordLSB:
		return "[ _] → (a16)"
	case opStoreWordMSB:
		return "[_ ] → (a16+1)"
	case opProceedIf:
		return fmt.Sprintf("? %s:", op.cond)
	case opPushHigh:
		return "[_ ] → (SP--)"
	case opPushLow:
		return "[ _] → (SP--)"
	case opPopLow:
		return "(SP++) → [ _]"
	case opPopHigh:
		return "(SP++) → [_ ]"
	case opAlu:
		dt, _ := op.bi.DataTypes()
		return fmt.Sprintf("%s([%s],%s) → [%s]",
			op.bi.Operation(), contextMark(dt), op.arg, contextMark(dt))
	case opAluConst:
		return fmt.Sprintf("%s([_],%d) → [_]", op.bi.Operation(), op.value)
	case opAluUnary:
		return fmt.Sprintf("%s([%s]) → [%s]", op.fn.Operation(), contextMark(op.fn.DataType()), contextMark(op.fn.DataType()))
	case opAluHL:
		return fmt.Sprintf("%s(HL)", op.fn.Operation())
	case opBitHL:
		return fmt.Sprintf("BIT(%d,(HL))", op.value)
	case opClearZ:
		return "0 → Z"
	case opSwitchInterrupts:
		s := "disable interrupts"
		if op.enable {
			s = "enable interrupts"
		}
		if op.delayed {
			s += " (delayed)"
		}
		return s
	case opExtraCycle:
		return "wait cycle"
	case opForceFinish:
		return "finish cycle"
	}
	return "unknown op"
}

func contextMark(dt alu.DataType) string {
	if dt == alu.D16 {
		return "__"
	}
	return "_"
}
