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
	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
	"github.com/sganesh456/CoreBoy/hardware/memory/cpubus"
)

// Argument is one resolved token of the opcode grammar: a register name, an
// immediate form, or a memory reference written in parentheses. It knows how
// many operand bytes it consumes, whether resolving it touches memory, the
// data type of the value it produces, and how to read (and where possible,
// write) that value.
//
// Arguments are resolved only while the opcode table is being built. At run
// time the captured accessors do all the work.
type Argument struct {
	label         string
	operandLength int
	memory        bool
	dataType      alu.DataType

	read  func(r *registers.Registers, mem cpubus.Memory, operands []uint8) int
	write func(r *registers.Registers, mem cpubus.Memory, operands []uint8, value int)
}

// Label returns the grammar token this argument was resolved from.
func (arg *Argument) Label() string {
	return arg.label
}

// OperandLength returns the number of operand bytes the argument consumes.
func (arg *Argument) OperandLength() int {
	return arg.operandLength
}

// AccessesMemory reports whether resolving the argument reads or writes the
// bus.
func (arg *Argument) AccessesMemory() bool {
	return arg.memory
}

// DataType returns the width class of the value the argument produces.
func (arg *Argument) DataType() alu.DataType {
	return arg.dataType
}

// Read the argument's current value.
func (arg *Argument) Read(r *registers.Registers, mem cpubus.Memory, operands []uint8) int {
	return arg.read(r, mem, operands)
}

// Write a value through the argument. Immediate forms are not writable;
// the opcode builder refuses to build a store to them.
func (arg *Argument) Write(r *registers.Registers, mem cpubus.Memory, operands []uint8, value int) {
	arg.write(r, mem, operands, value)
}

func (arg *Argument) writable() bool {
	return arg.write != nil
}

func (arg *Argument) String() string {
	return arg.label
}

// word assembles the customary little endian operand pair.
func word(operands []uint8) int {
	return int(operands[1])<<8 | int(operands[0])
}

// signed reinterprets an operand byte as a two's complement displacement.
func signed(b uint8) int {
	return int(int8(b))
}

// the full grammar. every token an opcode label can mention appears here
// exactly once.
var arguments = []*Argument{
	{label: "A", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.A) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.A = uint8(v) }},
	{label: "B", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.B) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.B = uint8(v) }},
	{label: "C", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.C) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.C = uint8(v) }},
	{label: "D", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.D) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.D = uint8(v) }},
	{label: "E", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.E) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.E = uint8(v) }},
	{label: "H", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.H) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.H = uint8(v) }},
	{label: "L", dataType: alu.D8,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.L) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.L = uint8(v) }},

	{label: "AF", dataType: alu.D16,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.AF()) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.SetAF(uint16(v)) }},
	{label: "BC", dataType: alu.D16,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.BC()) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.SetBC(uint16(v)) }},
	{label: "DE", dataType: alu.D16,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.DE()) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.SetDE(uint16(v)) }},
	{label: "HL", dataType: alu.D16,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.HL()) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.SetHL(uint16(v)) }},
	{label: "SP", dataType: alu.D16,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.SP) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.SP = uint16(v) }},
	{label: "PC", dataType: alu.D16,
		read:  func(r *registers.Registers, _ cpubus.Memory, _ []uint8) int { return int(r.PC) },
		write: func(r *registers.Registers, _ cpubus.Memory, _ []uint8, v int) { r.PC = uint16(v) }},

	{label: "d8", operandLength: 1, dataType: alu.D8,
		read: func(_ *registers.Registers, _ cpubus.Memory, operands []uint8) int { return int(operands[0]) }},
	{label: "d16", operandLength: 2, dataType: alu.D16,
		read: func(_ *registers.Registers, _ cpubus.Memory, operands []uint8) int { return word(operands) }},
	{label: "r8", operandLength: 1, dataType: alu.R8,
		read: func(_ *registers.Registers, _ cpubus.Memory, operands []uint8) int { return signed(operands[0]) }},
	{label: "a16", operandLength: 2, dataType: alu.D16,
		read: func(_ *registers.Registers, _ cpubus.Memory, operands []uint8) int { return word(operands) }},

	{label: "(BC)", memory: true, dataType: alu.D8,
		read:  func(r *registers.Registers, mem cpubus.Memory, _ []uint8) int { return int(mem.Read(r.BC())) },
		write: func(r *registers.Registers, mem cpubus.Memory, _ []uint8, v int) { mem.Write(r.BC(), uint8(v)) }},
	{label: "(DE)", memory: true, dataType: alu.D8,
		read:  func(r *registers.Registers, mem cpubus.Memory, _ []uint8) int { return int(mem.Read(r.DE())) },
		write: func(r *registers.Registers, mem cpubus.Memory, _ []uint8, v int) { mem.Write(r.DE(), uint8(v)) }},
	{label: "(HL)", memory: true, dataType: alu.D8,
		read:  func(r *registers.Registers, mem cpubus.Memory, _ []uint8) int { return int(mem.Read(r.HL())) },
		write: func(r *registers.Registers, mem cpubus.Memory, _ []uint8, v int) { mem.Write(r.HL(), uint8(v)) }},

	// the high page forms address 0xff00 upwards
	{label: "(a8)", operandLength: 1, memory: true, dataType: alu.D8,
		read: func(_ *registers.Registers, mem cpubus.Memory, operands []uint8) int {
			return int(mem.Read(0xff00 | uint16(operands[0])))
		},
		write: func(_ *registers.Registers, mem cpubus.Memory, operands []uint8, v int) {
			mem.Write(0xff00|uint16(operands[0]), uint8(v))
		}},
	{label: "(a16)", operandLength: 2, memory: true, dataType: alu.D8,
		read: func(_ *registers.Registers, mem cpubus.Memory, operands []uint8) int {
			return int(mem.Read(uint16(word(operands))))
		},
		write: func(_ *registers.Registers, mem cpubus.Memory, operands []uint8, v int) {
			mem.Write(uint16(word(operands)), uint8(v))
		}},
	{label: "(C)", memory: true, dataType: alu.D8,
		read: func(r *registers.Registers, mem cpubus.Memory, _ []uint8) int {
			return int(mem.Read(0xff00 | uint16(r.C)))
		},
		write: func(r *registers.Registers, mem cpubus.Memory, _ []uint8, v int) {
			mem.Write(0xff00|uint16(r.C), uint8(v))
		}},
}

// ParseArgument resolves a grammar token to its Argument. An unknown token
// is an error; when the lookup happens on behalf of the opcode builder the
// error becomes a construction panic.
func ParseArgument(label string) (*Argument, error) {
	for _, arg := range arguments {
		if arg.label == label {
			return arg, nil
		}
	}
	return nil, fmt.Errorf("instructions: not an argument: %s", label)
}
