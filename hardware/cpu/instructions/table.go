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

// Table holds the two opcode maps of the CPU: the primary map and the
// 0xCB-prefixed extended map.
type Table struct {
	primary  [256]*Opcode
	extended [256]*Opcode
}

// NewTable is the preferred method of initialisation for the Table type.
// Every opcode is assembled from scratch on each call; a mistake in any of
// the definitions below causes an immediate panic.
func NewTable() *Table {
	fns := alu.NewFunctions()

	var primary [256]*OpcodeBuilder
	var extended [256]*OpcodeBuilder

	cmd := func(value int, label string) *OpcodeBuilder {
		if primary[value] != nil {
			panic(fmt.Sprintf("instructions: opcode table is malformed: %#02x registered twice (%s, %s)",
				value, primary[value].label, label))
		}
		b := NewOpcodeBuilder(fns, uint8(value), label)
		primary[value] = b
		return b
	}

	extCmd := func(value int, label string) *OpcodeBuilder {
		if extended[value] != nil {
			panic(fmt.Sprintf("instructions: opcode table is malformed: CB %#02x registered twice (%s, %s)",
				value, extended[value].label, label))
		}
		b := NewOpcodeBuilder(fns, uint8(value), label)
		extended[value] = b
		return b
	}

	load := func(value int, target string, source string) *OpcodeBuilder {
		return cmd(value, fmt.Sprintf("LD %s,%s", target, source)).CopyByte(target, source)
	}

	// operand orderings of the opcode grid rows
	regs := []string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	pairs := []string{"BC", "DE", "HL", "SP"}
	conds := []string{"NZ", "Z", "NC", "C"}

	cmd(0x00, "NOP")

	for i, t := range pairs {
		load(0x01+0x10*i, t, "d16")
	}

	load(0x02, "(BC)", "A")
	load(0x12, "(DE)", "A")
	load(0x0a, "A", "(BC)")
	load(0x1a, "A", "(DE)")

	for i, t := range pairs {
		cmd(0x03+0x10*i, "INC "+t).Load(t).AluUnary("INC").Store(t)
		cmd(0x0b+0x10*i, "DEC "+t).Load(t).AluUnary("DEC").Store(t)
		cmd(0x09+0x10*i, "ADD HL,"+t).Load("HL").Alu("ADD", t).Store("HL")
	}

	for i, t := range regs {
		cmd(0x04+0x08*i, "INC "+t).Load(t).AluUnary("INC").Store(t)
		cmd(0x05+0x08*i, "DEC "+t).Load(t).AluUnary("DEC").Store(t)
		load(0x06+0x08*i, t, "d8")
	}

	// the rotate-A forms always leave the zero flag clear, unlike their
	// extended-map counterparts
	cmd(0x07, "RLCA").Load("A").AluUnary("RLC").ClearZ().Store("A")
	cmd(0x0f, "RRCA").Load("A").AluUnary("RRC").ClearZ().Store("A")
	cmd(0x17, "RLA").Load("A").AluUnary("RL").ClearZ().Store("A")
	cmd(0x1f, "RRA").Load("A").AluUnary("RR").ClearZ().Store("A")

	load(0x08, "(a16)", "SP")

	cmd(0x10, "STOP")
	cmd(0x76, "HALT")

	cmd(0x18, "JR r8").Load("PC").Alu("ADD", "r8").Store("PC")
	for i, c := range conds {
		cmd(0x20+0x08*i, "JR "+c+",r8").Load("PC").ProceedIf(c).Alu("ADD", "r8").Store("PC")
	}

	// the post-increment/decrement loads update HL inside the memory access
	// cycle so the index arithmetic itself is free
	cmd(0x22, "LD (HL+),A").CopyByte("(HL)", "A").AluHL("INC")
	cmd(0x2a, "LD A,(HL+)").CopyByte("A", "(HL)").AluHL("INC")
	cmd(0x32, "LD (HL-),A").CopyByte("(HL)", "A").AluHL("DEC")
	cmd(0x3a, "LD A,(HL-)").CopyByte("A", "(HL)").AluHL("DEC")

	cmd(0x27, "DAA").Load("A").AluUnary("DAA").Store("A")
	cmd(0x2f, "CPL").Load("A").AluUnary("CPL").Store("A")
	cmd(0x37, "SCF").Load("A").AluUnary("SCF").Store("A")
	cmd(0x3f, "CCF").Load("A").AluUnary("CCF").Store("A")

	for i, t := range regs {
		for j, s := range regs {
			if o := 0x40 + 0x08*i + j; o != 0x76 {
				load(o, t, s)
			}
		}
	}

	for i, s := range regs {
		cmd(0x80+i, "ADD A,"+s).Load("A").Alu("ADD", s).Store("A")
	}
	for i, s := range regs {
		cmd(0x88+i, "ADC A,"+s).Load("A").Alu("ADC", s).Store("A")
	}
	for i, s := range regs {
		cmd(0x90+i, "SUB "+s).Load("A").Alu("SUB", s).Store("A")
	}
	for i, s := range regs {
		cmd(0x98+i, "SBC A,"+s).Load("A").Alu("SBC", s).Store("A")
	}
	for i, s := range regs {
		cmd(0xa0+i, "AND "+s).Load("A").Alu("AND", s).Store("A")
	}
	for i, s := range regs {
		cmd(0xa8+i, "XOR "+s).Load("A").Alu("XOR", s).Store("A")
	}
	for i, s := range regs {
		cmd(0xb0+i, "OR "+s).Load("A").Alu("OR", s).Store("A")
	}
	for i, s := range regs {
		cmd(0xb8+i, "CP "+s).Load("A").Alu("CP", s).Store("A")
	}

	cmd(0xc6, "ADD A,d8").Load("A").Alu("ADD", "d8").Store("A")
	cmd(0xce, "ADC A,d8").Load("A").Alu("ADC", "d8").Store("A")
	cmd(0xd6, "SUB d8").Load("A").Alu("SUB", "d8").Store("A")
	cmd(0xde, "SBC A,d8").Load("A").Alu("SBC", "d8").Store("A")
	cmd(0xe6, "AND d8").Load("A").Alu("AND", "d8").Store("A")
	cmd(0xee, "XOR d8").Load("A").Alu("XOR", "d8").Store("A")
	cmd(0xf6, "OR d8").Load("A").Alu("OR", "d8").Store("A")
	cmd(0xfe, "CP d8").Load("A").Alu("CP", "d8").Store("A")

	for i, c := range conds {
		cmd(0xc0+0x08*i, "RET "+c).ExtraCycle().ProceedIf(c).Pop().ForceFinish().Store("PC")
		cmd(0xc2+0x08*i, "JP "+c+",a16").Load("a16").ProceedIf(c).Store("PC").ExtraCycle()
		cmd(0xc4+0x08*i, "CALL "+c+",a16").ProceedIf(c).ExtraCycle().Load("PC").Push().Load("a16").Store("PC")
	}

	cmd(0xc9, "RET").Pop().ForceFinish().Store("PC")
	cmd(0xd9, "RETI").Pop().ForceFinish().Store("PC").SwitchInterrupts(true, false)
	cmd(0xc3, "JP a16").Load("a16").Store("PC").ExtraCycle()
	cmd(0xe9, "JP (HL)").Load("HL").Store("PC")
	cmd(0xcd, "CALL a16").Load("PC").ExtraCycle().Push().Load("a16").Store("PC")

	for i, t := range []string{"BC", "DE", "HL", "AF"} {
		cmd(0xc1+0x10*i, "POP "+t).Pop().Store(t)
		cmd(0xc5+0x10*i, "PUSH "+t).ExtraCycle().Load(t).Push()
	}

	for i := 0; i < 8; i++ {
		cmd(0xc7+0x08*i, fmt.Sprintf("RST %02XH", i*8)).Load("PC").Push().ForceFinish().LoadWord(i * 8).Store("PC")
	}

	load(0xe0, "(a8)", "A")
	load(0xf0, "A", "(a8)")
	load(0xe2, "(C)", "A")
	load(0xf2, "A", "(C)")
	load(0xea, "(a16)", "A")
	load(0xfa, "A", "(a16)")

	cmd(0xe8, "ADD SP,r8").Load("SP").Alu("ADD_SP", "r8").ExtraCycle().Store("SP")
	cmd(0xf8, "LD HL,SP+r8").Load("SP").Alu("ADD_SP", "r8").Store("HL")
	cmd(0xf9, "LD SP,HL").Load("HL").Store("SP").ExtraCycle()

	cmd(0xf3, "DI").SwitchInterrupts(false, true)
	cmd(0xfb, "EI").SwitchInterrupts(true, true)

	for i, t := range regs {
		extCmd(0x00+i, "RLC "+t).Load(t).AluUnary("RLC").Store(t)
		extCmd(0x08+i, "RRC "+t).Load(t).AluUnary("RRC").Store(t)
		extCmd(0x10+i, "RL "+t).Load(t).AluUnary("RL").Store(t)
		extCmd(0x18+i, "RR "+t).Load(t).AluUnary("RR").Store(t)
		extCmd(0x20+i, "SLA "+t).Load(t).AluUnary("SLA").Store(t)
		extCmd(0x28+i, "SRA "+t).Load(t).AluUnary("SRA").Store(t)
		extCmd(0x30+i, "SWAP "+t).Load(t).AluUnary("SWAP").Store(t)
		extCmd(0x38+i, "SRL "+t).Load(t).AluUnary("SRL").Store(t)
	}

	for b := 0; b < 8; b++ {
		for i, t := range regs {
			// BIT through HL is a single read with no writeback, so it has
			// its own micro-operation rather than a load/store pair
			if t == "(HL)" {
				extCmd(0x40+0x08*b+i, fmt.Sprintf("BIT %d,%s", b, t)).BitHL(b)
			} else {
				extCmd(0x40+0x08*b+i, fmt.Sprintf("BIT %d,%s", b, t)).Load(t).AluConst("BIT", b)
			}
			extCmd(0x80+0x08*b+i, fmt.Sprintf("RES %d,%s", b, t)).Load(t).AluConst("RES", b).Store(t)
			extCmd(0xc0+0x08*b+i, fmt.Sprintf("SET %d,%s", b, t)).Load(t).AluConst("SET", b).Store(t)
		}
	}

	t := &Table{}
	for i, b := range primary {
		if b != nil {
			t.primary[i] = b.Build()
		}
	}
	for i, b := range extended {
		if b != nil {
			t.extended[i] = b.Build()
		}
	}
	return t
}

// Primary returns the opcode for a value from the primary map. The result
// is nil for the 0xCB prefix byte and for the eleven encodings the CPU does
// not define; what happens on those is the dispatch loop's decision.
func (t *Table) Primary(code uint8) *Opcode {
	return t.primary[code]
}

// Extended returns the opcode for a value from the 0xCB-prefixed map. The
// extended map is fully populated.
func (t *Table) Extended(code uint8) *Opcode {
	return t.extended[code]
}
