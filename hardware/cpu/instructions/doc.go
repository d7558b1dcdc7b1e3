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

// Package instructions defines every opcode of the Game Boy CPU as a
// sequence of micro-operations. Each micro-operation is sized to fit inside
// one machine cycle, which is what lets the surrounding emulation interleave
// the video, audio and timer subsystems at cycle granularity.
//
// The two opcode maps are assembled by NewTable. Lookup is by the numeric
// opcode value, with 0xCB-prefixed opcodes in their own map.
//
//	table := instructions.NewTable()
//	opcode := table.Primary(0xc5)
//
// The dispatch loop is expected to fetch opcode.OperandLength() bytes from
// the instruction stream and then walk opcode.Ops() in order, threading the
// context value returned by each Execute into the next:
//
//	operands := fetch(opcode.OperandLength())
//	context := 0
//	for _, op := range opcode.Ops() {
//		if !op.Proceed(regs) {
//			break
//		}
//		context = op.Execute(regs, mem, operands, context)
//		op.SwitchInterrupts(ic)
//		if corruption := op.CausesOAMBug(regs, context); corruption != oambug.None {
//			// apply the corruption pattern if the PPU is mid OAM scan
//		}
//	}
//
// A machine cycle should be charged for the opcode fetch (two for the 0xCB
// prefix), for each operand byte, for each op that answers true to
// ReadsMemory or WritesMemory, and for each op that answers true to
// ForceFinishCycle. Walked that way, the table reproduces the documented
// instruction timings exactly, including the shortened timings of branches
// not taken.
//
// The micro-operation walk, and therefore this package, never decides what
// an interrupt, a HALT or a STOP does. The HALT and STOP opcodes decode to
// empty sequences and the eleven undefined encodings to nil; acting on them
// is the dispatch loop's business.
package instructions
