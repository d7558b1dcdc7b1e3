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

// Package oambug identifies accesses that wake the OAM corruption bug of the
// DMG. When the CPU drives a sixteen bit value in the 0xfe00 to 0xfeff range
// onto the address bus through one of a handful of operations (sixteen bit
// increment/decrement, stack push/pop, the post-increment/decrement HL
// loads) while the PPU is scanning sprite memory, rows of OAM are corrupted
// in a pattern that depends on the operation.
//
// This package only classifies. Micro-operations report which corruption
// pattern they have triggered and the dispatch loop, which knows whether the
// PPU is in a vulnerable mode, applies the corresponding corruption to
// sprite memory (or not).
package oambug

import (
	"github.com/sganesh456/CoreBoy/hardware/cpu/alu"
)

// Corruption identifies the OAM corruption pattern an operation triggers.
// A value other than None does not mean corruption has happened, only that
// this access is of the corrupting type.
type Corruption string

// List of corruption patterns.
const (
	None Corruption = ""

	// a sixteen bit increment or decrement of a value in the OAM window
	IncDec Corruption = "16-bit inc/dec"

	// the two write steps of a stack push landing in the OAM window
	PushHigh Corruption = "push high byte"
	PushLow  Corruption = "push low byte"

	// the two read steps of a stack pop landing in the OAM window
	PopLow  Corruption = "pop low byte"
	PopHigh Corruption = "pop high byte"

	// the fused HL increment/decrement of the LD (HL+)/(HL-) family
	LoadHL Corruption = "ld (hl) inc/dec"
)

// InOAMArea reports whether an address falls inside the vulnerable window.
// Only the low sixteen bits of the value are considered.
func InOAMArea(address int) bool {
	a := address & 0xffff
	return a >= 0xfe00 && a <= 0xfeff
}

// Triggers reports whether applying the ALU function to the given address
// wakes the bug. Only the two sixteen bit INC/DEC functions qualify, and
// only when the address is in the OAM window.
func Triggers(fn *alu.Func, address int) bool {
	if fn.DataType() != alu.D16 {
		return false
	}
	if op := fn.Operation(); op != "INC" && op != "DEC" {
		return false
	}
	return InOAMArea(address)
}
