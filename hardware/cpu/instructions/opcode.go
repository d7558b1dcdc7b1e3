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

import "fmt"

// Opcode is one fully assembled instruction: its numeric value, mnemonic
// label, micro-operation sequence and operand byte count.
type Opcode struct {
	value  uint8
	label  string
	ops    []*Op
	length int
}

// Value returns the numeric opcode.
func (oc *Opcode) Value() uint8 {
	return oc.value
}

// Label returns the mnemonic, in the notation of the CPU manual.
func (oc *Opcode) Label() string {
	return oc.label
}

// Ops returns the micro-operation sequence. The dispatch loop walks it in
// order; callers must not modify it.
func (oc *Opcode) Ops() []*Op {
	return oc.ops
}

// OperandLength returns how many instruction-stream bytes follow the opcode
// itself, 0 to 2. The dispatch loop fetches these before running any op and
// presents the same buffer to every op in the sequence.
func (oc *Opcode) OperandLength() int {
	return oc.length
}

func (oc *Opcode) String() string {
	return fmt.Sprintf("%#02x %s", oc.value, oc.label)
}
