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

package registers

import (
	"fmt"
)

// Registers is the register file of the CPU. The eight bit registers are
// addressable directly and through the usual sixteen bit pairings. F is
// only ever accessed as a pairing (through AF) or as individual flags.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags

	SP uint16
	PC uint16
}

// NewRegisters is the preferred method of initialisation for the register
// file. All registers begin at zero; the boot sequence is responsible for
// any post-boot values.
func NewRegisters() *Registers {
	return &Registers{}
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x %s",
		r.AF(), r.BC(), r.DE(), r.HL(), r.SP, r.PC, r.F.String())
}

// AF returns the A register and the flags as a sixteen bit value.
func (r Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Value())
}

// SetAF loads the A register and the flags from a sixteen bit value. The low
// nibble of the flag half is discarded, as it is by the hardware.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F.SetValue(uint8(v))
}

// BC returns the B and C registers as a sixteen bit value.
func (r Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC loads the B and C registers from a sixteen bit value.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the D and E registers as a sixteen bit value.
func (r Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE loads the D and E registers from a sixteen bit value.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the H and L registers as a sixteen bit value.
func (r Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL loads the H and L registers from a sixteen bit value.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// IncrementPC advances the program counter by one, wrapping at the top of
// the address space.
func (r *Registers) IncrementPC() {
	r.PC++
}
