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

package registers_test

import (
	"testing"

	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
	"github.com/sganesh456/CoreBoy/hardware/cpu/registers/rtest"
	"github.com/sganesh456/CoreBoy/test"
)

func TestPairings(t *testing.T) {
	r := registers.NewRegisters()

	// all registers start at zero
	rtest.EquatePair(t, "AF", r.AF(), 0x0000)
	rtest.EquatePair(t, "BC", r.BC(), 0x0000)
	rtest.EquatePair(t, "DE", r.DE(), 0x0000)
	rtest.EquatePair(t, "HL", r.HL(), 0x0000)

	// setting the pairing sets the halves
	r.SetBC(0x1234)
	test.Equate(t, r.B, 0x12)
	test.Equate(t, r.C, 0x34)
	rtest.EquatePair(t, "BC", r.BC(), 0x1234)

	// setting the halves sets the pairing
	r.D = 0xab
	r.E = 0xcd
	rtest.EquatePair(t, "DE", r.DE(), 0xabcd)

	r.SetHL(0xc000)
	test.Equate(t, r.H, 0xc0)
	test.Equate(t, r.L, 0x00)

	// pairings wrap independently of one another
	r.SetBC(0xffff)
	r.SetDE(0x0000)
	rtest.EquatePair(t, "BC", r.BC(), 0xffff)
	rtest.EquatePair(t, "DE", r.DE(), 0x0000)
}

func TestAFMasking(t *testing.T) {
	r := registers.NewRegisters()

	// the low nibble of F reads as zero no matter what is loaded
	r.SetAF(0x12ff)
	test.Equate(t, r.A, 0x12)
	rtest.EquatePair(t, "AF", r.AF(), 0x12f0)
	rtest.EquateFlags(t, r.F, "ZNHC")

	r.SetAF(0x340f)
	rtest.EquatePair(t, "AF", r.AF(), 0x3400)
	rtest.EquateFlags(t, r.F, "znhc")

	// individual flags land in the right bits
	r.F.Reset()
	r.F.Zero = true
	r.F.Carry = true
	rtest.EquatePair(t, "AF", r.AF(), 0x3490)
}

func TestFlagsValue(t *testing.T) {
	f := registers.NewFlags()

	test.Equate(t, f.Value(), 0x00)
	test.Equate(t, f.String(), "znhc")

	f.Zero = true
	test.Equate(t, f.Value(), 0x80)
	test.Equate(t, f.String(), "Znhc")

	f.Subtract = true
	test.Equate(t, f.Value(), 0xc0)

	f.HalfCarry = true
	test.Equate(t, f.Value(), 0xe0)

	f.Carry = true
	test.Equate(t, f.Value(), 0xf0)
	test.Equate(t, f.String(), "ZNHC")

	// round trip through the byte layout
	var g registers.Flags
	g.SetValue(f.Value())
	test.Equate(t, g.Value(), 0xf0)

	// low nibble is discarded on the way in
	g.SetValue(0x5f)
	test.Equate(t, g.Value(), 0x50)
	rtest.EquateFlags(t, g, "zNhC")
}

func TestIncrementPC(t *testing.T) {
	r := registers.NewRegisters()

	r.PC = 0xfffe
	r.IncrementPC()
	test.Equate(t, r.PC, 0xffff)

	// wraps at the top of the address space
	r.IncrementPC()
	test.Equate(t, r.PC, 0x0000)
}
