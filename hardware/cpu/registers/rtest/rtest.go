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

// Package rtest contains assertion helpers for the register file, for use in
// testing packages that drive the CPU registers.
package rtest

import (
	"testing"

	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
)

// EquateFlags compares the flags register against a four character string in
// the style of the Flags Stringer: one character per flag in ZNHC order, upper
// case meaning set and lower case meaning unset. For example, "Znhc" asserts
// that only the zero flag is set.
func EquateFlags(t *testing.T, f registers.Flags, expected string) {
	t.Helper()

	if len(expected) != 4 {
		t.Fatalf("flag expectation must be a string of 4 chars (got %q)", expected)
	}

	if expected[0] != 'z' && !f.Zero || expected[0] != 'Z' && f.Zero {
		t.Errorf("unexpected zero flag (%s - wanted %s)", f.String(), expected)
	}
	if expected[1] != 'n' && !f.Subtract || expected[1] != 'N' && f.Subtract {
		t.Errorf("unexpected subtract flag (%s - wanted %s)", f.String(), expected)
	}
	if expected[2] != 'h' && !f.HalfCarry || expected[2] != 'H' && f.HalfCarry {
		t.Errorf("unexpected half-carry flag (%s - wanted %s)", f.String(), expected)
	}
	if expected[3] != 'c' && !f.Carry || expected[3] != 'C' && f.Carry {
		t.Errorf("unexpected carry flag (%s - wanted %s)", f.String(), expected)
	}
}

// EquatePair compares a sixteen bit register pairing against an expected
// value.
func EquatePair(t *testing.T, label string, pair uint16, expected int) {
	t.Helper()

	if int(pair) != expected {
		t.Errorf("unexpected %s value (%#04x - wanted %#04x)", label, pair, expected)
	}
}
