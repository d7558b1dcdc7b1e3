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

package test

import "testing"

// ExpectedPanic fails the test if the supplied function runs to completion
// without panicking. Malformed opcode table definitions are programming
// errors and surface as panics during table construction, so tests for those
// paths want the panic to happen.
func ExpectedPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()

	f()
}
