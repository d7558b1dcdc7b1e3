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

// Package alu implements the arithmetic and logic operations of the Game Boy
// CPU as a registry of named functions. Each function is registered under an
// operation name and the data type (or pair of data types) it operates on,
// so "INC" on a byte and "INC" on a word are two distinct functions with
// distinct flag behaviour. The opcode table looks functions up by that key
// while it is being built; a failed lookup at that point is a malformed
// table.
//
// Functions mutate the flags register directly and return the result value.
// Results are returned in the int domain with the usual 0xff/0xffff masking
// applied; the caller is responsible for narrowing the value back into a
// register. The two sixteen bit INC/DEC functions deliberately leave every
// flag untouched, matching the hardware, and they double as the identity
// markers for OAM corruption classification.
package alu
