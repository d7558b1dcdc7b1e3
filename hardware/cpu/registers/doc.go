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

// Package registers implements the register file of the Game Boy CPU (the
// Sharp SM83). The eight bit registers A, B, C, D, E, H and L are plain
// fields; the paired sixteen bit views AF, BC, DE and HL are accessed
// through methods that compose and decompose the halves. The stack pointer
// and program counter are sixteen bit fields.
//
// The flag register F never exists as a plain byte. The Flags type stores
// the four flags as booleans and converts to and from the byte layout on
// demand, which keeps the unused low nibble clear without masking at every
// write.
package registers
