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

// Package cpubus defines how the CPU sees memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every memory area implements this interface because every area is
// accessible from the CPU; a full machine composes the areas behind a single
// implementation that routes by address.
//
// Reads and writes are total. There is no R/W error path on the Game Boy
// bus: an access to an unmapped or locked address still completes, with the
// implementation deciding what value is seen or whether the write lands.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
