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

// Package memory implements the simple RAM areas of the Game Boy. A full
// machine routes bus accesses to several of these (work RAM, high RAM)
// alongside the more complicated areas it builds itself.
package memory

import (
	"fmt"
	"strings"

	"github.com/sganesh456/CoreBoy/logger"
)

// RAM is a flat memory area. It implements the cpubus.Memory interface.
type RAM struct {
	origin uint16
	memtop uint16
	memory []uint8
}

// NewRAM is the preferred method of initialisation for a RAM area. The area
// covers size bytes beginning at origin.
func NewRAM(origin uint16, size int) *RAM {
	ram := &RAM{
		origin: origin,
		memtop: origin + uint16(size) - 1,
	}

	ram.memory = make([]uint8, size)

	return ram
}

func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     --- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(ram.memory)/16; y++ {
		s.WriteString(fmt.Sprintf("%03X- |", (int(ram.origin)+y*16)>>4))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Origin returns the first address in the area.
func (ram RAM) Origin() uint16 {
	return ram.origin
}

// Memtop returns the last address in the area.
func (ram RAM) Memtop() uint16 {
	return ram.memtop
}

// Read is an implementation of cpubus.Memory. Reads outside the area see an
// undriven bus.
func (ram RAM) Read(address uint16) uint8 {
	if address < ram.origin || address > ram.memtop {
		logger.Logf("RAM", "reading outside of area (%#04x)", address)
		return 0xff
	}
	return ram.memory[address-ram.origin]
}

// Write is an implementation of cpubus.Memory. Writes outside the area are
// dropped.
func (ram *RAM) Write(address uint16, data uint8) {
	if address < ram.origin || address > ram.memtop {
		logger.Logf("RAM", "writing outside of area (%#04x)", address)
		return
	}
	ram.memory[address-ram.origin] = data
}
