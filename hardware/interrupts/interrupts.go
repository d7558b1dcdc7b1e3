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

// Package interrupts defines how instructions talk to the interrupt
// controller.
package interrupts

// Controller is the surface the EI, DI and RETI instructions drive. When
// delayed is true the change must not take effect until after the following
// instruction has completed; scheduling that deferral is the controller's
// responsibility, as is everything else about interrupt dispatch.
type Controller interface {
	EnableInterrupts(delayed bool)
	DisableInterrupts(delayed bool)
}
