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

package alu

import (
	"fmt"

	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
)

// DataType describes the width of a value flowing through the CPU: a plain
// byte, a word, or the signed byte displacement used by relative jumps and
// stack pointer arithmetic.
type DataType int

// List of valid DataType values.
const (
	D8 DataType = iota
	D16
	R8
)

func (dt DataType) String() string {
	switch dt {
	case D8:
		return "d8"
	case D16:
		return "d16"
	case R8:
		return "r8"
	}
	return "unknown"
}

// Func is a unary ALU operation. The operation name and data type under
// which it was registered are its identity; quirk classification compares
// those rather than the function value itself.
type Func struct {
	op   string
	dt   DataType
	eval func(f *registers.Flags, arg int) int
}

// Operation returns the name the function was registered under.
func (fn *Func) Operation() string {
	return fn.op
}

// DataType returns the data type the function was registered under.
func (fn *Func) DataType() DataType {
	return fn.dt
}

// Apply the function to the argument, updating flags as a side effect.
func (fn *Func) Apply(f *registers.Flags, arg int) int {
	return fn.eval(f, arg)
}

func (fn *Func) String() string {
	return fmt.Sprintf("%s %s", fn.op, fn.dt)
}

// BiFunc is a binary ALU operation. Identity works as for Func.
type BiFunc struct {
	op   string
	dt1  DataType
	dt2  DataType
	eval func(f *registers.Flags, arg1 int, arg2 int) int
}

// Operation returns the name the function was registered under.
func (fn *BiFunc) Operation() string {
	return fn.op
}

// DataTypes returns the pair of data types the function was registered under.
func (fn *BiFunc) DataTypes() (DataType, DataType) {
	return fn.dt1, fn.dt2
}

// Apply the function to the arguments, updating flags as a side effect.
func (fn *BiFunc) Apply(f *registers.Flags, arg1 int, arg2 int) int {
	return fn.eval(f, arg1, arg2)
}

func (fn *BiFunc) String() string {
	return fmt.Sprintf("%s %s,%s", fn.op, fn.dt1, fn.dt2)
}

type funcKey struct {
	op string
	dt DataType
}

type biFuncKey struct {
	op  string
	dt1 DataType
	dt2 DataType
}

// Functions is the registry of ALU operations. The zero value is not usable;
// use NewFunctions.
type Functions struct {
	unary  map[funcKey]*Func
	binary map[biFuncKey]*BiFunc
}

// Find returns the unary function registered under the operation name and
// data type.
func (a *Functions) Find(op string, dt DataType) (*Func, error) {
	fn, ok := a.unary[funcKey{op: op, dt: dt}]
	if !ok {
		return nil, fmt.Errorf("alu: no function for %s %s", op, dt)
	}
	return fn, nil
}

// FindBi returns the binary function registered under the operation name and
// pair of data types.
func (a *Functions) FindBi(op string, dt1 DataType, dt2 DataType) (*BiFunc, error) {
	fn, ok := a.binary[biFuncKey{op: op, dt1: dt1, dt2: dt2}]
	if !ok {
		return nil, fmt.Errorf("alu: no function for %s %s,%s", op, dt1, dt2)
	}
	return fn, nil
}

func (a *Functions) register(op string, dt DataType, eval func(f *registers.Flags, arg int) int) {
	k := funcKey{op: op, dt: dt}
	if _, ok := a.unary[k]; ok {
		panic(fmt.Sprintf("alu: function tables are malformed: %s %s registered twice", op, dt))
	}
	a.unary[k] = &Func{op: op, dt: dt, eval: eval}
}

func (a *Functions) registerBi(op string, dt1 DataType, dt2 DataType, eval func(f *registers.Flags, arg1 int, arg2 int) int) {
	k := biFuncKey{op: op, dt1: dt1, dt2: dt2}
	if _, ok := a.binary[k]; ok {
		panic(fmt.Sprintf("alu: function tables are malformed: %s %s,%s registered twice", op, dt1, dt2))
	}
	a.binary[k] = &BiFunc{op: op, dt1: dt1, dt2: dt2, eval: eval}
}

// NewFunctions is the preferred method of initialisation for the ALU
// registry. Every operation the opcode table refers to is registered here,
// in one place and in a fixed order.
func NewFunctions() *Functions {
	a := &Functions{
		unary:  make(map[funcKey]*Func),
		binary: make(map[biFuncKey]*BiFunc),
	}

	// increment and decrement. the sixteen bit forms touch no flags at all
	a.register("INC", D8, func(f *registers.Flags, arg int) int {
		result := (arg + 1) & 0xff
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = arg&0x0f == 0x0f
		return result
	})
	a.register("INC", D16, func(f *registers.Flags, arg int) int {
		return (arg + 1) & 0xffff
	})
	a.register("DEC", D8, func(f *registers.Flags, arg int) int {
		result := (arg - 1) & 0xff
		f.Zero = result == 0
		f.Subtract = true
		f.HalfCarry = arg&0x0f == 0x00
		return result
	})
	a.register("DEC", D16, func(f *registers.Flags, arg int) int {
		return (arg - 1) & 0xffff
	})

	// word addition. the HL form leaves the zero flag alone; the relative
	// jump form is flagless address arithmetic; the stack pointer form
	// derives its carries from the low byte only
	a.registerBi("ADD", D16, D16, func(f *registers.Flags, arg1 int, arg2 int) int {
		result := arg1 + arg2
		f.Subtract = false
		f.HalfCarry = (arg1&0x0fff)+(arg2&0x0fff) > 0x0fff
		f.Carry = result > 0xffff
		return result & 0xffff
	})
	a.registerBi("ADD", D16, R8, func(f *registers.Flags, arg1 int, arg2 int) int {
		return (arg1 + arg2) & 0xffff
	})
	a.registerBi("ADD_SP", D16, R8, func(f *registers.Flags, arg1 int, arg2 int) int {
		f.Zero = false
		f.Subtract = false
		f.HalfCarry = (arg1&0x0f)+(arg2&0x0f) > 0x0f
		f.Carry = (arg1&0xff)+(arg2&0xff) > 0xff
		return (arg1 + arg2) & 0xffff
	})

	// byte arithmetic
	a.registerBi("ADD", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		result := arg1 + arg2
		f.Zero = result&0xff == 0
		f.Subtract = false
		f.HalfCarry = (arg1&0x0f)+(arg2&0x0f) > 0x0f
		f.Carry = result > 0xff
		return result & 0xff
	})
	a.registerBi("ADC", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		carry := 0
		if f.Carry {
			carry = 1
		}
		result := arg1 + arg2 + carry
		f.Zero = result&0xff == 0
		f.Subtract = false
		f.HalfCarry = (arg1&0x0f)+(arg2&0x0f)+carry > 0x0f
		f.Carry = result > 0xff
		return result & 0xff
	})
	a.registerBi("SUB", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		result := (arg1 - arg2) & 0xff
		f.Zero = result == 0
		f.Subtract = true
		f.HalfCarry = arg2&0x0f > arg1&0x0f
		f.Carry = arg2 > arg1
		return result
	})
	a.registerBi("SBC", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		carry := 0
		if f.Carry {
			carry = 1
		}
		result := arg1 - arg2 - carry
		f.Zero = result&0xff == 0
		f.Subtract = true
		f.HalfCarry = (arg1&0x0f)-(arg2&0x0f)-carry < 0
		f.Carry = result < 0
		return result & 0xff
	})

	// byte logic
	a.registerBi("AND", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		result := arg1 & arg2
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = true
		f.Carry = false
		return result
	})
	a.registerBi("OR", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		result := arg1 | arg2
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = false
		return result
	})
	a.registerBi("XOR", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		result := (arg1 ^ arg2) & 0xff
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = false
		return result
	})

	// comparison is a subtraction that discards its result
	a.registerBi("CP", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		f.Zero = (arg1-arg2)&0xff == 0
		f.Subtract = true
		f.HalfCarry = arg2&0x0f > arg1&0x0f
		f.Carry = arg2 > arg1
		return arg1
	})

	// rotates and shifts
	a.register("RLC", D8, func(f *registers.Flags, arg int) int {
		result := (arg << 1) & 0xff
		if arg&0x80 != 0 {
			result |= 0x01
			f.Carry = true
		} else {
			f.Carry = false
		}
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})
	a.register("RRC", D8, func(f *registers.Flags, arg int) int {
		result := arg >> 1
		if arg&0x01 != 0 {
			result |= 0x80
			f.Carry = true
		} else {
			f.Carry = false
		}
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})
	a.register("RL", D8, func(f *registers.Flags, arg int) int {
		result := (arg << 1) & 0xff
		if f.Carry {
			result |= 0x01
		}
		f.Carry = arg&0x80 != 0
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})
	a.register("RR", D8, func(f *registers.Flags, arg int) int {
		result := arg >> 1
		if f.Carry {
			result |= 0x80
		}
		f.Carry = arg&0x01 != 0
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})
	a.register("SLA", D8, func(f *registers.Flags, arg int) int {
		result := (arg << 1) & 0xff
		f.Carry = arg&0x80 != 0
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})
	a.register("SRA", D8, func(f *registers.Flags, arg int) int {
		result := (arg >> 1) | (arg & 0x80)
		f.Carry = arg&0x01 != 0
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})
	a.register("SWAP", D8, func(f *registers.Flags, arg int) int {
		result := ((arg & 0x0f) << 4) | ((arg & 0xf0) >> 4)
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = false
		return result
	})
	a.register("SRL", D8, func(f *registers.Flags, arg int) int {
		result := arg >> 1
		f.Carry = arg&0x01 != 0
		f.Zero = result == 0
		f.Subtract = false
		f.HalfCarry = false
		return result
	})

	// single bit operations. BIT leaves the zero flag alone for bit indices
	// past the top of the byte
	a.registerBi("BIT", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		f.Subtract = false
		f.HalfCarry = true
		if arg2 < 8 {
			f.Zero = arg1&(1<<uint(arg2)) == 0
		}
		return arg1
	})
	a.registerBi("RES", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		return arg1 &^ (1 << uint(arg2))
	})
	a.registerBi("SET", D8, D8, func(f *registers.Flags, arg1 int, arg2 int) int {
		return arg1 | (1 << uint(arg2))
	})

	// decimal adjustment after BCD arithmetic. the carry flag is never
	// cleared here, only set
	a.register("DAA", D8, func(f *registers.Flags, arg int) int {
		result := arg
		if f.Subtract {
			if f.HalfCarry {
				result = (result - 0x06) & 0xff
			}
			if f.Carry {
				result = (result - 0x60) & 0xff
			}
		} else {
			if f.HalfCarry || result&0x0f > 0x09 {
				result += 0x06
			}
			if f.Carry || result > 0x9f {
				result += 0x60
			}
		}
		f.HalfCarry = false
		if result > 0xff {
			f.Carry = true
		}
		result &= 0xff
		f.Zero = result == 0
		return result
	})

	// complement and carry flag manipulation
	a.register("CPL", D8, func(f *registers.Flags, arg int) int {
		f.Subtract = true
		f.HalfCarry = true
		return (^arg) & 0xff
	})
	a.register("SCF", D8, func(f *registers.Flags, arg int) int {
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = true
		return arg
	})
	a.register("CCF", D8, func(f *registers.Flags, arg int) int {
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = !f.Carry
		return arg
	})

	return a
}
