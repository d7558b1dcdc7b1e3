package instructions_test

import (
	"testing"

	"github.com/sganesh456/CoreBoy/hardware/cpu/instructions"
	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
	"github.com/sganesh456/CoreBoy/hardware/cpu/registers/rtest"
	"github.com/sganesh456/CoreBoy/test"
)

func TestArgumentTokens(t *testing.T) {
	for _, c := range []struct {
		label  string
		length int
		memory bool
	}{
		{"A", 0, false},
		{"BC", 0, false},
		{"PC", 0, false},
		{"d8", 1, false},
		{"d16", 2, false},
		{"r8", 1, false},
		{"a16", 2, false},
		{"(BC)", 0, true},
		{"(HL)", 0, true},
		{"(a8)", 1, true},
		{"(a16)", 2, true},
		{"(C)", 0, true},
	} {
		arg, err := instructions.ParseArgument(c.label)
		if err != nil {
			t.Fatalf("parsing %s: %v", c.label, err)
		}
		test.Equate(t, arg.Label(), c.label)
		test.Equate(t, arg.OperandLength(), c.length)
		test.Equate(t, arg.AccessesMemory(), c.memory)
	}

	_, err := instructions.ParseArgument("(SP)")
	test.ExpectedFailure(t, err)
}

func TestArgumentAddressing(t *testing.T) {
	mem := &mockMem{}
	r := registers.NewRegisters()

	r.SetHL(0xc123)
	mem.Write(0xc123, 0x42)

	arg, err := instructions.ParseArgument("(HL)")
	test.ExpectedSuccess(t, err)
	test.Equate(t, arg.Read(r, mem, nil), 0x42)
	arg.Write(r, mem, nil, 0x24)
	test.Equate(t, mem.Read(0xc123), 0x24)

	// (C) and (a8) address the high page at 0xFF00
	r.C = 0x44
	arg, err = instructions.ParseArgument("(C)")
	test.ExpectedSuccess(t, err)
	arg.Write(r, mem, nil, 0x99)
	test.Equate(t, mem.Read(0xff44), 0x99)

	arg, err = instructions.ParseArgument("(a8)")
	test.ExpectedSuccess(t, err)
	test.Equate(t, arg.Read(r, mem, []uint8{0x44}), 0x99)

	arg, err = instructions.ParseArgument("(a16)")
	test.ExpectedSuccess(t, err)
	mem.Write(0x1234, 0x56)
	test.Equate(t, arg.Read(r, mem, []uint8{0x34, 0x12}), 0x56)
}

func TestArgumentImmediates(t *testing.T) {
	mem := &mockMem{}
	r := registers.NewRegisters()

	// operand bytes arrive in the order they sit in the instruction
	// stream, low byte first
	d16, _ := instructions.ParseArgument("d16")
	test.Equate(t, d16.Read(r, mem, []uint8{0xcd, 0xab}), 0xabcd)

	// relative offsets are sign extended
	r8, _ := instructions.ParseArgument("r8")
	test.Equate(t, r8.Read(r, mem, []uint8{0xff}), -1)
	test.Equate(t, r8.Read(r, mem, []uint8{0x80}), -128)
	test.Equate(t, r8.Read(r, mem, []uint8{0x7f}), 127)
}

func TestArgumentRegisterPairs(t *testing.T) {
	mem := &mockMem{}
	r := registers.NewRegisters()

	af, _ := instructions.ParseArgument("AF")
	r.A = 0x12
	r.F.Zero = true
	r.F.Carry = true
	test.Equate(t, af.Read(r, mem, nil), 0x1290)

	sp, _ := instructions.ParseArgument("SP")
	sp.Write(r, mem, nil, 0xfffe)
	rtest.EquatePair(t, "SP", r.SP, 0xfffe)

	hl, _ := instructions.ParseArgument("HL")
	hl.Write(r, mem, nil, 0xc000)
	test.Equate(t, r.H, 0xc0)
	test.Equate(t, r.L, 0x00)
}
