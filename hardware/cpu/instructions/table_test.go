package instructions_test

import (
	"strings"
	"testing"

	"github.com/sganesh456/CoreBoy/hardware/cpu/instructions"
	"github.com/sganesh456/CoreBoy/hardware/cpu/registers"
	"github.com/sganesh456/CoreBoy/test"
)

// machine cycles for every primary-map opcode with any branch condition
// satisfied, per the official timing tables. zero marks the 0xCB prefix and
// the eleven undefined encodings.
var primaryCycles = [256]int{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1, // 0x00
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x10
	3, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x20
	3, 3, 2, 2, 3, 3, 3, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x40
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x50
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x60
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, // 0x70
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x80
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x90
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xa0
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xb0
	5, 3, 4, 4, 6, 4, 2, 4, 5, 4, 4, 0, 6, 6, 2, 4, // 0xc0
	5, 3, 4, 0, 6, 4, 2, 4, 5, 4, 4, 0, 6, 0, 2, 4, // 0xd0
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4, // 0xe0
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4, // 0xf0
}

// instruction lengths in bytes for the primary map, opcode byte included.
var primaryLengths = [256]int{
	1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1, // 0x00
	1, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x10
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x20
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x40
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x50
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x60
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x70
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x80
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x90
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xa0
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xb0
	1, 1, 3, 3, 3, 1, 2, 1, 1, 1, 3, 0, 3, 3, 2, 1, // 0xc0
	1, 1, 3, 0, 3, 1, 2, 1, 1, 1, 3, 0, 3, 0, 2, 1, // 0xd0
	2, 1, 1, 0, 0, 1, 2, 1, 2, 1, 3, 0, 0, 0, 2, 1, // 0xe0
	2, 1, 1, 1, 0, 1, 2, 1, 2, 1, 3, 1, 0, 0, 2, 1, // 0xf0
}

// machine cycles for the conditional opcodes when the condition fails.
var notTakenCycles = map[uint8]int{
	0x20: 2, 0x28: 2, 0x30: 2, 0x38: 2, // JR cc,r8
	0xc0: 2, 0xc8: 2, 0xd0: 2, 0xd8: 2, // RET cc
	0xc2: 3, 0xca: 3, 0xd2: 3, 0xda: 3, // JP cc,a16
	0xc4: 3, 0xcc: 3, 0xd4: 3, 0xdc: 3, // CALL cc,a16
}

// countCycles charges cycles for an opcode the way the dispatch loop does,
// without executing anything: the ops that would run under the given flags
// are walked and each memory access or forced finish costs one cycle.
func countCycles(oc *instructions.Opcode, r *registers.Registers, prefixed bool) int {
	cycles := 1 + oc.OperandLength()
	if prefixed {
		cycles++
	}
	for _, op := range oc.Ops() {
		if !op.Proceed(r) {
			break
		}
		if op.ReadsMemory() || op.WritesMemory() || op.ForceFinishCycle() {
			cycles++
		}
	}
	return cycles
}

func TestPrimaryTimings(t *testing.T) {
	tbl := instructions.NewTable()

	// walking the ops under both flag states separates the taken timing
	// from the not-taken timing without knowing which condition an opcode
	// tests: every condition holds under one of the two states
	set := registers.NewRegisters()
	set.F.Zero = true
	set.F.Carry = true
	unset := registers.NewRegisters()

	for o := 0; o < 256; o++ {
		oc := tbl.Primary(uint8(o))
		if oc == nil {
			if primaryCycles[o] != 0 {
				t.Errorf("%#02x: undefined opcode expected to take %d cycles", o, primaryCycles[o])
			}
			continue
		}
		if primaryCycles[o] == 0 {
			t.Errorf("%s: defined opcode has no expected cycle count", oc)
			continue
		}

		a := countCycles(oc, set, false)
		b := countCycles(oc, unset, false)
		taken, notTaken := a, b
		if b > a {
			taken, notTaken = b, a
		}

		if taken != primaryCycles[o] {
			t.Errorf("%s: %d cycles, expected %d", oc, taken, primaryCycles[o])
		}

		if expected, ok := notTakenCycles[uint8(o)]; ok {
			if notTaken != expected {
				t.Errorf("%s: %d cycles not taken, expected %d", oc, notTaken, expected)
			}
		} else if notTaken != taken {
			t.Errorf("%s: unconditional opcode has branch-dependent timing", oc)
		}
	}
}

func TestPrimaryLengths(t *testing.T) {
	tbl := instructions.NewTable()

	for o := 0; o < 256; o++ {
		oc := tbl.Primary(uint8(o))
		if oc == nil {
			continue
		}
		if l := 1 + oc.OperandLength(); l != primaryLengths[o] {
			t.Errorf("%s: %d bytes, expected %d", oc, l, primaryLengths[o])
		}
	}
}

func TestExtendedTimings(t *testing.T) {
	tbl := instructions.NewTable()
	r := registers.NewRegisters()

	for o := 0; o < 256; o++ {
		oc := tbl.Extended(uint8(o))
		if oc == nil {
			t.Fatalf("CB %#02x: no opcode", o)
		}

		// every extended opcode is two bytes long
		test.Equate(t, oc.OperandLength(), 0)

		// register forms take the two fetch cycles only; going through HL
		// adds the read and, for everything but BIT, the writeback
		expected := 2
		if strings.Contains(oc.Label(), "(HL)") {
			if strings.HasPrefix(oc.Label(), "BIT") {
				expected = 3
			} else {
				expected = 4
			}
		}

		if c := countCycles(oc, r, true); c != expected {
			t.Errorf("%s: %d cycles, expected %d", oc, c, expected)
		}
	}
}

func TestTableLabels(t *testing.T) {
	tbl := instructions.NewTable()

	for _, c := range []struct {
		code  uint8
		label string
	}{
		{0x00, "NOP"},
		{0x08, "LD (a16),SP"},
		{0x22, "LD (HL+),A"},
		{0x36, "LD (HL),d8"},
		{0x76, "HALT"},
		{0x80, "ADD A,B"},
		{0xbe, "CP (HL)"},
		{0xcd, "CALL a16"},
		{0xd9, "RETI"},
		{0xe7, "RST 20H"},
		{0xf8, "LD HL,SP+r8"},
	} {
		test.Equate(t, tbl.Primary(c.code).Label(), c.label)
	}

	test.Equate(t, tbl.Extended(0x00).Label(), "RLC B")
	test.Equate(t, tbl.Extended(0x37).Label(), "SWAP A")
	test.Equate(t, tbl.Extended(0x7e).Label(), "BIT 7,(HL)")
	test.Equate(t, tbl.Extended(0xff).Label(), "SET 7,A")
}

func TestUndefinedOpcodes(t *testing.T) {
	tbl := instructions.NewTable()

	for _, o := range []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd} {
		if tbl.Primary(o) != nil {
			t.Errorf("%#02x: expected no opcode", o)
		}
	}

	// the prefix byte resolves to nothing in the primary map; the dispatch
	// loop re-dispatches into the extended map instead
	if tbl.Primary(0xcb) != nil {
		t.Error("0xcb: expected no opcode")
	}

	count := 0
	for o := 0; o < 256; o++ {
		if tbl.Primary(uint8(o)) != nil {
			count++
		}
	}
	test.Equate(t, count, 244)
}

func TestHaltStop(t *testing.T) {
	tbl := instructions.NewTable()

	// HALT and STOP decode to empty sequences; what the CPU does while
	// halted is the dispatch loop's business
	test.Equate(t, len(tbl.Primary(0x76).Ops()), 0)
	test.Equate(t, len(tbl.Primary(0x10).Ops()), 0)
	test.Equate(t, tbl.Primary(0x10).OperandLength(), 0)
}

func TestOpNotation(t *testing.T) {
	tbl := instructions.NewTable()

	push := tbl.Primary(0xc5).Ops()
	test.Equate(t, push[0].String(), "wait cycle")
	test.Equate(t, push[1].String(), "BC → [__]")
	test.Equate(t, push[2].String(), "[_ ] → (SP--)")
	test.Equate(t, push[3].String(), "[ _] → (SP--)")

	test.Equate(t, tbl.Primary(0xc5).String(), "0xc5 PUSH BC")
}
