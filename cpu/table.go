package cpu

import "github.com/mkern/sixfive/numeric"

// Execute performs every read, write, and register/flag update an
// opcode needs, and advances PC past any operand bytes it consumes. It
// may call CPU.spendCycles to charge cost beyond the entry's
// BaseCycles (page crossings, taken branches, decimal-mode ADC/SBC on
// 65C02).
type Execute func(c *CPU)

// Entry is one opcode's table row: its unconditional base cycle cost
// and the function that implements it.
type Entry struct {
	BaseCycles numeric.Byte
	Execute    Execute
}

// Table is the dense 256-entry opcode dispatch table.
type Table [256]Entry

// InstructionSet is a named variant: a table plus the feature flags
// that change how some of its entries behave.
type InstructionSet struct {
	Name string
	// SupportsDecimalMode: false means ADC/SBC always use binary math
	// regardless of the D flag (Ricoh 2A03).
	SupportsDecimalMode bool
	// FixIndirectJMPBug records whether this variant's JMP (ind) entry
	// fetches its high byte from ptr+1 without the page-wrap bug (WDC
	// 65C02). The behavior lives in the 0x6C table entry itself; the
	// engine never reads this field, so changing it alone does not
	// change execution.
	FixIndirectJMPBug bool
	// decimalNZFromResult: true sets N/Z from the decimal ADC/SBC result
	// rather than the pre-adjustment binary sum (WDC 65C02 correction).
	decimalNZFromResult bool
	Table               Table
}

// With returns a copy of s with opcode's entry replaced by e; every
// other entry is unchanged. Patching is idempotent: applying the same
// (opcode, e) twice yields the same table.
func (s *InstructionSet) With(opcode numeric.Byte, e Entry) *InstructionSet {
	cp := *s
	cp.Table[opcode] = e
	return &cp
}

// nopEntry returns a fallback entry for an opcode a variant leaves
// undocumented: executing it behaves like a NOP of the given operand
// width, at the given cycle cost.
func nopEntry(cycles numeric.Byte, operandBytes int) Entry {
	return Entry{
		BaseCycles: cycles,
		Execute: func(c *CPU) {
			c.PC = c.PC.Add(numeric.Word(operandBytes))
		},
	}
}

// haltEntry returns a fallback entry that halts the CPU instead of
// executing, the other per-variant policy available for an illegal
// opcode.
func haltEntry() Entry {
	return Entry{
		BaseCycles: 2,
		Execute: func(c *CPU) {
			c.halted = true
		},
	}
}
