package cpu

import "github.com/mkern/sixfive/numeric"

// NewWdc65C02 builds the instruction set for the WDC 65C02S: the same
// 151 NMOS opcodes plus the modes and instructions WDC added in the
// leftover opcode space (TSB/TRB/STZ, (zp) indirect addressing without
// indexing, PHX/PHY/PLX/PLY, BRA, INC A/DEC A, BIT #i, JMP (a,x), the
// RMB/SMB zero-page bit ops, the BBR/BBS bit branches, and WAI/STP),
// the corrected N/Z-from-decimal-result ADC/SBC, and the fixed JMP
// (ind) page-wrap read. Every remaining NMOS opcode that depended on
// undefined decode behavior (the whole x3 column, the xB column except
// WAI/STP at 0xCB/0xDB, and the JAM slots 0x02/0x22/0x42/0x62) is a
// defined NOP of the same operand width here, per WDC's redesigned
// decoder.
func NewWdc65C02() *InstructionSet {
	base := NewMos6502()
	s := &InstructionSet{
		Name:                "WDC 65C02",
		SupportsDecimalMode: true,
		FixIndirectJMPBug:   true,
		decimalNZFromResult: true,
		Table:               base.Table,
	}

	// New instructions and new addressing modes replacing slots the
	// NMOS decoder left to chance, plus the corrected JMP (a) fetch at
	// 0x6C.
	newOps := map[int]Entry{
		0x04: {5, opTsb(modeZP)},
		0x0C: {6, opTsb(modeAbs)},
		0x12: {5, opAlu(modeZPInd, (*CPU).ora)},
		0x14: {5, opTrb(modeZP)},
		0x1A: {2, opRegIncAcc()},
		0x1C: {6, opTrb(modeAbs)},
		0x32: {5, opAlu(modeZPInd, (*CPU).and)},
		0x34: {4, opBit(modeZPX)},
		0x3A: {2, opRegDecAcc()},
		0x3C: {4, opBit(modeAbsX(false))},
		0x52: {5, opAlu(modeZPInd, (*CPU).eor)},
		0x5A: {3, pushReg(regY)},
		0x64: {3, opStz(modeZP)},
		0x6C: {6, jmpIndirect(true)},
		0x72: {5, opAlu(modeZPInd, (*CPU).adc)},
		0x74: {4, opStz(modeZPX)},
		0x7A: {4, pullReg(regY)},
		0x7C: {6, jmpAbsIndexedIndirect()},
		0x80: {2, opBranch(condAlways)},
		0x89: {2, opBitImm()},
		0x92: {5, opStore(regA, modeZPInd)},
		0x9C: {4, opStz(modeAbs)},
		0x9E: {5, opStz(modeAbsX(true))},
		0xB2: {5, opLoad(regA, modeZPInd)},
		0xCB: {3, wai()},
		0xD2: {5, opCompare(regA, modeZPInd)},
		0xDA: {3, pushReg(regX)},
		0xDB: {3, stp()},
		0xF2: {5, opAlu(modeZPInd, (*CPU).sbc)},
		0xFA: {4, pullReg(regX)},
	}
	for op, e := range newOps {
		s = s.With(numeric.Byte(op), e)
	}

	// Column x7 is RMB0-7/SMB0-7 and column xF is BBR0-7/BBS0-7, one
	// bit per row.
	for bit := uint(0); bit < 8; bit++ {
		s = s.With(numeric.Byte(0x07+bit*0x10), Entry{5, opModifyZPBit(bit, false)})
		s = s.With(numeric.Byte(0x87+bit*0x10), Entry{5, opModifyZPBit(bit, true)})
		s = s.With(numeric.Byte(0x0F+bit*0x10), Entry{5, opBranchOnZPBit(bit, false)})
		s = s.With(numeric.Byte(0x8F+bit*0x10), Entry{5, opBranchOnZPBit(bit, true)})
	}

	// Every remaining opcode the NMOS decoder left undefined becomes a
	// documented NOP of the same operand width here.
	nopWidths := map[int]int{
		0x02: 1, 0x03: 0, 0x0B: 1,
		0x13: 0, 0x1B: 0,
		0x22: 1, 0x23: 0, 0x2B: 1,
		0x33: 0, 0x3B: 0,
		0x42: 1, 0x43: 0, 0x4B: 1,
		0x53: 0, 0x5B: 0,
		0x62: 1, 0x63: 0, 0x6B: 1,
		0x73: 0, 0x7B: 0,
		0x83: 0, 0x8B: 1, 0x93: 0, 0x9B: 0,
		0xA3: 0, 0xAB: 1, 0xB3: 0, 0xBB: 0,
		0xC3: 0, 0xD3: 0,
		0xE3: 0, 0xEB: 1, 0xF3: 0, 0xFB: 0,
	}
	for op, width := range nopWidths {
		s = s.With(numeric.Byte(op), nopEntry(base.Table[op].BaseCycles, width))
	}

	return s
}

// opModifyZPBit implements RMB/SMB: clear (setBit false) or set one
// bit of a zero-page byte, no flags touched.
func opModifyZPBit(bit uint, setBit bool) Execute {
	return func(c *CPU) {
		addr := numeric.Word(c.fetchOperandByte())
		v := c.readData(addr)
		mask := numeric.Byte(1) << bit
		if setBit {
			v = v.Or(mask)
		} else {
			v = v.And(mask.Not())
		}
		c.writeData(addr, v)
	}
}

// opBranchOnZPBit implements BBR/BBS: read a zero-page byte, then take
// a relative branch when the selected bit matches branchWhenSet, with
// the same taken/page-cross cycle adjustments a plain branch pays.
func opBranchOnZPBit(bit uint, branchWhenSet bool) Execute {
	return func(c *CPU) {
		addr := numeric.Word(c.fetchOperandByte())
		v := c.readData(addr)
		target, crossed := c.relativeTarget()
		if (v&(numeric.Byte(1)<<bit) != 0) == branchWhenSet {
			c.spendCycles(1)
			if crossed {
				c.spendCycles(1)
			}
			c.PC = target
		}
	}
}

// wai parks the CPU until an interrupt entry resumes it.
func wai() Execute {
	return func(c *CPU) { c.waiting = true }
}

// stp stops the clock: terminal until reset, like the NMOS JAM
// opcodes but documented.
func stp() Execute {
	return func(c *CPU) { c.halted = true }
}

// opRegIncAcc/opRegDecAcc are the 65C02's INC A/DEC A: the only
// register-addressed forms of INC/DEC, which on NMOS only ever
// operate on memory.
func opRegIncAcc() Execute {
	return func(c *CPU) { c.A = c.inc(c.A) }
}

func opRegDecAcc() Execute {
	return func(c *CPU) { c.A = c.dec(c.A) }
}

// jmpAbsIndexedIndirect implements the 65C02's JMP (a,x): the pointer
// is absolute+X, with no page-wrap bug since the index addition already
// carries correctly.
func jmpAbsIndexedIndirect() Execute {
	return func(c *CPU) {
		base := c.fetchOperandWord()
		ptr := base.Add(c.X.ToWord())
		lo := c.readData(ptr)
		hi := c.readData(ptr.Add(1))
		c.PC = numeric.WordFromBytes(lo, hi)
	}
}
