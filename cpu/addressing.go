package cpu

import (
	"github.com/mkern/sixfive/bus"
	"github.com/mkern/sixfive/numeric"
)

// fetchOperandByte reads the byte at PC tagged OperandFetch and
// advances PC past it.
func (c *CPU) fetchOperandByte() numeric.Byte {
	v := c.Bus.Read(c.PC, bus.OperandFetch)
	c.PC = c.PC.Add(1)
	return v
}

// fetchOperandWord reads a little-endian Word starting at PC, low byte
// first, advancing PC past both bytes.
func (c *CPU) fetchOperandWord() numeric.Word {
	lo := c.fetchOperandByte()
	hi := c.fetchOperandByte()
	return numeric.WordFromBytes(lo, hi)
}

// readZP reads a zero-page byte without charging an OperandFetch (used
// while chasing an indirect pointer through page zero).
func (c *CPU) readZP(addr numeric.Byte) numeric.Byte {
	return c.Bus.Read(numeric.Word(addr), bus.DataRead)
}

// addrZeroPage implements zero-page mode: d.
func (c *CPU) addrZeroPage() numeric.Word {
	return numeric.Word(c.fetchOperandByte())
}

// addrZeroPageX implements zero-page,X mode: d,x.
func (c *CPU) addrZeroPageX() numeric.Word {
	return numeric.ZeroPageEffectiveAddr(c.fetchOperandByte(), c.X)
}

// addrZeroPageY implements zero-page,Y mode: d,y.
func (c *CPU) addrZeroPageY() numeric.Word {
	return numeric.ZeroPageEffectiveAddr(c.fetchOperandByte(), c.Y)
}

// addrAbsolute implements absolute mode: a.
func (c *CPU) addrAbsolute() numeric.Word {
	return c.fetchOperandWord()
}

// addrAbsoluteIndexed implements absolute,X / absolute,Y. fixedCost is
// true for RMW/store opcodes, whose base cycle count already charges
// the worst case; load opcodes pay one extra cycle only when the index
// crosses a page.
func (c *CPU) addrAbsoluteIndexed(index numeric.Byte, fixedCost bool) numeric.Word {
	base := c.fetchOperandWord()
	addr, crossed := numeric.IndexedEffectiveAddr(base, index)
	if crossed && !fixedCost {
		c.spendCycles(1)
	}
	return addr
}

// addrIndirectX implements (d,x) mode.
func (c *CPU) addrIndirectX() numeric.Word {
	ptr := c.fetchOperandByte().Add(c.X)
	lo := c.readZP(ptr)
	hi := c.readZP(ptr.Add(1))
	return numeric.WordFromBytes(lo, hi)
}

// addrIndirectY implements (d),y mode. fixedCost behaves as in
// addrAbsoluteIndexed.
func (c *CPU) addrIndirectY(fixedCost bool) numeric.Word {
	ptr := c.fetchOperandByte()
	lo := c.readZP(ptr)
	hi := c.readZP(ptr.Add(1))
	base := numeric.WordFromBytes(lo, hi)
	addr, crossed := numeric.IndexedEffectiveAddr(base, c.Y)
	if crossed && !fixedCost {
		c.spendCycles(1)
	}
	return addr
}

// addrZeroPageIndirect implements the 65C02 addition (d) mode: zero
// page indirect with no index.
func (c *CPU) addrZeroPageIndirect() numeric.Word {
	ptr := c.fetchOperandByte()
	lo := c.readZP(ptr)
	hi := c.readZP(ptr.Add(1))
	return numeric.WordFromBytes(lo, hi)
}

// readData reads a data byte at addr, tagged DataRead.
func (c *CPU) readData(addr numeric.Word) numeric.Byte {
	return c.Bus.Read(addr, bus.DataRead)
}

// writeData writes a data byte at addr, tagged DataWrite.
func (c *CPU) writeData(addr numeric.Word, val numeric.Byte) {
	c.Bus.Write(addr, val, bus.DataWrite)
}

// relativeTarget computes a branch target from the signed operand byte
// and reports whether taking it crosses a page, relative to the PC
// value once past the branch's own operand byte.
func (c *CPU) relativeTarget() (target numeric.Word, pageCrossed bool) {
	offset := int8(c.fetchOperandByte())
	base := c.PC
	target = numeric.Word(int32(base) + int32(offset))
	return target, (base & 0xFF00) != (target & 0xFF00)
}
