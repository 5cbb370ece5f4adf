package cpu

import "github.com/mkern/sixfive/numeric"

// regSel picks one of a CPU's general registers at call time so a
// table entry can be built once and reused across every CPU instance
// that shares a table.
type regSel func(c *CPU) *numeric.Byte

func regA(c *CPU) *numeric.Byte  { return &c.A }
func regX(c *CPU) *numeric.Byte  { return &c.X }
func regY(c *CPU) *numeric.Byte  { return &c.Y }
func spReg(c *CPU) *numeric.Byte { return &c.SP }

// addrFunc is the method-expression shape of every addrXxx helper in
// addressing.go: func(*CPU) numeric.Word, unbound from any one
// receiver so a table entry can store it directly.
type addrFunc func(c *CPU) numeric.Word

// Mode values shared across every table: plain method expressions for
// the modes addressing.go already exposes with the right shape, and
// small wrappers for the ones parameterized by register or by
// load/RMW penalty timing.
var (
	modeZP    addrFunc = (*CPU).addrZeroPage
	modeZPX   addrFunc = (*CPU).addrZeroPageX
	modeZPY   addrFunc = (*CPU).addrZeroPageY
	modeAbs   addrFunc = (*CPU).addrAbsolute
	modeIndX  addrFunc = (*CPU).addrIndirectX
	modeZPInd addrFunc = (*CPU).addrZeroPageIndirect
)

func modeAbsX(fixedCost bool) addrFunc {
	return func(c *CPU) numeric.Word { return c.addrAbsoluteIndexed(c.X, fixedCost) }
}

func modeAbsY(fixedCost bool) addrFunc {
	return func(c *CPU) numeric.Word { return c.addrAbsoluteIndexed(c.Y, fixedCost) }
}

func modeIndY(fixedCost bool) addrFunc {
	return func(c *CPU) numeric.Word { return c.addrIndirectY(fixedCost) }
}

// opLoad builds LDA/LDX/LDY-shaped entries: read via addr, load into
// the selected register, set N/Z.
func opLoad(sel regSel, addr addrFunc) Execute {
	return func(c *CPU) {
		c.loadRegister(sel(c), c.readData(addr(c)))
	}
}

func opLoadImm(sel regSel) Execute {
	return func(c *CPU) {
		c.loadRegister(sel(c), c.fetchOperandByte())
	}
}

// opStore builds STA/STX/STY-shaped entries.
func opStore(sel regSel, addr addrFunc) Execute {
	return func(c *CPU) {
		c.writeData(addr(c), *sel(c))
	}
}

// opAlu builds ORA/AND/EOR/ADC/SBC-shaped entries against A via fn.
// CMP/CPX/CPY entries are built by opCompare/opCompareImm.
func opAlu(addr addrFunc, fn func(c *CPU, arg numeric.Byte)) Execute {
	return func(c *CPU) {
		fn(c, c.readData(addr(c)))
	}
}

func opAluImm(fn func(c *CPU, arg numeric.Byte)) Execute {
	return func(c *CPU) {
		fn(c, c.fetchOperandByte())
	}
}

func (c *CPU) ora(arg numeric.Byte) { c.loadRegister(&c.A, c.A.Or(arg)) }
func (c *CPU) and(arg numeric.Byte) { c.loadRegister(&c.A, c.A.And(arg)) }
func (c *CPU) eor(arg numeric.Byte) { c.loadRegister(&c.A, c.A.Xor(arg)) }

func opCompare(sel regSel, addr addrFunc) Execute {
	return func(c *CPU) {
		c.compare(*sel(c), c.readData(addr(c)))
	}
}

func opCompareImm(sel regSel) Execute {
	return func(c *CPU) {
		c.compare(*sel(c), c.fetchOperandByte())
	}
}

// opRMW builds ASL/LSR/ROL/ROR/INC/DEC-shaped entries operating on a
// memory location.
func opRMW(addr addrFunc, fn func(c *CPU, v numeric.Byte) numeric.Byte) Execute {
	return func(c *CPU) {
		a := addr(c)
		v := c.readData(a)
		c.writeData(a, fn(c, v))
	}
}

// opRMWAcc builds the accumulator-addressed ASL/LSR/ROL/ROR entries.
func opRMWAcc(fn func(c *CPU, v numeric.Byte) numeric.Byte) Execute {
	return func(c *CPU) { c.A = fn(c, c.A) }
}

func (c *CPU) inc(v numeric.Byte) numeric.Byte {
	r := v.Add(1)
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func (c *CPU) dec(v numeric.Byte) numeric.Byte {
	r := v.Sub(1)
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

// opRegInc/opRegDec on a register, for INX/INY/DEX/DEY. The 65C02's
// INC A/DEC A use opRegIncAcc/opRegDecAcc instead.
func opRegInc(sel regSel) Execute {
	return func(c *CPU) { c.loadRegister(sel(c), sel(c).Add(1)) }
}

func opRegDec(sel regSel) Execute {
	return func(c *CPU) { c.loadRegister(sel(c), sel(c).Sub(1)) }
}

// opTransfer copies from into to, updating N/Z unless this is TXS,
// which conventionally leaves flags untouched.
func opTransfer(from, to regSel, updateFlags bool) Execute {
	return func(c *CPU) {
		v := *from(c)
		if updateFlags {
			c.loadRegister(to(c), v)
		} else {
			*to(c) = v
		}
	}
}

func opFlag(mask numeric.Byte, val bool) Execute {
	return func(c *CPU) { c.setFlag(mask, val) }
}

// opBranch builds the eight conditional relative branches. The operand
// byte is always consumed; the extra cycle(s) for a taken branch and a
// page-crossed target are charged only when the branch is taken.
func opBranch(cond func(c *CPU) bool) Execute {
	return func(c *CPU) {
		target, crossed := c.relativeTarget()
		if cond(c) {
			c.spendCycles(1)
			if crossed {
				c.spendCycles(1)
			}
			c.PC = target
		}
	}
}

func condCarrySet(c *CPU) bool      { return c.hasFlag(FlagCarry) }
func condCarryClear(c *CPU) bool    { return !c.hasFlag(FlagCarry) }
func condZeroSet(c *CPU) bool       { return c.hasFlag(FlagZero) }
func condZeroClear(c *CPU) bool     { return !c.hasFlag(FlagZero) }
func condNegativeSet(c *CPU) bool   { return c.hasFlag(FlagNegative) }
func condNegativeClear(c *CPU) bool { return !c.hasFlag(FlagNegative) }
func condOverflowSet(c *CPU) bool   { return c.hasFlag(FlagOverflow) }
func condOverflowClear(c *CPU) bool { return !c.hasFlag(FlagOverflow) }
func condAlways(c *CPU) bool        { return true }

// opBit builds the BIT entries.
func opBit(addr addrFunc) Execute {
	return func(c *CPU) { c.bit(c.readData(addr(c))) }
}

// opBitImm is the 65C02's BIT #i, which only affects Z (no memory
// operand to source N/V from).
func opBitImm() Execute {
	return func(c *CPU) {
		c.zeroCheck(c.A & c.fetchOperandByte())
	}
}

// opStz is the 65C02's STZ: store a literal zero.
func opStz(addr addrFunc) Execute {
	return func(c *CPU) { c.writeData(addr(c), 0) }
}

// opTrb/opTsb are the 65C02's TRB/TSB: test-and-{reset,set} bits of a
// memory location against A, setting Z from the pre-modification AND.
func opTrb(addr addrFunc) Execute {
	return func(c *CPU) {
		a := addr(c)
		v := c.readData(a)
		c.zeroCheck(v & c.A)
		c.writeData(a, v&c.A.Not())
	}
}

func opTsb(addr addrFunc) Execute {
	return func(c *CPU) {
		a := addr(c)
		v := c.readData(a)
		c.zeroCheck(v & c.A)
		c.writeData(a, v|c.A)
	}
}

// jmpAbsolute implements JMP a.
func jmpAbsolute() Execute {
	return func(c *CPU) { c.PC = c.fetchOperandWord() }
}

// jmpIndirect implements JMP (a). When fixIndirectBug is false, a
// pointer whose low byte is 0xFF reads its high byte from the start of
// the same page instead of the next one (the MOS 6502 hardware bug);
// the WDC 65C02 table passes true to fetch correctly across the page
// boundary.
func jmpIndirect(fixIndirectBug bool) Execute {
	return func(c *CPU) {
		ptr := c.fetchOperandWord()
		lo := c.readData(ptr)
		var hiAddr numeric.Word
		if !fixIndirectBug && ptr.Low() == 0xFF {
			hiAddr = numeric.Word(ptr.High()) << 8
		} else {
			hiAddr = ptr.Add(1)
		}
		hi := c.readData(hiAddr)
		c.PC = numeric.WordFromBytes(lo, hi)
	}
}

func jsr() Execute {
	return func(c *CPU) {
		target := c.fetchOperandWord()
		ret := c.PC.Sub(1)
		c.pushStack(ret.High())
		c.pushStack(ret.Low())
		c.PC = target
	}
}

func rts() Execute {
	return func(c *CPU) {
		lo := c.popStack()
		hi := c.popStack()
		c.PC = numeric.WordFromBytes(lo, hi).Add(1)
	}
}

func rti() Execute {
	return func(c *CPU) {
		c.P = c.popStack()
		c.P |= FlagS1
		c.P &^= FlagB
		lo := c.popStack()
		hi := c.popStack()
		c.PC = numeric.WordFromBytes(lo, hi)
	}
}

func pha() Execute {
	return func(c *CPU) { c.pushStack(c.A) }
}

func pla() Execute {
	return func(c *CPU) { c.loadRegister(&c.A, c.popStack()) }
}

func php() Execute {
	return func(c *CPU) { c.pushStack(c.P | FlagS1 | FlagB) }
}

func plp() Execute {
	return func(c *CPU) {
		c.P = c.popStack()
		c.P |= FlagS1
		c.P &^= FlagB
	}
}

// phx/ply etc. are 65C02 additions built with opTransfer-style stack
// access.
func pushReg(sel regSel) Execute {
	return func(c *CPU) { c.pushStack(*sel(c)) }
}

func pullReg(sel regSel) Execute {
	return func(c *CPU) { c.loadRegister(sel(c), c.popStack()) }
}

// brk implements software interrupt entry: the signature byte past the
// opcode is consumed, then PC+2, status (B set), and the IRQ vector go
// through the same entry sequence a hardware IRQ uses.
func brk() Execute {
	return func(c *CPU) {
		c.brkThisTick = true
		c.PC = c.PC.Add(1)
		c.interruptEntry(IRQVector, true)
	}
}

// nop is the single-byte, no-operand NOP.
func nop() Execute {
	return func(c *CPU) {}
}
