package cpu

// NewMos6502 builds the instruction set for the original NMOS 6502: all
// 151 documented opcodes, the well-characterized undocumented ones
// (SLO, RLA, SRE, RRA, DCP, ISC, LAX, SAX, ANC, ALR, ARR, AXS, XAA,
// LXA), the page-wrap bug in JMP (ind), and packed-BCD ADC/SBC. The
// handful of opcodes whose NMOS behavior depends on internal bus
// capacitance (AHX, TAS, SHX, SHY, LAS) have no well-defined result;
// this table halts on them rather than guess.
func NewMos6502() *InstructionSet {
	return &InstructionSet{
		Name:                "MOS 6502",
		SupportsDecimalMode: true,
		FixIndirectJMPBug:   false,
		decimalNZFromResult: false,
		Table: Table{
			0x00: {7, brk()},
			0x01: {6, opAlu(modeIndX, (*CPU).ora)},
			0x02: {2, opHalt()},
			0x03: {8, opSlo(modeIndX)},
			0x04: {3, opNopAddr(modeZP)},
			0x05: {3, opAlu(modeZP, (*CPU).ora)},
			0x06: {5, opRMW(modeZP, (*CPU).asl)},
			0x07: {5, opSlo(modeZP)},
			0x08: {3, php()},
			0x09: {2, opAluImm((*CPU).ora)},
			0x0A: {2, opRMWAcc((*CPU).asl)},
			0x0B: {2, opAnc()},
			0x0C: {4, opNopAddr(modeAbs)},
			0x0D: {4, opAlu(modeAbs, (*CPU).ora)},
			0x0E: {6, opRMW(modeAbs, (*CPU).asl)},
			0x0F: {6, opSlo(modeAbs)},

			0x10: {2, opBranch(condNegativeClear)},
			0x11: {5, opAlu(modeIndY(false), (*CPU).ora)},
			0x12: {2, opHalt()},
			0x13: {8, opSlo(modeIndY(true))},
			0x14: {4, opNopAddr(modeZPX)},
			0x15: {4, opAlu(modeZPX, (*CPU).ora)},
			0x16: {6, opRMW(modeZPX, (*CPU).asl)},
			0x17: {6, opSlo(modeZPX)},
			0x18: {2, opFlag(FlagCarry, false)},
			0x19: {4, opAlu(modeAbsY(false), (*CPU).ora)},
			0x1A: {2, opNopImplied()},
			0x1B: {7, opSlo(modeAbsY(true))},
			0x1C: {4, opNopAddr(modeAbsX(false))},
			0x1D: {4, opAlu(modeAbsX(false), (*CPU).ora)},
			0x1E: {7, opRMW(modeAbsX(true), (*CPU).asl)},
			0x1F: {7, opSlo(modeAbsX(true))},

			0x20: {6, jsr()},
			0x21: {6, opAlu(modeIndX, (*CPU).and)},
			0x22: {2, opHalt()},
			0x23: {8, opRla(modeIndX)},
			0x24: {3, opBit(modeZP)},
			0x25: {3, opAlu(modeZP, (*CPU).and)},
			0x26: {5, opRMW(modeZP, (*CPU).rol)},
			0x27: {5, opRla(modeZP)},
			0x28: {4, plp()},
			0x29: {2, opAluImm((*CPU).and)},
			0x2A: {2, opRMWAcc((*CPU).rol)},
			0x2B: {2, opAnc()},
			0x2C: {4, opBit(modeAbs)},
			0x2D: {4, opAlu(modeAbs, (*CPU).and)},
			0x2E: {6, opRMW(modeAbs, (*CPU).rol)},
			0x2F: {6, opRla(modeAbs)},

			0x30: {2, opBranch(condNegativeSet)},
			0x31: {5, opAlu(modeIndY(false), (*CPU).and)},
			0x32: {2, opHalt()},
			0x33: {8, opRla(modeIndY(true))},
			0x34: {4, opNopAddr(modeZPX)},
			0x35: {4, opAlu(modeZPX, (*CPU).and)},
			0x36: {6, opRMW(modeZPX, (*CPU).rol)},
			0x37: {6, opRla(modeZPX)},
			0x38: {2, opFlag(FlagCarry, true)},
			0x39: {4, opAlu(modeAbsY(false), (*CPU).and)},
			0x3A: {2, opNopImplied()},
			0x3B: {7, opRla(modeAbsY(true))},
			0x3C: {4, opNopAddr(modeAbsX(false))},
			0x3D: {4, opAlu(modeAbsX(false), (*CPU).and)},
			0x3E: {7, opRMW(modeAbsX(true), (*CPU).rol)},
			0x3F: {7, opRla(modeAbsX(true))},

			0x40: {6, rti()},
			0x41: {6, opAlu(modeIndX, (*CPU).eor)},
			0x42: {2, opHalt()},
			0x43: {8, opSre(modeIndX)},
			0x44: {3, opNopAddr(modeZP)},
			0x45: {3, opAlu(modeZP, (*CPU).eor)},
			0x46: {5, opRMW(modeZP, (*CPU).lsr)},
			0x47: {5, opSre(modeZP)},
			0x48: {3, pha()},
			0x49: {2, opAluImm((*CPU).eor)},
			0x4A: {2, opRMWAcc((*CPU).lsr)},
			0x4B: {2, opAlr()},
			0x4C: {3, jmpAbsolute()},
			0x4D: {4, opAlu(modeAbs, (*CPU).eor)},
			0x4E: {6, opRMW(modeAbs, (*CPU).lsr)},
			0x4F: {6, opSre(modeAbs)},

			0x50: {2, opBranch(condOverflowClear)},
			0x51: {5, opAlu(modeIndY(false), (*CPU).eor)},
			0x52: {2, opHalt()},
			0x53: {8, opSre(modeIndY(true))},
			0x54: {4, opNopAddr(modeZPX)},
			0x55: {4, opAlu(modeZPX, (*CPU).eor)},
			0x56: {6, opRMW(modeZPX, (*CPU).lsr)},
			0x57: {6, opSre(modeZPX)},
			0x58: {2, opFlag(FlagInterrupt, false)},
			0x59: {4, opAlu(modeAbsY(false), (*CPU).eor)},
			0x5A: {2, opNopImplied()},
			0x5B: {7, opSre(modeAbsY(true))},
			0x5C: {4, opNopAddr(modeAbsX(false))},
			0x5D: {4, opAlu(modeAbsX(false), (*CPU).eor)},
			0x5E: {7, opRMW(modeAbsX(true), (*CPU).lsr)},
			0x5F: {7, opSre(modeAbsX(true))},

			0x60: {6, rts()},
			0x61: {6, opAlu(modeIndX, (*CPU).adc)},
			0x62: {2, opHalt()},
			0x63: {8, opRra(modeIndX)},
			0x64: {3, opNopAddr(modeZP)},
			0x65: {3, opAlu(modeZP, (*CPU).adc)},
			0x66: {5, opRMW(modeZP, (*CPU).ror)},
			0x67: {5, opRra(modeZP)},
			0x68: {4, pla()},
			0x69: {2, opAluImm((*CPU).adc)},
			0x6A: {2, opRMWAcc((*CPU).ror)},
			0x6B: {2, opArr()},
			0x6C: {5, jmpIndirect(false)},
			0x6D: {4, opAlu(modeAbs, (*CPU).adc)},
			0x6E: {6, opRMW(modeAbs, (*CPU).ror)},
			0x6F: {6, opRra(modeAbs)},

			0x70: {2, opBranch(condOverflowSet)},
			0x71: {5, opAlu(modeIndY(false), (*CPU).adc)},
			0x72: {2, opHalt()},
			0x73: {8, opRra(modeIndY(true))},
			0x74: {4, opNopAddr(modeZPX)},
			0x75: {4, opAlu(modeZPX, (*CPU).adc)},
			0x76: {6, opRMW(modeZPX, (*CPU).ror)},
			0x77: {6, opRra(modeZPX)},
			0x78: {2, opFlag(FlagInterrupt, true)},
			0x79: {4, opAlu(modeAbsY(false), (*CPU).adc)},
			0x7A: {2, opNopImplied()},
			0x7B: {7, opRra(modeAbsY(true))},
			0x7C: {4, opNopAddr(modeAbsX(false))},
			0x7D: {4, opAlu(modeAbsX(false), (*CPU).adc)},
			0x7E: {7, opRMW(modeAbsX(true), (*CPU).ror)},
			0x7F: {7, opRra(modeAbsX(true))},

			0x80: {2, opNopImm()},
			0x81: {6, opStore(regA, modeIndX)},
			0x82: {2, opNopImm()},
			0x83: {6, opSax(modeIndX)},
			0x84: {3, opStore(regY, modeZP)},
			0x85: {3, opStore(regA, modeZP)},
			0x86: {3, opStore(regX, modeZP)},
			0x87: {3, opSax(modeZP)},
			0x88: {2, opRegDec(regY)},
			0x89: {2, opNopImm()},
			0x8A: {2, opTransfer(regX, regA, true)},
			0x8B: {2, opXaa()},
			0x8C: {4, opStore(regY, modeAbs)},
			0x8D: {4, opStore(regA, modeAbs)},
			0x8E: {4, opStore(regX, modeAbs)},
			0x8F: {4, opSax(modeAbs)},

			0x90: {2, opBranch(condCarryClear)},
			0x91: {6, opStore(regA, modeIndY(true))},
			0x92: {2, opHalt()},
			0x93: {6, haltEntry().Execute},
			0x94: {4, opStore(regY, modeZPX)},
			0x95: {4, opStore(regA, modeZPX)},
			0x96: {4, opStore(regX, modeZPY)},
			0x97: {4, opSax(modeZPY)},
			0x98: {2, opTransfer(regY, regA, true)},
			0x99: {5, opStore(regA, modeAbsY(true))},
			0x9A: {2, opTransfer(regX, spReg, false)},
			0x9B: {5, haltEntry().Execute},
			0x9C: {5, haltEntry().Execute},
			0x9D: {5, opStore(regA, modeAbsX(true))},
			0x9E: {5, haltEntry().Execute},
			0x9F: {5, haltEntry().Execute},

			0xA0: {2, opLoadImm(regY)},
			0xA1: {6, opLoad(regA, modeIndX)},
			0xA2: {2, opLoadImm(regX)},
			0xA3: {6, opLax(modeIndX)},
			0xA4: {3, opLoad(regY, modeZP)},
			0xA5: {3, opLoad(regA, modeZP)},
			0xA6: {3, opLoad(regX, modeZP)},
			0xA7: {3, opLax(modeZP)},
			0xA8: {2, opTransfer(regA, regY, true)},
			0xA9: {2, opLoadImm(regA)},
			0xAA: {2, opTransfer(regA, regX, true)},
			0xAB: {2, opOal()},
			0xAC: {4, opLoad(regY, modeAbs)},
			0xAD: {4, opLoad(regA, modeAbs)},
			0xAE: {4, opLoad(regX, modeAbs)},
			0xAF: {4, opLax(modeAbs)},

			0xB0: {2, opBranch(condCarrySet)},
			0xB1: {5, opLoad(regA, modeIndY(false))},
			0xB2: {2, opHalt()},
			0xB3: {5, opLax(modeIndY(false))},
			0xB4: {4, opLoad(regY, modeZPX)},
			0xB5: {4, opLoad(regA, modeZPX)},
			0xB6: {4, opLoad(regX, modeZPY)},
			0xB7: {4, opLax(modeZPY)},
			0xB8: {2, opFlag(FlagOverflow, false)},
			0xB9: {4, opLoad(regA, modeAbsY(false))},
			0xBA: {2, opTransfer(spReg, regX, true)},
			0xBB: {4, haltEntry().Execute},
			0xBC: {4, opLoad(regY, modeAbsX(false))},
			0xBD: {4, opLoad(regA, modeAbsX(false))},
			0xBE: {4, opLoad(regX, modeAbsY(false))},
			0xBF: {4, opLax(modeAbsY(false))},

			0xC0: {2, opCompareImm(regY)},
			0xC1: {6, opCompare(regA, modeIndX)},
			0xC2: {2, opNopImm()},
			0xC3: {8, opDcp(modeIndX)},
			0xC4: {3, opCompare(regY, modeZP)},
			0xC5: {3, opCompare(regA, modeZP)},
			0xC6: {5, opRMW(modeZP, (*CPU).dec)},
			0xC7: {5, opDcp(modeZP)},
			0xC8: {2, opRegInc(regY)},
			0xC9: {2, opCompareImm(regA)},
			0xCA: {2, opRegDec(regX)},
			0xCB: {2, opAxs()},
			0xCC: {4, opCompare(regY, modeAbs)},
			0xCD: {4, opCompare(regA, modeAbs)},
			0xCE: {6, opRMW(modeAbs, (*CPU).dec)},
			0xCF: {6, opDcp(modeAbs)},

			0xD0: {2, opBranch(condZeroClear)},
			0xD1: {5, opCompare(regA, modeIndY(false))},
			0xD2: {2, opHalt()},
			0xD3: {8, opDcp(modeIndY(true))},
			0xD4: {4, opNopAddr(modeZPX)},
			0xD5: {4, opCompare(regA, modeZPX)},
			0xD6: {6, opRMW(modeZPX, (*CPU).dec)},
			0xD7: {6, opDcp(modeZPX)},
			0xD8: {2, opFlag(FlagDecimal, false)},
			0xD9: {4, opCompare(regA, modeAbsY(false))},
			0xDA: {2, opNopImplied()},
			0xDB: {7, opDcp(modeAbsY(true))},
			0xDC: {4, opNopAddr(modeAbsX(false))},
			0xDD: {4, opCompare(regA, modeAbsX(false))},
			0xDE: {7, opRMW(modeAbsX(true), (*CPU).dec)},
			0xDF: {7, opDcp(modeAbsX(true))},

			0xE0: {2, opCompareImm(regX)},
			0xE1: {6, opAlu(modeIndX, (*CPU).sbc)},
			0xE2: {2, opNopImm()},
			0xE3: {8, opIsc(modeIndX)},
			0xE4: {3, opCompare(regX, modeZP)},
			0xE5: {3, opAlu(modeZP, (*CPU).sbc)},
			0xE6: {5, opRMW(modeZP, (*CPU).inc)},
			0xE7: {5, opIsc(modeZP)},
			0xE8: {2, opRegInc(regX)},
			0xE9: {2, opAluImm((*CPU).sbc)},
			0xEA: {2, opNopImplied()},
			0xEB: {2, opAluImm((*CPU).sbc)},
			0xEC: {4, opCompare(regX, modeAbs)},
			0xED: {4, opAlu(modeAbs, (*CPU).sbc)},
			0xEE: {6, opRMW(modeAbs, (*CPU).inc)},
			0xEF: {6, opIsc(modeAbs)},

			0xF0: {2, opBranch(condZeroSet)},
			0xF1: {5, opAlu(modeIndY(false), (*CPU).sbc)},
			0xF2: {2, opHalt()},
			0xF3: {8, opIsc(modeIndY(true))},
			0xF4: {4, opNopAddr(modeZPX)},
			0xF5: {4, opAlu(modeZPX, (*CPU).sbc)},
			0xF6: {6, opRMW(modeZPX, (*CPU).inc)},
			0xF7: {6, opIsc(modeZPX)},
			0xF8: {2, opFlag(FlagDecimal, true)},
			0xF9: {4, opAlu(modeAbsY(false), (*CPU).sbc)},
			0xFA: {2, opNopImplied()},
			0xFB: {7, opIsc(modeAbsY(true))},
			0xFC: {4, opNopAddr(modeAbsX(false))},
			0xFD: {4, opAlu(modeAbsX(false), (*CPU).sbc)},
			0xFE: {7, opRMW(modeAbsX(true), (*CPU).inc)},
			0xFF: {7, opIsc(modeAbsX(true))},
		},
	}
}
