package cpu

// NewRicoh2A03 builds the instruction set for the Ricoh 2A03/2A07 used
// in the NES and Famicom: identical to the NMOS 6502 in every opcode
// and timing, except the silicon never implements packed-BCD mode:
// ADC/SBC always do binary math regardless of the D flag, and SED/CLD
// only toggle a flag bit no opcode ever reads.
func NewRicoh2A03() *InstructionSet {
	s := NewMos6502()
	s.Name = "Ricoh 2A03"
	s.SupportsDecimalMode = false
	return s
}
