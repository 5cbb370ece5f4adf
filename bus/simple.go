package bus

import (
	"github.com/mkern/sixfive/memory"
	"github.com/mkern/sixfive/numeric"
)

// SimpleBus is a flat 64 KiB RAM bus with no peripherals and no DMA.
// Reference implementation for examples and tests.
type SimpleBus struct {
	ram memory.Bank
}

// NewSimpleBus returns a powered-on SimpleBus.
func NewSimpleBus() *SimpleBus {
	return &SimpleBus{ram: memory.NewFlatRAM()}
}

// Read implements Bus. access is ignored; SimpleBus has no side effects.
func (b *SimpleBus) Read(addr numeric.Word, _ AccessTag) numeric.Byte {
	return numeric.Byte(b.ram.Read(uint16(addr)))
}

// Write implements Bus. Addresses wrap mod 65536 by construction
// (addr is a numeric.Word), so a caller writing past the end of the
// address space simply wraps rather than erroring.
func (b *SimpleBus) Write(addr numeric.Word, value numeric.Byte, _ AccessTag) {
	b.ram.Write(uint16(addr), uint8(value))
}

// OnTick is a no-op; SimpleBus keeps no clock of its own.
func (b *SimpleBus) OnTick(numeric.Byte) {}

// RequestDMA always rejects; SimpleBus has nothing to DMA into or from.
func (b *SimpleBus) RequestDMA(DmaRequest) DmaResult {
	return DmaResult{Accepted: false, Reason: "SimpleBus does not support DMA"}
}

// PollDMACycle never has DMA pending.
func (b *SimpleBus) PollDMACycle() (numeric.Byte, bool) {
	return 0, false
}

// WriteBlock copies bytes into RAM starting at addr, one Write call per
// byte tagged as DataWrite, matching how cpu.NewWithProgram loads a
// program.
func (b *SimpleBus) WriteBlock(addr numeric.Word, bytes []numeric.Byte) {
	for i, v := range bytes {
		b.Write(addr.Add(numeric.Word(i)), v, DataWrite)
	}
}

// SetResetVector writes w, low byte then high byte, at 0xFFFC/0xFFFD.
func (b *SimpleBus) SetResetVector(w numeric.Word) {
	b.Write(0xFFFC, w.Low(), DataWrite)
	b.Write(0xFFFD, w.High(), DataWrite)
}
