package bus

import (
	"github.com/mkern/sixfive/irq"
	"github.com/mkern/sixfive/memory"
	"github.com/mkern/sixfive/numeric"
)

// TestingBus is a flat 64 KiB RAM bus instrumented with cycle counters
// and a queue of DMA bursts, for exercising the CPU engine's DMA
// interleaving and tick accounting.
type TestingBus struct {
	ram memory.Bank

	// TotalCycles accumulates every OnTick call, instruction and DMA.
	TotalCycles uint64
	// DMACycles accumulates only the cycles drained via PollDMACycle.
	DMACycles uint64

	dmaQueue []numeric.Byte

	// Reads/Writes record every access in order, for assertions about
	// access ordering within an instruction.
	Reads  []AccessRecord
	Writes []AccessRecord

	irqSource irq.Sender
}

// AccessRecord captures one bus transaction for test assertions.
type AccessRecord struct {
	Addr   numeric.Word
	Value  numeric.Byte
	Access AccessTag
}

// NewTestingBus returns a powered-on TestingBus with no DMA queued.
func NewTestingBus() *TestingBus {
	return &TestingBus{ram: memory.NewFlatRAM()}
}

// Read implements Bus.
func (b *TestingBus) Read(addr numeric.Word, access AccessTag) numeric.Byte {
	v := numeric.Byte(b.ram.Read(uint16(addr)))
	b.Reads = append(b.Reads, AccessRecord{addr, v, access})
	return v
}

// Write implements Bus.
func (b *TestingBus) Write(addr numeric.Word, value numeric.Byte, access AccessTag) {
	b.ram.Write(uint16(addr), uint8(value))
	b.Writes = append(b.Writes, AccessRecord{addr, value, access})
}

// OnTick implements Bus, accumulating TotalCycles.
func (b *TestingBus) OnTick(cycles numeric.Byte) {
	b.TotalCycles += uint64(cycles)
}

// QueueDMA enqueues a DMA burst of the given cycle cost, to be drained
// one entry per PollDMACycle call in FIFO order.
func (b *TestingBus) QueueDMA(cycles numeric.Byte) {
	b.dmaQueue = append(b.dmaQueue, cycles)
}

// RequestDMA accepts any request and enqueues its cycle cost.
func (b *TestingBus) RequestDMA(req DmaRequest) DmaResult {
	b.QueueDMA(req.Cycles)
	return DmaResult{Accepted: true}
}

// PollDMACycle drains the queue FIFO, one burst per call.
func (b *TestingBus) PollDMACycle() (numeric.Byte, bool) {
	if len(b.dmaQueue) == 0 {
		return 0, false
	}
	n := b.dmaQueue[0]
	b.dmaQueue = b.dmaQueue[1:]
	b.DMACycles += uint64(n)
	return n, true
}

// WriteBlock copies bytes into RAM starting at addr, tagged DataWrite.
func (b *TestingBus) WriteBlock(addr numeric.Word, bytes []numeric.Byte) {
	for i, v := range bytes {
		b.Write(addr.Add(numeric.Word(i)), v, DataWrite)
	}
}

// SetResetVector writes w, low byte then high byte, at 0xFFFC/0xFFFD.
func (b *TestingBus) SetResetVector(w numeric.Word) {
	b.Write(0xFFFC, w.Low(), DataWrite)
	b.Write(0xFFFD, w.High(), DataWrite)
}

// Install implements irq.Receiver, letting a peripheral register itself
// as the source the bus reports through IRQSource.
func (b *TestingBus) Install(s irq.Sender) {
	b.irqSource = s
}

// IRQSource reports whether an installed peripheral is currently
// holding the interrupt line high. Returns false with no peripheral
// installed.
func (b *TestingBus) IRQSource() bool {
	if b.irqSource == nil {
		return false
	}
	return b.irqSource.Raised()
}
