// Package cpu implements the pluggable 6502-family instruction table
// model and the cycle-budgeted CPU execution engine that drives it.
// Table and engine share this package because an opcode's Execute
// closure is a method value over *CPU: splitting them into separate
// packages would require an import cycle between the table and the
// type it dispatches against.
package cpu

import (
	"fmt"

	"github.com/mkern/sixfive/bus"
	"github.com/mkern/sixfive/numeric"
)

// CPU is one 6502-family processor instance bound to a bus and an
// instruction-set variant for its lifetime.
type CPU struct {
	A, X, Y numeric.Byte
	SP      numeric.Byte
	PC      numeric.Word
	P       numeric.Byte

	cycles  uint64
	halted  bool
	waiting bool

	// extraCycles accumulates spendCycles charges made during the
	// instruction currently executing; Tick folds it into the total it
	// reports to Bus.OnTick and resets it before the next fetch.
	extraCycles uint64
	// brkThisTick is set by the BRK opcode handler so RunUntil can tell
	// a software break from any other instruction.
	brkThisTick bool
	// lastTickCycles remembers what the most recent Tick charged,
	// instruction plus DMA drain.
	lastTickCycles numeric.Byte

	Bus  bus.Bus
	iset *InstructionSet
}

// InvalidConfigError reports a construction-time problem: a nil bus or
// instruction set. Tick/Run/RunUntil themselves never return an
// error; only construction can reject bad input.
type InvalidConfigError struct {
	Reason string
}

func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid cpu configuration: %s", e.Reason)
}

func validate(b bus.Bus, iset *InstructionSet) error {
	if b == nil {
		return InvalidConfigError{"bus must not be nil"}
	}
	if iset == nil {
		return InvalidConfigError{"instruction set must not be nil"}
	}
	return nil
}

// New constructs a CPU bound to bus and iset, with A=X=Y=0, SP=0xFD, P
// with only I and the always-set bit 5 (FlagS1) set, and PC=initialPC.
func New(b bus.Bus, iset *InstructionSet, initialPC numeric.Word) (*CPU, error) {
	if err := validate(b, iset); err != nil {
		return nil, err
	}
	c := &CPU{Bus: b, iset: iset}
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagS1 | FlagInterrupt
	c.PC = initialPC
	c.cycles = 0
	c.halted = false
	return c, nil
}

// NewWithProgram writes bytes into bus starting at loadAddr (tagged
// DataWrite), then constructs a CPU as New would with PC=initialPC.
func NewWithProgram(b bus.Bus, iset *InstructionSet, loadAddr numeric.Word, program []numeric.Byte, initialPC numeric.Word) (*CPU, error) {
	if err := validate(b, iset); err != nil {
		return nil, err
	}
	for i, v := range program {
		b.Write(loadAddr.Add(numeric.Word(i)), v, bus.DataWrite)
	}
	return New(b, iset, initialPC)
}

// NewWithResetVector constructs a CPU as New would, except PC is loaded
// from the reset vector at 0xFFFC/0xFFFD (low byte first), fetched
// tagged VectorFetch.
func NewWithResetVector(b bus.Bus, iset *InstructionSet) (*CPU, error) {
	c, err := New(b, iset, 0)
	if err != nil {
		return nil, err
	}
	lo := b.Read(ResetVector, bus.VectorFetch)
	hi := b.Read(ResetVector.Add(1), bus.VectorFetch)
	c.PC = numeric.WordFromBytes(lo, hi)
	return c, nil
}

// A-Y-SP-PC-P accessors. Mutating accessors exist for tests and
// debuggers.

// Cycles returns the total cycle count consumed by this instance since
// construction, including DMA cycles.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Halted reports whether the CPU has entered the terminal Halted state.
func (c *CPU) Halted() bool { return c.halted }

// Waiting reports whether the CPU is parked on a WAI instruction. An
// interrupt entry resumes it; unlike Halted, the state is not
// terminal.
func (c *CPU) Waiting() bool { return c.waiting }

// LastTickCycles returns what the most recent Tick charged, instruction
// plus DMA drain. Zero before the first Tick or after a halted one.
func (c *CPU) LastTickCycles() numeric.Byte { return c.lastTickCycles }

// SetPC sets the program counter directly.
func (c *CPU) SetPC(pc numeric.Word) { c.PC = pc }

// SetSP sets the stack pointer directly.
func (c *CPU) SetSP(sp numeric.Byte) { c.SP = sp }

// SetA sets the accumulator directly.
func (c *CPU) SetA(v numeric.Byte) { c.A = v }

// SetX sets the X register directly.
func (c *CPU) SetX(v numeric.Byte) { c.X = v }

// SetY sets the Y register directly.
func (c *CPU) SetY(v numeric.Byte) { c.Y = v }

// SetFlag sets or clears one bit of P directly (mask is one of the
// Flag* constants).
func (c *CPU) SetFlag(mask numeric.Byte, set bool) { c.setFlag(mask, set) }

// Flag reports whether the given bit of P is set.
func (c *CPU) Flag(mask numeric.Byte) bool { return c.hasFlag(mask) }

// spendCycles charges n cycles beyond an opcode's BaseCycles, used by
// Execute functions for page crossings, taken branches, and
// decimal-mode ADC/SBC timing.
func (c *CPU) spendCycles(n numeric.Byte) {
	c.cycles += uint64(n)
	c.extraCycles += uint64(n)
}

func (c *CPU) pushStack(val numeric.Byte) {
	c.Bus.Write(numeric.Word(0x0100)|numeric.Word(c.SP), val, bus.StackPush)
	c.SP = c.SP.Sub(1)
}

func (c *CPU) popStack() numeric.Byte {
	c.SP = c.SP.Add(1)
	return c.Bus.Read(numeric.Word(0x0100)|numeric.Word(c.SP), bus.StackPull)
}

// interruptEntry pushes PC (high then low) and P (with B set or
// cleared per bSet), sets I, and loads PC from vector. It charges no
// cycles itself: callers reached through the opcode table already
// have that cost in BaseCycles; callers reached directly charge it
// themselves via charge.
func (c *CPU) interruptEntry(vector numeric.Word, bSet bool) {
	c.pushStack(c.PC.High())
	c.pushStack(c.PC.Low())
	status := c.P | FlagS1
	if bSet {
		status |= FlagB
	} else {
		status &^= FlagB
	}
	c.pushStack(status)
	c.setFlag(FlagInterrupt, true)
	c.waiting = false
	lo := c.Bus.Read(vector, bus.VectorFetch)
	hi := c.Bus.Read(vector.Add(1), bus.VectorFetch)
	c.PC = numeric.WordFromBytes(lo, hi)
}

func (c *CPU) charge(n numeric.Byte) {
	c.cycles += uint64(n)
	c.Bus.OnTick(n)
}

// RaiseIRQ performs a maskable hardware interrupt entry through the
// IRQ vector, charging the same seven cycles BRK does. A no-op while
// the I flag is set.
func (c *CPU) RaiseIRQ() {
	if c.hasFlag(FlagInterrupt) {
		return
	}
	c.interruptEntry(IRQVector, false)
	c.charge(7)
}

// RaiseNMI performs a non-maskable interrupt entry through the NMI
// vector. Never masked by the I flag.
func (c *CPU) RaiseNMI() {
	c.interruptEntry(NMIVector, false)
	c.charge(7)
}

// Reset transitions a Halted CPU back to Running and restores PC from
// the reset vector. A, X, Y, and the rest of P are left exactly as
// they were; SP is decremented by 3 as if three pushes had occurred,
// and I is set, matching real reset timing without a real stack
// write.
func (c *CPU) Reset() {
	c.halted = false
	c.waiting = false
	c.SP = c.SP.Sub(3)
	c.setFlag(FlagInterrupt, true)
	lo := c.Bus.Read(ResetVector, bus.VectorFetch)
	hi := c.Bus.Read(ResetVector.Add(1), bus.VectorFetch)
	c.PC = numeric.WordFromBytes(lo, hi)
	c.charge(7)
}

// Tick executes exactly one instruction, then drains any DMA the bus
// has queued, accounting every cycle in the running counter. It
// returns the number of cycles this call added: the instruction plus
// any drained DMA.
func (c *CPU) Tick() numeric.Byte {
	if c.halted || c.waiting {
		c.lastTickCycles = 0
		return 0
	}

	before := c.cycles
	c.extraCycles = 0

	op := c.Bus.Read(c.PC, bus.OpcodeFetch)
	c.PC = c.PC.Add(1)

	entry := c.iset.Table[op]
	entry.Execute(c)

	c.cycles += uint64(entry.BaseCycles)
	total := entry.BaseCycles + numeric.Byte(c.extraCycles)
	c.Bus.OnTick(total)

	for {
		n, ok := c.Bus.PollDMACycle()
		if !ok {
			break
		}
		c.cycles += uint64(n)
		c.Bus.OnTick(n)
	}

	c.lastTickCycles = numeric.Byte(c.cycles - before)
	return c.lastTickCycles
}

// Run repeatedly ticks until the cycles consumed since entry reach
// maxCycles or Halted becomes true, then returns a RunSummary (spec
// §4.4).
func (c *CPU) Run(maxCycles uint64) RunSummary {
	return c.RunUntil(RunConfig{MaxCycles: &maxCycles})
}

// StopReason identifies which RunConfig condition ended a RunUntil
// call.
type StopReason int

const (
	StopNone StopReason = iota
	StopBrk
	StopPcReached
	StopCycleLimit
	StopInstructionLimit
	StopPredicate
	StopHalted
)

func (r StopReason) String() string {
	switch r {
	case StopBrk:
		return "Brk"
	case StopPcReached:
		return "PcReached"
	case StopCycleLimit:
		return "CycleLimit"
	case StopInstructionLimit:
		return "InstructionLimit"
	case StopPredicate:
		return "Predicate"
	case StopHalted:
		return "Halted"
	default:
		return "None"
	}
}

// RunPredicate is a user-supplied, read-only inspection of the CPU and
// bus, invoked after each tick. Returning true ends the run.
type RunPredicate func(c *CPU, b bus.Bus) bool

// RunConfig configures RunUntil's stop policy.
type RunConfig struct {
	StopOnBrk bool
	StopAtPC  *numeric.Word
	MaxCycles *uint64
	// InstructionLimit bounds the run by instruction count rather than
	// cycles, checked after MaxCycles.
	InstructionLimit *uint64
	Predicate        RunPredicate
}

// RunSummary reports how a RunUntil call ended.
type RunSummary struct {
	CyclesConsumed       uint64
	InstructionsExecuted uint64
	StopReason           StopReason
}

// RunUntil repeatedly ticks, checking stop conditions in the order
// Halted, StopOnBrk, StopAtPC, MaxCycles, InstructionLimit, Predicate
// after every instruction. A BRK that fires StopOnBrk also transitions
// the CPU to Halted, so a later run returns immediately until Reset.
func (c *CPU) RunUntil(cfg RunConfig) RunSummary {
	var summary RunSummary
	startCycles := c.cycles

	if c.halted {
		summary.StopReason = StopHalted
		return summary
	}

	for {
		c.brkThisTick = false
		if c.Tick() == 0 {
			// No forward progress: the CPU is parked on a WAI and
			// nothing will unpark it from inside this loop.
			summary.StopReason = StopHalted
			return summary
		}
		summary.InstructionsExecuted++
		summary.CyclesConsumed = c.cycles - startCycles

		switch {
		case c.halted:
			summary.StopReason = StopHalted
		case cfg.StopOnBrk && c.brkThisTick:
			c.halted = true
			summary.StopReason = StopBrk
		case cfg.StopAtPC != nil && c.PC == *cfg.StopAtPC:
			summary.StopReason = StopPcReached
		case cfg.MaxCycles != nil && summary.CyclesConsumed >= *cfg.MaxCycles:
			summary.StopReason = StopCycleLimit
		case cfg.InstructionLimit != nil && summary.InstructionsExecuted >= *cfg.InstructionLimit:
			summary.StopReason = StopInstructionLimit
		case cfg.Predicate != nil && cfg.Predicate(c, c.Bus):
			summary.StopReason = StopPredicate
		default:
			continue
		}
		return summary
	}
}
