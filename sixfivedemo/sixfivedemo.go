// sixfivedemo runs a small hand-assembled program on a MOS 6502 over
// a flat 64k bus and prints the final machine state. It exists to
// demonstrate wiring the public API together; pass --variant to run
// the same bytes on a 65C02 or a Ricoh 2A03 instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mkern/sixfive/bus"
	"github.com/mkern/sixfive/cpu"
	"github.com/mkern/sixfive/numeric"
)

var (
	variant   = flag.String("variant", "mos6502", "Instruction set to run: mos6502, 65c02 or 2a03")
	maxCycles = flag.Uint64("max_cycles", 10000, "Cycle budget in case the program never reaches BRK")
)

func main() {
	flag.Parse()

	var iset *cpu.InstructionSet
	switch *variant {
	case "mos6502":
		iset = cpu.NewMos6502()
	case "65c02":
		iset = cpu.NewWdc65C02()
	case "2a03":
		iset = cpu.NewRicoh2A03()
	default:
		log.Fatalf("Invalid command: %s --variant=mos6502|65c02|2a03", os.Args[0])
	}

	// Sum 1..10 into A, stash the result in zero page, then BRK.
	//   LDA #$00
	//   LDX #$0A
	// loop:
	//   STX $01    ; scratch
	//   CLC
	//   ADC $01
	//   DEX
	//   BNE loop
	//   STA $00
	//   BRK
	program := []numeric.Byte{
		0xA9, 0x00,
		0xA2, 0x0A,
		0x86, 0x01,
		0x18,
		0x65, 0x01,
		0xCA,
		0xD0, 0xF8,
		0x85, 0x00,
		0x00,
	}

	b := bus.NewSimpleBus()
	c, err := cpu.NewWithProgram(b, iset, 0x8000, program, 0x8000)
	if err != nil {
		log.Fatalf("Can't initialize cpu - %v", err)
	}

	summary := c.RunUntil(cpu.RunConfig{StopOnBrk: true, MaxCycles: maxCycles})

	fmt.Printf("Ran %d instructions in %d cycles on %s (stop: %s)\n",
		summary.InstructionsExecuted, summary.CyclesConsumed, iset.Name, summary.StopReason)
	fmt.Printf("A: 0x%.2X X: 0x%.2X Y: 0x%.2X SP: 0x%.2X PC: 0x%.4X\n",
		c.A, c.X, c.Y, c.SP, uint16(c.PC))
	fmt.Printf("Sum at $00: %d\n", b.Read(0x0000, bus.DataRead))
}
