package lmc

import (
	"fmt"
	"log"
)

const (
	MAILBOX_COUNT = 100 // Number of mailbox cells in the machine.
	INPUT_LIMIT   = 999 // Largest value accepted by LoadInput.
)

// Simulator is the simulation context for the Little Man Computer.
//
// Pc, Acc, Mailboxes, Halted, and AwaitingInput are observable between
// steps, and are mutated only by Reset, LoadProgram, LoadInput, and Step.
// The simulator is single threaded; calls must be strictly sequential.
type Simulator struct {
	Verbose bool // Set to enable verbose logging.

	Pc        int                // Program counter.
	Acc       int                // Accumulator.
	Mailboxes [MAILBOX_COUNT]int // Unified code and data cells.

	Halted        bool // Set once a HLT instruction executes.
	AwaitingInput bool // Set while an INP instruction waits for LoadInput.
}

// NewSimulator creates a new simulator in the reset state.
func NewSimulator() (sim *Simulator) {
	sim = &Simulator{}
	sim.Reset()
	return
}

// String returns the current machine state as a string.
func (sim *Simulator) String() (text string) {
	state := "run"
	switch {
	case sim.Halted:
		state = "halt"
	case sim.AwaitingInput:
		state = "inp"
	}
	text = fmt.Sprintf("pc:%02d acc:%v %v", sim.Pc, sim.Acc, state)
	return
}

// Reset the machine state.
// - Zeros the program counter and accumulator.
// - Zero-fills all mailboxes.
// - Clears the halted and awaiting-input flags.
func (sim *Simulator) Reset() {
	if sim.Verbose {
		log.Printf("lmc: reset")
	}

	sim.Pc = 0
	sim.Acc = 0
	clear(sim.Mailboxes[:])
	sim.Halted = false
	sim.AwaitingInput = false
}

// LoadProgram copies machine code into the mailboxes starting at cell 0.
// Programs longer than the mailbox count are silently truncated. Cells
// beyond the program keep their prior contents. Clears only the halted
// flag; the program counter and accumulator are left alone.
func (sim *Simulator) LoadProgram(code []int) {
	count := min(MAILBOX_COUNT, len(code))
	copy(sim.Mailboxes[:count], code[:count])
	sim.Halted = false
}

// LoadInput satisfies a pending input request by storing a value in the
// accumulator and clearing the awaiting-input flag. Values above
// INPUT_LIMIT are rejected. Negative values are accepted; the accumulator
// is signed.
func (sim *Simulator) LoadInput(value int) (err error) {
	if value > INPUT_LIMIT {
		err = ErrInputRange
		return
	}

	sim.Acc = value
	sim.AwaitingInput = false
	return
}

// Step performs exactly one fetch-decode-execute cycle. If the executed
// instruction was OUT, the accumulator value is returned with ok set.
//
// A halted machine steps as a no-op. Stepping while input is pending is an
// error, as is a program counter outside the mailboxes, or an instruction
// that decodes to no known opcode.
func (sim *Simulator) Step() (output int, ok bool, err error) {
	if sim.Halted {
		return
	}
	if sim.AwaitingInput {
		err = ErrAwaitingInput
		return
	}
	if sim.Pc < 0 || sim.Pc >= MAILBOX_COUNT {
		err = ErrPcRange
		return
	}

	instruction := sim.Mailboxes[sim.Pc]
	opcode, operand := Decode(instruction)

	if sim.Verbose {
		log.Printf("%02d: %03d", sim.Pc, instruction)
	}

	// Branch opcodes overwrite the default advance.
	sim.Pc += 1

	switch opcode {
	case OP_HLT:
		sim.Halted = true
	case OP_ADD:
		sim.Acc += sim.Mailboxes[operand]
	case OP_SUB:
		sim.Acc -= sim.Mailboxes[operand]
	case OP_STA:
		sim.Mailboxes[operand] = sim.Acc
	case OP_LDA:
		sim.Acc = sim.Mailboxes[operand]
	case OP_BRA:
		sim.Pc = operand
	case OP_BRZ:
		if sim.Acc == 0 {
			sim.Pc = operand
		}
	case OP_BRP:
		// Zero counts as positive.
		if sim.Acc >= 0 {
			sim.Pc = operand
		}
	case OP_INP:
		// Acc holds a placeholder until LoadInput supplies the value.
		sim.AwaitingInput = true
		sim.Acc = 0
	case OP_OUT:
		output = sim.Acc
		ok = true
	default:
		err = ErrOpcodeInvalid(instruction)
	}

	return
}
