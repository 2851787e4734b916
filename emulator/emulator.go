// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ezrec/golmc/lmc"
)

// Emulator binds an assembled program to a simulator, supplying requested
// input values from a reader and collecting output values to a writer.
// Stepping cadence belongs to the caller; Tick performs one machine step.
type Emulator struct {
	Verbose        bool         // If set, enables verbose logging.
	*lmc.Simulator              // Reference to the machine simulation.
	Program        *lmc.Program // Currently loaded program listing.

	Input  io.Reader // Whitespace separated decimal input values.
	Output io.Writer // Receives one decimal output value per line.

	scanner *bufio.Scanner
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Simulator: lmc.NewSimulator(),
		Program:   &lmc.Program{},
	}

	return
}

// Reset the machine state and load the program into the mailboxes.
func (emu *Emulator) Reset() {
	emu.Simulator.Verbose = emu.Verbose

	emu.Simulator.Reset()
	emu.Simulator.LoadProgram(emu.Program.Binary())
	emu.scanner = nil
}

// LineNo returns the source line number for the executing mailbox.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// readInput scans the next decimal value from the input stream.
func (emu *Emulator) readInput() (value int, err error) {
	if emu.scanner == nil {
		if emu.Input == nil {
			err = ErrInputExhausted
			return
		}
		emu.scanner = bufio.NewScanner(emu.Input)
		emu.scanner.Split(bufio.ScanWords)
	}

	if !emu.scanner.Scan() {
		err = emu.scanner.Err()
		if err == nil {
			err = ErrInputExhausted
		}
		return
	}

	value, err = strconv.Atoi(emu.scanner.Text())
	return
}

// Tick performs a single step of the emulator, writing any produced output
// value and satisfying any input request before returning.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Simulator.Verbose = emu.Verbose

	if emu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	output, ok, err := emu.Simulator.Step()
	if err != nil {
		return
	}
	if ok && emu.Output != nil {
		_, err = fmt.Fprintln(emu.Output, output)
		if err != nil {
			return
		}
	}

	if emu.AwaitingInput {
		var value int
		value, err = emu.readInput()
		if err != nil {
			return
		}
		err = emu.Simulator.LoadInput(value)
		if err != nil {
			return
		}
	}

	done = emu.Halted
	return
}

// Run ticks the emulator until the machine halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
