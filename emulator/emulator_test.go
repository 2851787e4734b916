package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/golmc/lmc"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Simulator)
	assert.NotNil(emu.Program)
}

func doRun(emu *Emulator, program []string, input string, t *testing.T) (output string) {
	assert := assert.New(t)

	asm := &lmc.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()

	emu.Input = strings.NewReader(input)
	out := &bytes.Buffer{}
	emu.Output = out

	err = emu.Run()
	assert.NoError(err)
	if err != nil {
		t.Fatalf("%v: %v", emu.Simulator, err)
	}

	output = out.String()
	return
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"INP",
		"OUT",
		"HLT",
	}

	output := doRun(emu, program, "7", t)

	assert.Equal("7\n", output)
	assert.True(emu.Halted)
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"INP",
		"STA count",
		"loop LDA count",
		"OUT",
		"SUB one",
		"STA count",
		"BRP loop",
		"HLT",
		"one DAT 1",
		"count DAT 0",
	}

	output := doRun(emu, program, "3", t)

	assert.Equal("3\n2\n1\n0\n", output)
	assert.True(emu.Halted)
}

func TestEmulatorReuse(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"INP",
		"ADD one",
		"OUT",
		"HLT",
		"one DAT 1",
	}

	output := doRun(emu, program, "41", t)
	assert.Equal("42\n", output)

	// A fresh Reset replays the same program on the same emulator.
	output = doRun(emu, program, "8", t)
	assert.Equal("9\n", output)
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"# leading comment",
		"",
		"INP",
		"OUT",
		"HLT",
	}

	asm := &lmc.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()
	emu.Input = strings.NewReader("5")
	emu.Output = &bytes.Buffer{}

	assert.Equal(3, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(4, emu.LineNo())
}

func TestEmulatorInputExhausted(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &lmc.Assembler{}
	prog, err := asm.Parse(strings.NewReader("INP\nHLT"))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()
	emu.Output = &bytes.Buffer{}

	_, err = emu.Tick()
	assert.ErrorIs(err, ErrInputExhausted)

	var re *ErrRuntime
	assert.True(errors.As(err, &re))
	assert.Equal(1, re.LineNo)
}

func TestEmulatorRuntimeErr(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// Executing a data cell with no matching opcode faults, reported
	// against its source line.
	asm := &lmc.Assembler{}
	prog, err := asm.Parse(strings.NewReader("# boom\nDAT 400"))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()

	err = emu.Run()
	assert.ErrorIs(err, lmc.ErrOpcodeInvalid(0))

	var re *ErrRuntime
	assert.True(errors.As(err, &re))
	assert.Equal(2, re.LineNo)
}

func TestEmulatorBadInput(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &lmc.Assembler{}
	prog, err := asm.Parse(strings.NewReader("INP\nHLT"))
	assert.NoError(err)
	emu.Program = prog

	// Values beyond the input limit surface the simulator's range error.
	emu.Reset()
	emu.Input = strings.NewReader("1000")
	_, err = emu.Tick()
	assert.ErrorIs(err, lmc.ErrInputRange)

	// Non-numeric input is a parse failure.
	emu.Reset()
	emu.Input = strings.NewReader("seven")
	_, err = emu.Tick()
	assert.Error(err)
}
