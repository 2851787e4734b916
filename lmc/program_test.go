package lmc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramBinary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"# echo a value",
		"INP",
		"OUT",
		"",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]int{901, 902, 0}, prog.Binary())
}

func TestProgramCodes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("INP\nSTA 5\nHLT"))
	assert.NoError(err)

	mailboxes := []int{}
	codes := []int{}
	for mailbox, code := range prog.Codes() {
		mailboxes = append(mailboxes, mailbox)
		codes = append(codes, code)
	}
	assert.Equal([]int{0, 1, 2}, mailboxes)
	assert.Equal([]int{901, 305, 0}, codes)
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Comment and blank lines shift source line numbers away from
	// mailbox addresses.
	program := []string{
		"# leading comment",
		"",
		"INP",
		"# interior comment",
		"out OUT",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(901, dbg.Code)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(5, dbg.LineNo)
	assert.Equal("out", dbg.Label)

	dbg = prog.Debug(99)
	assert.Nil(dbg.Opcode)
}
