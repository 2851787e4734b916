package lmc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	f.Add("INP\nSTA count\ncount DAT 0\nHLT\n")
	f.Add("loop LDA loop\nBRP loop\n")
	f.Add("DAT $(6 * 7)\n")
	f.Add("# comment\n\tOUT # trailing\n")
	f.Add("a b c d\n")
	f.Add(strings.Repeat("DAT 1\n", MAILBOX_COUNT+1))

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(text))
		if err != nil {
			return
		}

		code := prog.Binary()
		assert.Equal(len(prog.Opcodes), len(code))
		assert.LessOrEqual(len(code), MAILBOX_COUNT)

		// Assembly is deterministic.
		again, err := asm.Parse(strings.NewReader(text))
		assert.NoError(err)
		assert.Equal(code, again.Binary())
	})
}

func FuzzStep(f *testing.F) {
	f.Add(0, 0)
	f.Add(142, 999)
	f.Add(901, -1)
	f.Add(400, 7)
	f.Add(-250, 3)

	f.Fuzz(func(t *testing.T, instruction int, acc int) {
		assert := assert.New(t)

		sim := NewSimulator()
		sim.Mailboxes[0] = instruction
		sim.Acc = acc

		_, ok, err := sim.Step()

		// At most one of halted and awaiting-input is raised, and a
		// fault never produces output.
		assert.False(sim.Halted && sim.AwaitingInput)
		if err != nil {
			assert.False(ok)
		}
		// The program counter lands on the advanced cell or a branch
		// target; it never escapes 0..MAILBOX_COUNT.
		assert.GreaterOrEqual(sim.Pc, 0, instruction)
		assert.LessOrEqual(sim.Pc, MAILBOX_COUNT, instruction)
	})
}
