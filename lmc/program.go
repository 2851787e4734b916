package lmc

import (
	"iter"
)

// Program is an assembled machine code listing with its source locations.
type Program struct {
	Opcodes []Opcode
}

// Opcode represents one line of assembled code with its source location
// and generated machine code value.
type Opcode struct {
	LineNo  int
	Mailbox int
	Label   string
	Words   []string
	Code    int
}

// Debug locates the opcode occupying a mailbox, if any.
type Debug struct {
	*Opcode
}

func (prog *Program) Debug(mailbox int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if op.Mailbox == mailbox {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
			}
			break
		}
	}

	return
}

// Binary returns the machine code list, one value per assembled line.
func (prog *Program) Binary() (code []int) {
	for _, value := range prog.Codes() {
		code = append(code, value)
	}

	return
}

// Codes iterates (mailbox, machine code) pairs in load order.
func (prog *Program) Codes() iter.Seq2[int, int] {
	return func(yield func(mailbox int, code int) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Mailbox, op.Code) {
				return
			}
		}
	}
}
