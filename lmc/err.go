package lmc

import (
	"errors"

	"github.com/ezrec/golmc/translate"
)

var f = translate.From

var (
	// Simulator errors
	ErrPcRange       = errors.New(f("program counter out of range"))
	ErrInputRange    = errors.New(f("input value out of range"))
	ErrAwaitingInput = errors.New(f("input pending"))

	// Assembler errors
	ErrLineTooLong    = errors.New(f("too many tokens"))
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("operand not allowed"))
	ErrOperandRange   = errors.New(f("operand out of range"))
	ErrProgramTooLong = errors.New(f("program too long"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrMnemonicUnknown string

func (em ErrMnemonicUnknown) Error() string {
	return f("'%v' is not a mnemonic", string(em))
}

type ErrOpcodeInvalid int

func (eo ErrOpcodeInvalid) Error() string {
	return f("bad opcode %03d", int(eo))
}

func (eo ErrOpcodeInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeInvalid)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
