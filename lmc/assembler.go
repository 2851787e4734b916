// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package lmc

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a four pass assembler for the Little Man Computer.
// The zero value is ready to use.
type Assembler struct {
	Verbose          bool     // If set, verbosely logs the assembler actions.
	CommentDelimiter string   // Comment delimiter, "#" when empty.
	Opcode           []Opcode // List of generated opcodes.

	Label map[string]int // Map of labels to mailbox addresses.
}

// source is a tokenized source line, prior to label resolution.
type source struct {
	LineNo   int
	Line     string
	Words    []string
	Label    string
	Mnemonic Mnemonic
	Operand  string
}

// delimiter returns the comment delimiter in effect.
func (asm *Assembler) delimiter() string {
	if len(asm.CommentDelimiter) == 0 {
		return "#"
	}
	return asm.CommentDelimiter
}

// normalize strips tabs, surrounding whitespace, and comments from a raw
// source line. Lines that are blank or comment-only normalize to "".
func (asm *Assembler) normalize(text string) (line string) {
	line = strings.TrimSpace(strings.ReplaceAll(text, "\t", " "))
	line, _, _ = strings.Cut(line, asm.delimiter())
	line = strings.TrimSpace(line)
	return
}

// tokenize classifies the 1-3 tokens of a normalized line as
// (label, mnemonic, operand). A two token line is disambiguated by checking
// whether the first token is a known mnemonic.
func (asm *Assembler) tokenize(line string, lineno int) (src source, err error) {
	words := strings.Fields(line)

	src = source{LineNo: lineno, Line: line, Words: words}

	switch len(words) {
	case 1:
		mn, ok := MnemonicOf(words[0])
		if !ok {
			err = ErrMnemonicUnknown(words[0])
			return
		}
		src.Mnemonic = mn
	case 2:
		if mn, ok := MnemonicOf(words[0]); ok {
			src.Mnemonic = mn
			src.Operand = words[1]
		} else if mn, ok := MnemonicOf(words[1]); ok {
			src.Label = words[0]
			src.Mnemonic = mn
		} else {
			err = ErrMnemonicUnknown(words[1])
			return
		}
	case 3:
		mn, ok := MnemonicOf(words[1])
		if !ok {
			err = ErrMnemonicUnknown(words[1])
			return
		}
		src.Label = words[0]
		src.Mnemonic = mn
		src.Operand = words[2]
	default:
		err = ErrLineTooLong
		return
	}

	return
}

// isNumeric reports whether a word is a plain unsigned decimal literal.
func isNumeric(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parenEval does compile-time $(...) evaluations. The resolved label table
// is predeclared as integers, along with MAILBOX, the evaluating cell.
func (asm *Assembler) parenEval(expr string, mailbox int) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for label, index := range asm.Label {
		pred[label] = starlark.MakeInt(index)
	}
	pred["MAILBOX"] = starlark.MakeInt(mailbox)
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// resolve builds the label table over the entire program, then rewrites
// every label operand into its mailbox address. DAT operands are literal
// data, never label references.
func (asm *Assembler) resolve(lines []source) (err error) {
	for mailbox, src := range lines {
		if len(src.Label) == 0 {
			continue
		}
		_, ok := asm.Label[src.Label]
		if ok {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Line, Err: ErrLabelDuplicate}
			return
		}
		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[src.Label] = mailbox
	}

	for mailbox := range lines {
		src := &lines[mailbox]
		operand := src.Operand
		if len(operand) == 0 {
			continue
		}

		if strings.HasPrefix(operand, "$(") && strings.HasSuffix(operand, ")") {
			var value int
			value, err = asm.parenEval(operand[2:len(operand)-1], mailbox)
			if err != nil {
				err = &ErrSyntax{LineNo: src.LineNo, Line: src.Line, Err: err}
				return
			}
			src.Operand = strconv.Itoa(value)
			continue
		}

		if src.Mnemonic == MN_DAT || isNumeric(operand) {
			continue
		}

		address, ok := asm.Label[operand]
		if !ok {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Line, Err: ErrLabelMissing(operand)}
			return
		}
		src.Operand = strconv.Itoa(address)
	}

	return
}

// encode converts a single resolved line into its machine code value.
func (asm *Assembler) encode(src source) (code int, err error) {
	if src.Mnemonic == MN_DAT {
		if len(src.Operand) == 0 {
			return
		}
		code, err = strconv.Atoi(src.Operand)
		if err != nil {
			err = ErrParseNumber(src.Operand)
		}
		return
	}

	if !src.Mnemonic.HasAddress() {
		if len(src.Operand) != 0 {
			err = ErrOperandExtra
			return
		}
		code = src.Mnemonic.Encode(0)
		return
	}

	if len(src.Operand) == 0 {
		err = ErrOperandMissing
		return
	}
	operand, err := strconv.Atoi(src.Operand)
	if err != nil {
		err = ErrParseNumber(src.Operand)
		return
	}
	if operand < 0 || operand >= MAILBOX_COUNT {
		err = ErrOperandRange
		return
	}
	code = src.Mnemonic.Encode(operand)
	return
}

// generate emits one machine code value per resolved line.
func (asm *Assembler) generate(lines []source) (err error) {
	for mailbox, src := range lines {
		var code int
		code, err = asm.encode(src)
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Line, Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("%02d: %03d ; %v", mailbox, code, src.Line)
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:  src.LineNo,
			Mailbox: mailbox,
			Label:   src.Label,
			Words:   src.Words,
			Code:    code,
		})
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]

	var lines []source
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := asm.normalize(text)
		if len(line) == 0 {
			continue
		}

		var src source
		src, err = asm.tokenize(line, lineno)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
		lines = append(lines, src)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	if len(lines) > MAILBOX_COUNT {
		over := lines[MAILBOX_COUNT]
		err = &ErrSyntax{LineNo: over.LineNo, Line: over.Line, Err: ErrProgramTooLong}
		return
	}

	err = asm.resolve(lines)
	if err != nil {
		return
	}

	err = asm.generate(lines)
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// Assemble converts source text into its machine code list, one 3-digit
// value per source line.
func (asm *Assembler) Assemble(text string) (code []int, err error) {
	prog, err := asm.Parse(strings.NewReader(text))
	if err != nil {
		return
	}
	code = prog.Binary()
	return
}
