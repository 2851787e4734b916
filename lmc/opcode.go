package lmc

import (
	"strings"
)

// Mnemonic is an assembly instruction keyword.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_HLT = Mnemonic(0)  // HLT
	MN_ADD = Mnemonic(1)  // ADD
	MN_SUB = Mnemonic(2)  // SUB
	MN_STA = Mnemonic(3)  // STA
	MN_LDA = Mnemonic(4)  // LDA
	MN_BRA = Mnemonic(5)  // BRA
	MN_BRZ = Mnemonic(6)  // BRZ
	MN_BRP = Mnemonic(7)  // BRP
	MN_INP = Mnemonic(8)  // INP
	MN_OUT = Mnemonic(9)  // OUT
	MN_DAT = Mnemonic(10) // DAT
)

// Machine code opcodes, as produced by Decode.
const (
	OP_HLT = 0   // Halt
	OP_ADD = 1   // Add mailbox to accumulator
	OP_SUB = 2   // Subtract mailbox from accumulator
	OP_STA = 3   // Store accumulator to mailbox
	OP_LDA = 5   // Load mailbox to accumulator
	OP_BRA = 6   // Branch always
	OP_BRZ = 7   // Branch if accumulator is zero
	OP_BRP = 8   // Branch if accumulator is non-negative
	OP_INP = 901 // Request input to accumulator
	OP_OUT = 902 // Output accumulator
)

// mnemonicMap maps mnemonic names, upper-cased.
var mnemonicMap = map[string]Mnemonic{
	"HLT": MN_HLT,
	"ADD": MN_ADD,
	"SUB": MN_SUB,
	"STA": MN_STA,
	"LDA": MN_LDA,
	"BRA": MN_BRA,
	"BRZ": MN_BRZ,
	"BRP": MN_BRP,
	"INP": MN_INP,
	"OUT": MN_OUT,
	"DAT": MN_DAT,
}

// opcodeMap maps each mnemonic to its base opcode. DAT has no opcode.
var opcodeMap = map[Mnemonic]int{
	MN_HLT: 0,
	MN_ADD: 100,
	MN_SUB: 200,
	MN_STA: 300,
	MN_LDA: 500,
	MN_BRA: 600,
	MN_BRZ: 700,
	MN_BRP: 800,
	MN_INP: 901,
	MN_OUT: 902,
}

// MnemonicOf looks up a mnemonic by name, case-insensitively.
func MnemonicOf(word string) (mn Mnemonic, ok bool) {
	mn, ok = mnemonicMap[strings.ToUpper(word)]
	return
}

// HasAddress returns true if the mnemonic takes a mailbox address operand.
func (mn Mnemonic) HasAddress() bool {
	return mn >= MN_ADD && mn <= MN_BRP
}

// Encode combines the mnemonic's base opcode with a mailbox address operand.
// Mnemonics without an address operand encode as the base opcode alone.
func (mn Mnemonic) Encode(operand int) (code int) {
	code = opcodeMap[mn]
	if mn.HasAddress() {
		code += operand
	}
	return
}

// Decode splits a machine code value into (opcode, operand) via integer
// division and modulo by 100. Values with a leading digit of 9 are kept
// whole, so INP (901) and OUT (902) stay distinct, and decode with a zero
// operand.
func Decode(instruction int) (opcode, operand int) {
	opcode = instruction / 100
	operand = instruction % 100
	if opcode == 9 {
		opcode = instruction
		operand = 0
	}
	return
}
