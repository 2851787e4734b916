// Package lmc implements the assembler and simulator for the Little Man Computer.
//
// The machine consists of 100 decimal "mailbox" cells that hold both code and
// data, a program counter, and a signed accumulator. The assembler translates
// the eleven-mnemonic assembly language into 3-digit machine code values, one
// per source line. The simulator executes one fetch-decode-execute cycle per
// Step call, surfacing output values and an awaiting-input flag to the caller.
package lmc
