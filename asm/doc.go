// Package asm implements the assembler for the Little Man Computer, a
// one-address accumulator machine with a hundred three digit memory cells.
//
// Source text is one instruction per line, a mnemonic optionally followed
// by a decimal operand:
//
//	INP
//	STA 99
//	OUT
//	HLT
//	DAT 42
//
// Assembly runs in four stages. Lex splits the text into tokens, Group
// checks every line against the grammar with a table driven state
// machine, Build turns each line into a Command, and Assemble encodes the
// commands into a Memory image starting at address 0.
package asm
