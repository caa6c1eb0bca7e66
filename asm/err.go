package asm

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooLong = errors.New(f("image longer than %d cells", MEMORY_SIZE))
	ErrImageEmpty   = errors.New(f("image empty"))
)

// ErrLex is a word that is neither a mnemonic nor a 16-bit integer.
type ErrLex string

func (err ErrLex) Error() string {
	return f("'%v' is not a mnemonic or number", string(err))
}

// ErrGrammar is a token that is not permitted at its position.
type ErrGrammar Token

func (err ErrGrammar) Error() string {
	return f("unexpected %v", Token(err).String())
}

// ErrOperandRange is an address operand outside of the memory.
type ErrOperandRange int16

func (err ErrOperandRange) Error() string {
	return f("address %d not in range %d..%d", int16(err), 0, MEMORY_SIZE-1)
}

// ErrCapacity is a program with more commands than memory cells.
type ErrCapacity int

func (err ErrCapacity) Error() string {
	return f("program too long: %d commands for %d cells", int(err), MEMORY_SIZE)
}

// ErrEncoding is an instruction text that does not fit a memory cell.
type ErrEncoding string

func (err ErrEncoding) Error() string {
	return f("'%v' does not encode to a memory cell", string(err))
}

// ErrImageValue is an image cell that is not a 16-bit integer.
type ErrImageValue string

func (err ErrImageValue) Error() string {
	return f("image cell '%v' is not a number", string(err))
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
