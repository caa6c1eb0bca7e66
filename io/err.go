package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeEmpty = errors.New(f("tape empty"))
	ErrTapeFull  = errors.New(f("tape has no output"))
)

// ErrTapeValue is a tape input word that is not a number.
type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("tape '%v' is not a number", string(err))
}
