package emulator

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOverflow           = errors.New(f("accumulator overflow"))
	ErrIpOverflow         = errors.New(f("ip past end of memory"))
	ErrTickLimit          = errors.New(f("tick limit reached"))
	ErrNoImage            = errors.New(f("no image loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   int
	Word int16
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %02d word %03d %v", err.Ip, err.Word, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
