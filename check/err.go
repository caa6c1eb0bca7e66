package check

import (
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// ErrWordRange is a script value that does not fit a memory word.
type ErrWordRange int

func (err ErrWordRange) Error() string {
	return f("%v does not fit in a memory word", int(err))
}
