// Package io provides the tape channels of the Little Man Computer.
package io

import (
	"bufio"
	"io"
	"strconv"
)

// Tape provides the sequential input and output of the machine.
// Input is read as whitespace separated decimal numbers, and output is
// written as one decimal number per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

// Rewind forgets any buffered input. Call it after replacing Input.
func (tc *Tape) Rewind() {
	tc.scanner = nil
}

// Receive reads the next number from the input.
func (tc *Tape) Receive() (value int16, err error) {
	if tc.Input == nil {
		err = ErrTapeEmpty
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrTapeEmpty
		}
		return
	}

	word := tc.scanner.Text()
	v64, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		err = ErrTapeValue(word)
		return
	}

	value = int16(v64)
	return
}

// Send writes a number to the output.
func (tc *Tape) Send(value int16) (err error) {
	if tc.Output == nil {
		err = ErrTapeFull
		return
	}

	_, err = io.WriteString(tc.Output, strconv.Itoa(int(value))+"\n")
	return
}
