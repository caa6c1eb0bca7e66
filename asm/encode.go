// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"strconv"
)

// MEMORY_SIZE is the number of cells in the machine's memory.
const MEMORY_SIZE = 100

// Memory is a complete memory image, in address order.
type Memory [MEMORY_SIZE]int16

// opDigit is the leading opcode digit of each addressed operation.
var opDigit = map[Op]int{
	OP_ADD:             1,
	OP_SUBTRACT:        2,
	OP_STORE:           3,
	OP_LOAD:            5,
	OP_BRANCH_ALL:      6,
	OP_BRANCH_ZERO:     7,
	OP_BRANCH_ZERO_POS: 8,
}

// Fixed encodings of the operand-less operations.
const (
	CODE_INPUT  = 901
	CODE_OUTPUT = 902
	CODE_END    = 0
)

// Encode returns the memory word of the command.
//
// Addressed operations are their opcode digit followed by the zero padded
// two digit address, so LDA 5 is 505. Data words are stored unchanged.
func (cmd Command) Encode() (word int16, err error) {
	var text string

	switch {
	case cmd.Op == OP_INPUT:
		text = strconv.Itoa(CODE_INPUT)
	case cmd.Op == OP_OUTPUT:
		text = strconv.Itoa(CODE_OUTPUT)
	case cmd.Op == OP_END:
		text = strconv.Itoa(CODE_END)
	case cmd.Op == OP_DATA:
		text = strconv.Itoa(int(cmd.Literal))
	case cmd.Op.Addressed():
		text = fmt.Sprintf("%d%02d", opDigit[cmd.Op], cmd.Address.Cell())
	default:
		err = ErrEncoding(cmd.String())
		return
	}

	value, err := strconv.ParseInt(text, 10, 16)
	if err != nil {
		err = ErrEncoding(text)
		return
	}

	word = int16(value)
	return
}

// Assemble lays out the commands from address 0, in order.
//
// A program with more commands than memory cells is rejected before any
// cell is written; on error no image is returned.
func Assemble(cmds []Command) (mem *Memory, err error) {
	if len(cmds) > MEMORY_SIZE {
		err = ErrCapacity(len(cmds))
		return
	}

	image := &Memory{}
	for ip, cmd := range cmds {
		image[ip], err = cmd.Encode()
		if err != nil {
			return
		}
	}

	mem = image
	return
}
