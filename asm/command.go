// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
)

// Op is the operation of a command.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LOAD            = Op(0)  // LDA
	OP_STORE           = Op(1)  // STA
	OP_ADD             = Op(2)  // ADD
	OP_SUBTRACT        = Op(3)  // SUB
	OP_INPUT           = Op(4)  // INP
	OP_OUTPUT          = Op(5)  // OUT
	OP_END             = Op(6)  // HLT
	OP_BRANCH_ALL      = Op(7)  // BRA
	OP_BRANCH_ZERO     = Op(8)  // BRZ
	OP_BRANCH_ZERO_POS = Op(9)  // BRP
	OP_DATA            = Op(10) // DAT
)

// Addressed returns true if the operation takes a memory address operand.
func (op Op) Addressed() bool {
	switch op {
	case OP_LOAD, OP_STORE, OP_ADD, OP_SUBTRACT,
		OP_BRANCH_ALL, OP_BRANCH_ZERO, OP_BRANCH_ZERO_POS:
		return true
	}
	return false
}

// tagOp maps a line's leading mnemonic to its operation.
var tagOp = map[Tag]Op{
	TAG_LOAD:            OP_LOAD,
	TAG_STORE:           OP_STORE,
	TAG_ADD:             OP_ADD,
	TAG_SUBTRACT:        OP_SUBTRACT,
	TAG_INPUT:           OP_INPUT,
	TAG_OUTPUT:          OP_OUTPUT,
	TAG_END:             OP_END,
	TAG_BRANCH_ALL:      OP_BRANCH_ALL,
	TAG_BRANCH_ZERO:     OP_BRANCH_ZERO,
	TAG_BRANCH_ZERO_POS: OP_BRANCH_ZERO_POS,
	TAG_DATA_STORE:      OP_DATA,
}

// Address is a memory cell index. The only way to make a non-zero
// Address is NewAddress, so every Address is inside the memory.
type Address struct {
	cell uint8
}

// NewAddress returns the address of a memory cell, or ErrOperandRange.
func NewAddress(value int16) (addr Address, err error) {
	if value < 0 || value >= MEMORY_SIZE {
		err = ErrOperandRange(value)
		return
	}

	addr = Address{cell: uint8(value)}
	return
}

// Cell returns the memory index of the address.
func (addr Address) Cell() int {
	return int(addr.cell)
}

// Command is a single machine instruction, or a data word.
type Command struct {
	Op      Op      // Operation.
	Address Address // Operand of addressed operations.
	Literal int16   // Data word of OP_DATA.
}

func (cmd Command) String() string {
	switch {
	case cmd.Op.Addressed():
		return fmt.Sprintf("%v %d", cmd.Op, cmd.Address.Cell())
	case cmd.Op == OP_DATA:
		return fmt.Sprintf("%v %d", cmd.Op, cmd.Literal)
	default:
		return cmd.Op.String()
	}
}

// buildGroup converts a validated line into a command.
//
// A bare DAT line is accepted by the grammar but carries no data word,
// so it produces no command (ok is false) and occupies no memory.
func buildGroup(group []Token) (cmd Command, ok bool, err error) {
	lead := group[0]

	op, known := tagOp[lead.Tag]
	if !known {
		err = ErrSyntax{LineNo: lead.LineNo, Err: ErrGrammar(lead)}
		return
	}

	switch {
	case op.Addressed():
		if len(group) != 2 || group[1].Tag != TAG_INT_LITERAL {
			err = ErrSyntax{LineNo: lead.LineNo, Err: ErrGrammar(lead)}
			return
		}
		var addr Address
		addr, err = NewAddress(group[1].Value)
		if err != nil {
			err = ErrSyntax{LineNo: group[1].LineNo, Err: err}
			return
		}
		cmd = Command{Op: op, Address: addr}
	case op == OP_DATA:
		if len(group) < 2 {
			return
		}
		cmd = Command{Op: op, Literal: group[1].Value}
	default:
		cmd = Command{Op: op}
	}

	ok = true
	return
}

// Build converts validated line groups into commands, in source order.
func Build(groups [][]Token) (cmds []Command, err error) {
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		var cmd Command
		var ok bool
		cmd, ok, err = buildGroup(group)
		if err != nil {
			cmds = nil
			return
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}

	return
}
