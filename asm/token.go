// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
)

// Tag is the lexical class of a token.
type Tag int

//go:generate go tool stringer -linecomment -type=Tag
const (
	TAG_LOAD            = Tag(0)  // LDA
	TAG_STORE           = Tag(1)  // STA
	TAG_ADD             = Tag(2)  // ADD
	TAG_SUBTRACT        = Tag(3)  // SUB
	TAG_INPUT           = Tag(4)  // INP
	TAG_OUTPUT          = Tag(5)  // OUT
	TAG_END             = Tag(6)  // HLT
	TAG_BRANCH_ALL      = Tag(7)  // BRA
	TAG_BRANCH_ZERO     = Tag(8)  // BRZ
	TAG_BRANCH_ZERO_POS = Tag(9)  // BRP
	TAG_DATA_STORE      = Tag(10) // DAT
	TAG_ENDLINE         = Tag(11) // EOL
	TAG_INT_LITERAL     = Tag(12) // INT
)

// IsMnemonic returns true if the tag is one of the reserved instruction words.
func (tag Tag) IsMnemonic() bool {
	return tag >= TAG_LOAD && tag <= TAG_DATA_STORE
}

// mnemonicMap maps reserved words to their tags.
var mnemonicMap = map[string]Tag{
	"LDA": TAG_LOAD,
	"STA": TAG_STORE,
	"ADD": TAG_ADD,
	"SUB": TAG_SUBTRACT,
	"INP": TAG_INPUT,
	"OUT": TAG_OUTPUT,
	"HLT": TAG_END,
	"BRA": TAG_BRANCH_ALL,
	"BRZ": TAG_BRANCH_ZERO,
	"BRP": TAG_BRANCH_ZERO_POS,
	"DAT": TAG_DATA_STORE,
}

// Token is a single lexical element of the source text.
type Token struct {
	Tag    Tag   // Lexical class.
	Value  int16 // Literal value, only meaningful for TAG_INT_LITERAL.
	LineNo int   // Source line the token was read from.
}

func (tok Token) String() string {
	if tok.Tag == TAG_INT_LITERAL {
		return fmt.Sprintf("%v(%d)", tok.Tag, tok.Value)
	}

	return tok.Tag.String()
}
