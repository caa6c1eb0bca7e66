// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// tagSet is a set of token tags.
type tagSet uint16

func tagSetOf(tags ...Tag) (set tagSet) {
	for _, tag := range tags {
		set |= 1 << tag
	}
	return
}

// Has returns true if tag is a member of the set.
func (set tagSet) Has(tag Tag) bool {
	return tag >= 0 && tag <= TAG_INT_LITERAL && (set&(1<<tag)) != 0
}

// state of the grammar: the previous tag, and whether the current line
// has accumulated any tokens.
type state struct {
	prev      Tag
	lineEmpty bool
}

// initialState acts as if the source was preceded by an empty line.
var initialState = state{prev: TAG_ENDLINE, lineEmpty: true}

// transitions maps each reachable state to the tags that may follow it.
var transitions = func() (table map[state]tagSet) {
	table = make(map[state]tagSet, 2*int(TAG_INT_LITERAL+1))

	addressed := tagSetOf(TAG_INT_LITERAL)
	final := tagSetOf(TAG_ENDLINE)
	lineStart := tagSetOf(TAG_ENDLINE)
	for tag := TAG_LOAD; tag <= TAG_DATA_STORE; tag++ {
		lineStart |= tagSetOf(tag)
	}

	rule := map[Tag]tagSet{
		TAG_LOAD:            addressed,
		TAG_STORE:           addressed,
		TAG_ADD:             addressed,
		TAG_SUBTRACT:        addressed,
		TAG_BRANCH_ALL:      addressed,
		TAG_BRANCH_ZERO:     addressed,
		TAG_BRANCH_ZERO_POS: addressed,
		TAG_INT_LITERAL:     final,
		TAG_END:             final,
		TAG_OUTPUT:          final,
		TAG_INPUT:           final,
		TAG_ENDLINE:         lineStart,
	}

	for tag, set := range rule {
		table[state{prev: tag, lineEmpty: true}] = set
		table[state{prev: tag, lineEmpty: false}] = set
	}

	table[state{prev: TAG_DATA_STORE, lineEmpty: true}] = tagSetOf(TAG_INT_LITERAL)
	table[state{prev: TAG_DATA_STORE, lineEmpty: false}] = tagSetOf(TAG_INT_LITERAL, TAG_ENDLINE)

	return
}()

// permitted returns the set of tags that may follow the state.
func (st state) permitted() tagSet {
	return transitions[st]
}

// Group validates the token stream against the line grammar, and
// partitions it into one group per non-blank source line.
//
// Every group is one of the shapes
//
//	MNEMONIC INT     (LDA STA ADD SUB BRA BRZ BRP DAT)
//	MNEMONIC         (INP OUT HLT DAT)
//
// The first token not permitted by the grammar is reported as an
// ErrGrammar, and no groups are returned.
func Group(tokens []Token) (groups [][]Token, err error) {
	st := initialState
	var line []Token

	defer func() {
		if err != nil {
			groups = nil
		}
	}()

	for _, tok := range tokens {
		if !st.permitted().Has(tok.Tag) {
			err = ErrSyntax{LineNo: tok.LineNo, Err: ErrGrammar(tok)}
			return
		}

		if tok.Tag == TAG_ENDLINE {
			if len(line) != 0 {
				groups = append(groups, line)
			}
			line = nil
		} else {
			line = append(line, tok)
		}

		st = state{prev: tok.Tag, lineEmpty: len(line) == 0}
	}

	// An unterminated line must still be complete.
	if len(line) != 0 {
		last := line[len(line)-1]
		if !st.permitted().Has(TAG_ENDLINE) {
			eol := Token{Tag: TAG_ENDLINE, LineNo: last.LineNo}
			err = ErrSyntax{LineNo: last.LineNo, Err: ErrGrammar(eol)}
			return
		}
		groups = append(groups, line)
	}

	return
}
