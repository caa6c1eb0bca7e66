package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var addressedTags = []Tag{
	TAG_LOAD, TAG_STORE, TAG_ADD, TAG_SUBTRACT,
	TAG_BRANCH_ALL, TAG_BRANCH_ZERO, TAG_BRANCH_ZERO_POS,
}

func lit(value int16) Token {
	return Token{Tag: TAG_INT_LITERAL, Value: value}
}

func tok(tag Tag) Token {
	return Token{Tag: tag}
}

func TestTransitions(t *testing.T) {
	assert := assert.New(t)

	lineStart := tagSetOf(TAG_ENDLINE)
	for tag := TAG_LOAD; tag <= TAG_DATA_STORE; tag++ {
		lineStart |= tagSetOf(tag)
	}

	assert.Equal(lineStart, initialState.permitted())
	assert.False(initialState.permitted().Has(TAG_INT_LITERAL))

	for _, tag := range addressedTags {
		st := state{prev: tag, lineEmpty: false}
		assert.Equal(tagSetOf(TAG_INT_LITERAL), st.permitted(), tag.String())
	}

	for _, tag := range []Tag{TAG_INT_LITERAL, TAG_END, TAG_OUTPUT, TAG_INPUT} {
		st := state{prev: tag, lineEmpty: false}
		assert.Equal(tagSetOf(TAG_ENDLINE), st.permitted(), tag.String())
	}

	assert.Equal(tagSetOf(TAG_INT_LITERAL), state{prev: TAG_DATA_STORE, lineEmpty: true}.permitted())
	assert.Equal(tagSetOf(TAG_INT_LITERAL, TAG_ENDLINE), state{prev: TAG_DATA_STORE, lineEmpty: false}.permitted())

	assert.False(tagSet(0xffff).Has(Tag(-1)))
	assert.False(tagSet(0xffff).Has(Tag(13)))
}

func TestGroup(t *testing.T) {
	assert := assert.New(t)

	tokens := []Token{
		tok(TAG_ENDLINE),
		tok(TAG_INPUT), tok(TAG_ENDLINE),
		tok(TAG_ENDLINE),
		tok(TAG_LOAD), lit(5), tok(TAG_ENDLINE),
		tok(TAG_DATA_STORE), lit(-1), tok(TAG_ENDLINE),
		tok(TAG_DATA_STORE), tok(TAG_ENDLINE),
	}

	groups, err := Group(tokens)
	assert.NoError(err)
	assert.Equal([][]Token{
		{tok(TAG_INPUT)},
		{tok(TAG_LOAD), lit(5)},
		{tok(TAG_DATA_STORE), lit(-1)},
		{tok(TAG_DATA_STORE)},
	}, groups)
}

func TestGroupAddressed(t *testing.T) {
	assert := assert.New(t)

	for _, tag := range addressedTags {
		groups, err := Group([]Token{tok(tag), lit(12), tok(TAG_ENDLINE)})
		assert.NoError(err, tag.String())
		assert.Equal([][]Token{{tok(tag), lit(12)}}, groups)

		// Missing operand.
		groups, err = Group([]Token{tok(tag), tok(TAG_ENDLINE)})
		assert.Nil(groups)
		var grammar ErrGrammar
		assert.True(errors.As(err, &grammar), tag.String())
		assert.Equal(TAG_ENDLINE, grammar.Tag)

		// Mnemonic instead of operand.
		groups, err = Group([]Token{tok(tag), tok(TAG_OUTPUT), tok(TAG_ENDLINE)})
		assert.Nil(groups)
		assert.True(errors.As(err, &grammar), tag.String())
		assert.Equal(TAG_OUTPUT, grammar.Tag)
	}
}

func TestGroupError(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Tokens []Token
		Bad    Tag
	}){
		{[]Token{lit(5), tok(TAG_ENDLINE)}, TAG_INT_LITERAL},
		{[]Token{tok(TAG_INPUT), lit(5), tok(TAG_ENDLINE)}, TAG_INT_LITERAL},
		{[]Token{tok(TAG_END), tok(TAG_END), tok(TAG_ENDLINE)}, TAG_END},
		{[]Token{tok(TAG_LOAD), lit(1), lit(2), tok(TAG_ENDLINE)}, TAG_INT_LITERAL},
		{[]Token{tok(TAG_DATA_STORE), lit(1), lit(2), tok(TAG_ENDLINE)}, TAG_INT_LITERAL},
		{[]Token{tok(TAG_DATA_STORE), tok(TAG_INPUT), tok(TAG_ENDLINE)}, TAG_INPUT},
		{[]Token{tok(TAG_LOAD)}, TAG_ENDLINE},
	}

	for n, entry := range table {
		groups, err := Group(entry.Tokens)
		assert.Nil(groups, n)
		var grammar ErrGrammar
		assert.True(errors.As(err, &grammar), n)
		assert.Equal(entry.Bad, grammar.Tag, n)
	}
}

func TestGroupUnterminated(t *testing.T) {
	assert := assert.New(t)

	groups, err := Group([]Token{tok(TAG_LOAD), lit(3)})
	assert.NoError(err)
	assert.Equal([][]Token{{tok(TAG_LOAD), lit(3)}}, groups)

	groups, err = Group(nil)
	assert.NoError(err)
	assert.Empty(groups)
}
