// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strconv"
	"strings"
	"unicode"
)

// Normalize strips carriage returns and guarantees a trailing newline.
func Normalize(source string) string {
	source = strings.ReplaceAll(source, "\r", "")
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}

	return source
}

// classify turns a single word into a token.
func classify(word string, lineno int) (tok Token, err error) {
	tag, ok := mnemonicMap[word]
	if ok {
		tok = Token{Tag: tag, LineNo: lineno}
		return
	}

	value, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		err = ErrSyntax{LineNo: lineno, Err: ErrLex(word)}
		return
	}

	tok = Token{Tag: TAG_INT_LITERAL, Value: int16(value), LineNo: lineno}
	return
}

// Lex converts normalized source text into tokens.
//
// Words are separated by whitespace, and every newline emits a
// TAG_ENDLINE after the word before it. A final unterminated word is
// treated as if it were followed by a newline.
func Lex(source string) (tokens []Token, err error) {
	var word strings.Builder
	lineno := 1

	flush := func() (err error) {
		if word.Len() == 0 {
			return
		}
		tok, err := classify(word.String(), lineno)
		word.Reset()
		if err != nil {
			return
		}
		tokens = append(tokens, tok)
		return
	}

	defer func() {
		if err != nil {
			tokens = nil
		}
	}()

	for _, ch := range source {
		if !unicode.IsSpace(ch) {
			word.WriteRune(ch)
			continue
		}

		err = flush()
		if err != nil {
			return
		}

		if ch == '\n' {
			tokens = append(tokens, Token{Tag: TAG_ENDLINE, LineNo: lineno})
			lineno++
		}
	}

	if word.Len() != 0 {
		err = flush()
		if err != nil {
			return
		}
		tokens = append(tokens, Token{Tag: TAG_ENDLINE, LineNo: lineno})
	}

	return
}
