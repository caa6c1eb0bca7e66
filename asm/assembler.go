// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"slices"
)

// Assembler is a single pass assembler for the Little Man Computer.
type Assembler struct {
	Verbose bool      // If set, verbosely logs the assembler actions.
	Command []Command // Commands of the last assembled source.
}

// Compile assembles source text into a memory image.
func Compile(source string) (mem *Memory, err error) {
	asm := &Assembler{}
	return asm.Compile(source)
}

// Parse assembles an input stream into a memory image.
func (asm *Assembler) Parse(input io.Reader) (mem *Memory, err error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.Compile(string(source))
}

// Compile assembles source text into a memory image.
//
// The first error found, in source order, is returned, and the image is
// nil. There is no partial output.
func (asm *Assembler) Compile(source string) (mem *Memory, err error) {
	asm.Command = asm.Command[:0]

	tokens, err := Lex(Normalize(source))
	if err != nil {
		return
	}

	groups, err := Group(tokens)
	if err != nil {
		return
	}

	var cmds []Command
	for _, group := range groups {
		var cmd Command
		var ok bool
		cmd, ok, err = buildGroup(group)
		if err != nil {
			return
		}

		if !ok {
			if asm.Verbose {
				log.Printf("%v: %v: no data word, skipped\n", group[0].LineNo, group)
			}
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %02d %v\n", group[0].LineNo, len(cmds), cmd)
		}
		cmds = append(cmds, cmd)
	}

	mem, err = Assemble(cmds)
	if err != nil {
		return
	}

	asm.Command = slices.Clone(cmds)

	return
}
