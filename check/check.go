// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package check runs Starlark test scripts against assembled programs.
//
// A script is plain Starlark with these predeclared names:
//
//	MEMORY_SIZE                          number of memory cells
//	assemble(source)                     memory image, as a list of ints
//	run(source, input=[])                tape output of the program
//	check(name, source, input=[], output=[])
//	                                     record a pass or fail
//
// For example:
//
//	doubler = "INP\nSTA 99\nADD 99\nOUT\nHLT\n"
//	check("double 4", doubler, input=[4], output=[8])
//	check("double -3", doubler, input=[-3], output=[-6])
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/emulator"
	lmcio "github.com/ezrec/lmc/io"
)

// Result of a single check() call.
type Result struct {
	Name   string  // Name of the check.
	Passed bool    // True if the output matched.
	Want   []int16 // Expected tape output.
	Got    []int16 // Actual tape output.
	Err    error   // Assembly or runtime error, if any.
}

func (res Result) String() string {
	switch {
	case res.Passed:
		return f("PASS %v", res.Name)
	case res.Err != nil:
		return f("FAIL %v: %v", res.Name, res.Err)
	default:
		return f("FAIL %v: want %v, got %v", res.Name, res.Want, res.Got)
	}
}

// Report collects the results of a script.
type Report struct {
	Results []Result
}

// Passed returns true if every check passed.
func (rep *Report) Passed() bool {
	for _, res := range rep.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failed returns the number of failed checks.
func (rep *Report) Failed() (count int) {
	for _, res := range rep.Results {
		if !res.Passed {
			count++
		}
	}
	return
}

// Checker executes check scripts.
type Checker struct {
	Verbose  bool      // If set, logs every check result.
	MaxTicks int       // Tick limit per run, zero for the emulator default.
	Output   io.Writer // Destination of print(), discarded if nil.
}

// Exec runs the script in src, or the file named by filename if src is
// nil, and reports its checks.
func (chk *Checker) Exec(filename string, src any) (report *Report, err error) {
	rep := &Report{}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if chk.Output != nil {
				fmt.Fprintln(chk.Output, msg)
			}
		},
	}

	predeclared := starlark.StringDict{
		"MEMORY_SIZE": starlark.MakeInt(asm.MEMORY_SIZE),
		"assemble":    starlark.NewBuiltin("assemble", chk.builtinAssemble),
		"run":         starlark.NewBuiltin("run", chk.builtinRun),
		"check": starlark.NewBuiltin("check", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			return chk.builtinCheck(rep, b, args, kwargs)
		}),
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
		While:           true,
		Set:             true,
	}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	report = rep
	return
}

// Run assembles source, and runs it with the input on its tape.
func (chk *Checker) Run(source string, input []int16) (output []int16, err error) {
	mem, err := asm.Compile(source)
	if err != nil {
		return
	}

	words := make([]string, len(input))
	for n, value := range input {
		words[n] = strconv.Itoa(int(value))
	}

	tape_output := &bytes.Buffer{}

	emu := emulator.NewEmulator()
	if chk.MaxTicks > 0 {
		emu.MaxTicks = chk.MaxTicks
	}
	emu.Load(mem)
	emu.Tape.Input = strings.NewReader(strings.Join(words, " "))
	emu.Tape.Output = tape_output

	err = emu.Run()
	if err != nil {
		return
	}

	readback := &lmcio.Tape{Input: tape_output}
	for {
		var value int16
		value, err = readback.Receive()
		if errors.Is(err, lmcio.ErrTapeEmpty) {
			err = nil
			break
		}
		if err != nil {
			return
		}
		output = append(output, value)
	}

	return
}

// toWords converts a Starlark list of ints.
func toWords(list *starlark.List) (words []int16, err error) {
	if list == nil {
		return
	}

	for n := 0; n < list.Len(); n++ {
		var value int
		value, err = starlark.AsInt32(list.Index(n))
		if err != nil {
			return
		}
		if value < math.MinInt16 || value > math.MaxInt16 {
			err = ErrWordRange(value)
			return
		}
		words = append(words, int16(value))
	}

	return
}

// fromWords converts to a Starlark list of ints.
func fromWords(words []int16) *starlark.List {
	values := make([]starlark.Value, len(words))
	for n, word := range words {
		values[n] = starlark.MakeInt(int(word))
	}
	return starlark.NewList(values)
}

func (chk *Checker) builtinAssemble(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var source string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source)
	if err != nil {
		return
	}

	mem, err := asm.Compile(source)
	if err != nil {
		return
	}

	value = fromWords(mem[:])
	return
}

func (chk *Checker) builtinRun(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var source string
	var input *starlark.List
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source, "input?", &input)
	if err != nil {
		return
	}

	words, err := toWords(input)
	if err != nil {
		return
	}

	output, err := chk.Run(source, words)
	if err != nil {
		return
	}

	value = fromWords(output)
	return
}

func (chk *Checker) builtinCheck(rep *Report, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name, source string
	var input, output *starlark.List
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "source", &source, "input?", &input, "output?", &output)
	if err != nil {
		return
	}

	res := Result{Name: name}

	res.Want, err = toWords(output)
	if err != nil {
		return
	}

	words, err := toWords(input)
	if err != nil {
		return
	}

	res.Got, res.Err = chk.Run(source, words)
	res.Passed = res.Err == nil && slices.Equal(res.Want, res.Got)

	if chk.Verbose {
		log.Printf("%v\n", res)
	}

	rep.Results = append(rep.Results, res)

	value = starlark.Bool(res.Passed)
	return
}
