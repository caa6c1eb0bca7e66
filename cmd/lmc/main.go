// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/check"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/translate"
)

func main() {
	var input string
	var output string
	var image string
	var run bool
	var tapeInput string
	var tapeOutput string
	var script string
	var verbose bool

	flag.StringVar(&input, "i", "", ".lmc source file to compile")
	flag.StringVar(&output, "o", "out_mem_map.txt", "Memory image output file")
	flag.StringVar(&image, "m", "", "Memory image file to load instead of compiling")
	flag.BoolVar(&run, "r", false, "Run the memory image")
	flag.StringVar(&tapeInput, "t", "-", "Tape input")
	flag.StringVar(&tapeOutput, "T", "-", "Tape output")
	flag.StringVar(&script, "s", "", ".star check script to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	// Check scripts bring their own sources.
	if len(script) != 0 {
		chk := &check.Checker{Verbose: verbose, Output: os.Stdout}
		rep, err := chk.Exec(script, nil)
		if err != nil {
			atexit.Fatalf("%v: %v", script, err)
		}
		for _, res := range rep.Results {
			translate.Printer().Printf("%v\n", res)
		}
		if !rep.Passed() {
			translate.Printer().Printf("%v: %d of %d checks failed\n", script, rep.Failed(), len(rep.Results))
			atexit.Exit(1)
		}
		atexit.Exit(0)
	}

	var mem *asm.Memory

	switch {
	case len(image) != 0:
		inf, err := os.Open(image)
		if err != nil {
			atexit.Fatalf("%v: %v", image, err)
		}
		mem, err = asm.ReadMemory(inf)
		inf.Close()
		if err != nil {
			atexit.Fatalf("%v: %v", image, err)
		}
	case len(input) != 0:
		inf, err := os.Open(input)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		assembler := &asm.Assembler{Verbose: verbose}
		mem, err = assembler.Parse(inf)
		inf.Close()
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		if verbose {
			log.Printf("%v: %d cells used\n", input, mem.Used())
		}

		err = writeImage(output, mem)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
	default:
		atexit.Fatalf("%v: No input file specified", os.Args[0])
	}

	if run {
		emu := emulator.NewEmulator()
		emu.Verbose = verbose
		emu.Load(mem)

		if tapeInput == "-" {
			emu.Tape.Input = os.Stdin
		} else {
			inf, err := os.Open(tapeInput)
			if err != nil {
				atexit.Fatalf("%v: %v", tapeInput, err)
			}
			atexit.Register(func() { inf.Close() })
			emu.Tape.Input = inf
		}

		if tapeOutput == "-" {
			emu.Tape.Output = os.Stdout
		} else {
			ouf, err := os.Create(tapeOutput)
			if err != nil {
				atexit.Fatalf("%v: %v", tapeOutput, err)
			}
			atexit.Register(func() { ouf.Close() })
			emu.Tape.Output = ouf
		}

		err := emu.Run()
		if err != nil {
			atexit.Fatal(err)
		}
	}

	atexit.Exit(0)
}

// writeImage writes the memory image to a file, or stdout for "-".
func writeImage(output string, mem *asm.Memory) (err error) {
	if output == "-" {
		_, err = mem.WriteTo(os.Stdout)
		return
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = mem.WriteTo(ouf)
	return
}
