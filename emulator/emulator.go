// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs Little Man Computer memory images.
package emulator

import (
	"fmt"
	"log"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/io"
)

const (
	WORD_MAX  = 999    // Largest accumulator value.
	WORD_MIN  = -999   // Smallest accumulator value.
	MAX_TICKS = 100000 // Default tick limit for Run.
)

// Machine opcode digits.
const (
	OPCODE_HLT = 0
	OPCODE_ADD = 1
	OPCODE_SUB = 2
	OPCODE_STA = 3
	OPCODE_LDA = 5
	OPCODE_BRA = 6
	OPCODE_BRZ = 7
	OPCODE_BRP = 8
	OPCODE_IO  = 9
)

// Emulator state. Memory + accumulator + tape.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging.
	MaxTicks int         // Tick limit for a run, zero for no limit.
	Image    *asm.Memory // Image loaded on Reset.

	Memory      asm.Memory // Working memory.
	Accumulator int16      // Accumulator register.
	Ip          int        // Address of the next instruction.
	Ticks       int        // Instructions executed since a reset.

	Tape io.Tape // Tape IO channel.

	halted bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		MaxTicks: MAX_TICKS,
	}

	return
}

// Load sets the image and resets the machine.
func (emu *Emulator) Load(image *asm.Memory) {
	emu.Image = image
	emu.Reset()
}

// Reset the machine state, and reload the image.
func (emu *Emulator) Reset() {
	if emu.Image != nil {
		emu.Memory = *emu.Image
	} else {
		emu.Memory = asm.Memory{}
	}

	emu.Accumulator = 0
	emu.Ip = 0
	emu.Ticks = 0
	emu.halted = false
	emu.Tape.Rewind()
}

// Halted returns true once a HLT has been executed.
func (emu *Emulator) Halted() bool {
	return emu.halted
}

func (emu *Emulator) String() string {
	return fmt.Sprintf("ip=%02d acc=%d ticks=%d", emu.Ip, emu.Accumulator, emu.Ticks)
}

// setAccumulator stores a value in the accumulator, if it fits.
func (emu *Emulator) setAccumulator(value int) (err error) {
	if value < WORD_MIN || value > WORD_MAX {
		err = ErrOverflow
		return
	}

	emu.Accumulator = int16(value)
	return
}

// Tick executes a single instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halted {
		done = true
		return
	}

	ip := emu.Ip
	var word int16

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Word: word, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	if ip < 0 || ip >= asm.MEMORY_SIZE {
		err = ErrIpOverflow
		return
	}

	word = emu.Memory[ip]
	if emu.Verbose {
		log.Printf("%v: %03d\n", emu, word)
	}

	emu.Ip++
	emu.Ticks++

	if word < 0 {
		err = ErrInstructionInvalid
		return
	}

	opcode := int(word) / 100
	addr := int(word) % 100

	switch opcode {
	case OPCODE_HLT:
		if addr != 0 {
			err = ErrInstructionInvalid
			return
		}
		emu.halted = true
		done = true
	case OPCODE_ADD:
		err = emu.setAccumulator(int(emu.Accumulator) + int(emu.Memory[addr]))
	case OPCODE_SUB:
		err = emu.setAccumulator(int(emu.Accumulator) - int(emu.Memory[addr]))
	case OPCODE_STA:
		emu.Memory[addr] = emu.Accumulator
	case OPCODE_LDA:
		err = emu.setAccumulator(int(emu.Memory[addr]))
	case OPCODE_BRA:
		emu.Ip = addr
	case OPCODE_BRZ:
		if emu.Accumulator == 0 {
			emu.Ip = addr
		}
	case OPCODE_BRP:
		if emu.Accumulator >= 0 {
			emu.Ip = addr
		}
	case OPCODE_IO:
		switch word {
		case asm.CODE_INPUT:
			var value int16
			value, err = emu.Tape.Receive()
			if err != nil {
				return
			}
			err = emu.setAccumulator(int(value))
		case asm.CODE_OUTPUT:
			err = emu.Tape.Send(emu.Accumulator)
		default:
			err = ErrInstructionInvalid
		}
	default:
		err = ErrInstructionInvalid
	}

	return
}

// Run ticks the machine until it halts, or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
