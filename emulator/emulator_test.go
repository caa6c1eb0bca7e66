package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/asm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.Equal(MAX_TICKS, emu.MaxTicks)

	// An empty machine halts immediately.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Halted())
}

func doRun(program []string, input string, t *testing.T) (emu *Emulator, output string, err error) {
	assert := assert.New(t)

	mem, err := asm.Compile(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.FailNow()
	}

	emu = NewEmulator()
	emu.Load(mem)

	emu.Tape.Input = strings.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	err = emu.Run()
	output = tape_output.String()
	return
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"INP",
		"STA 99",
		"LDA 99",
		"ADD 99",
		"OUT",
		"HLT",
	}

	emu, output, err := doRun(program, "21", t)
	assert.NoError(err)
	assert.Equal("42\n", output)
	assert.Equal(int16(21), emu.Memory[99])
	assert.Equal(int16(42), emu.Accumulator)
	assert.Equal(6, emu.Ticks)
	assert.True(emu.Halted())
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"INP",   // 00
		"OUT",   // 01 loop
		"SUB 8", // 02
		"BRZ 6", // 03
		"BRP 1", // 04
		"HLT",   // 05 went negative
		"OUT",   // 06
		"HLT",   // 07
		"DAT 1", // 08
	}

	_, output, err := doRun(program, "3", t)
	assert.NoError(err)
	assert.Equal("3\n2\n1\n0\n", output)

	_, output, err = doRun(program, "-2", t)
	assert.NoError(err)
	assert.Equal("-2\n", output)
}

func TestEmulatorBranch(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"BRA 3",
		"OUT",
		"HLT",
		"LDA 5",
		"BRA 1",
		"DAT 17",
	}

	_, output, err := doRun(program, "", t)
	assert.NoError(err)
	assert.Equal("17\n", output)
}

func TestEmulatorErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Program []string
		Input   string
		Ip      int
		Err     error
	}){
		{[]string{"INP", "HLT"}, "", 0, nil},
		{[]string{"INP", "ADD 3", "HLT", "DAT 999"}, "1", 1, ErrOverflow},
		{[]string{"INP", "SUB 3", "HLT", "DAT 999"}, "-1", 1, ErrOverflow},
		{[]string{"INP", "HLT"}, "1000", 0, ErrOverflow},
		{[]string{"LDA 2", "HLT", "DAT 1000"}, "", 0, ErrOverflow},
		{[]string{"DAT 400"}, "", 0, ErrInstructionInvalid},
		{[]string{"DAT 903"}, "", 0, ErrInstructionInvalid},
		{[]string{"DAT 5"}, "", 0, ErrInstructionInvalid},
		{[]string{"DAT -1"}, "", 0, ErrInstructionInvalid},
		{[]string{"BRA 0"}, "", 0, ErrTickLimit},
	}

	for n, entry := range table {
		emu, _, err := doRun(entry.Program, entry.Input, t)
		var rt *ErrRuntime
		if !assert.True(errors.As(err, &rt), n) {
			continue
		}
		assert.Equal(entry.Ip, rt.Ip, n)
		if entry.Err != nil {
			assert.ErrorIs(err, entry.Err, n)
		}
		assert.False(emu.Halted(), n)
	}
}

func TestEmulatorIpOverflow(t *testing.T) {
	assert := assert.New(t)

	mem := &asm.Memory{}
	mem[99] = 199

	emu := NewEmulator()
	emu.Load(mem)
	emu.Ip = 99

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(int16(199), emu.Accumulator)

	_, err = emu.Tick()
	assert.ErrorIs(err, ErrIpOverflow)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	mem, err := asm.Compile("INP\nSTA 10\nHLT\n")
	assert.NoError(err)

	emu := NewEmulator()
	emu.Load(mem)
	emu.Tape.Input = strings.NewReader("5")
	assert.NoError(emu.Run())
	assert.Equal(int16(5), emu.Memory[10])

	emu.Reset()
	assert.Equal(int16(0), emu.Memory[10])
	assert.Equal(0, emu.Ip)
	assert.Equal(0, emu.Ticks)
	assert.False(emu.Halted())
	assert.Equal(int16(0), mem[10])
}
