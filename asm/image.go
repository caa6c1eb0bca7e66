// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// String returns the on-disk form of the image: one unpadded decimal
// value per cell, separated by newlines, with no trailing newline.
func (mem *Memory) String() string {
	cells := make([]string, len(mem))
	for n, value := range mem {
		cells[n] = strconv.Itoa(int(value))
	}

	return strings.Join(cells, "\n")
}

// WriteTo writes the on-disk form of the image.
func (mem *Memory) WriteTo(w io.Writer) (n int64, err error) {
	count, err := io.WriteString(w, mem.String())
	n = int64(count)
	return
}

// Used returns the number of cells up to and including the last
// non-zero cell.
func (mem *Memory) Used() (used int) {
	for n, value := range mem {
		if value != 0 {
			used = n + 1
		}
	}
	return
}

// ReadMemory reads an image in the on-disk form. Images shorter than
// the memory are zero filled; blank lines are ignored.
func ReadMemory(input io.Reader) (mem *Memory, err error) {
	scanner := bufio.NewScanner(input)

	image := &Memory{}
	cells := 0
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}

		if cells == MEMORY_SIZE {
			err = ErrImageTooLong
			return
		}

		var value int64
		value, err = strconv.ParseInt(text, 10, 16)
		if err != nil {
			err = ErrImageValue(text)
			return
		}

		image[cells] = int16(value)
		cells++
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if cells == 0 {
		err = ErrImageEmpty
		return
	}

	mem = image
	return
}
