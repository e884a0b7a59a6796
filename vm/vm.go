// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// extraCells is the default headroom appended to the loaded program so that
// most programs never need to grow their image at run time.
const extraCells = 2048

// Instance represents an Intcode VM instance.
//
// Instances share nothing: each owns its memory image and input queue, and
// any number of them can be driven side by side from a single goroutine by
// alternating Run calls.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Mem      Image // Memory image
	base     Cell  // relative addressing base
	progLen  int
	input    []Cell
	halted   bool
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Extra sets the amount of zero filled headroom appended to the program at
// construction time. The default is 2048 cells. The image still grows on
// demand if a write lands beyond the headroom.
func Extra(n int) Option {
	return func(i *Instance) error {
		if n < 0 {
			n = 0
		}
		prog := i.Mem[:i.progLen:i.progLen]
		i.Mem = append(prog, make(Image, n)...)
		return nil
	}
}

// Input queues the given values ahead of the first Run call.
func Input(vs ...Cell) Option {
	return func(i *Instance) error { i.Send(vs...); return nil }
}

// InputString queues the ASCII code points of s.
func InputString(s string) Option {
	return func(i *Instance) error { i.SendString(s); return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The program parameter is copied, so the same program slice can be used to
// build any number of independent instances. The new instance starts with
// PC 0, relative base 0 and an empty input queue.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:     append(append(make(Image, 0, len(program)+extraCells), program...), make(Image, extraCells)...),
		progLen: len(program),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Base returns the current relative addressing base.
func (i *Instance) Base() Cell {
	return i.base
}

// Halted reports whether the HALT opcode has been executed. Once true it
// never resets.
func (i *Instance) Halted() bool {
	return i.halted
}

// Pending returns the number of queued input values not yet consumed.
func (i *Instance) Pending() int {
	return len(i.input)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Reset rewinds the PC, relative base and input queue so that the instance
// can be run again. Memory is left alone: any modifications made by the
// program are kept.
func (i *Instance) Reset() {
	i.PC = 0
	i.base = 0
	i.input = i.input[:0]
	i.halted = false
	i.insCount = 0
}

// Dump dumps the machine registers and memory image to the specified
// io.Writer, in the same comma separated format that the program loader
// accepts.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "pc:")
	io.WriteString(ew, strconv.Itoa(i.PC))
	io.WriteString(ew, " base:")
	io.WriteString(ew, strconv.FormatInt(int64(i.base), 10))
	ew.Write([]byte{'\n'})
	for p, v := range i.Mem {
		if p > 0 {
			ew.Write([]byte{','})
		}
		io.WriteString(ew, strconv.FormatInt(int64(v), 10))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
