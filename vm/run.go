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
	"strconv"

	"github.com/pkg/errors"
)

// Status describes why Run yielded control back to the caller.
type Status int

// Run yield points.
const (
	Output    Status = iota // an OUT instruction produced a value
	NeedInput               // an IN instruction found the input queue empty
	Halted                  // the HALT instruction was executed
)

var statusNames = [...]string{"output", "need-input", "halted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// State is the tagged result of a Run call. Value is meaningful only when
// Status is Output.
type State struct {
	Status Status
	Value  Cell
}

// Run resumes execution from the current PC and executes instructions until
// the next yield point:
//
//   - an OUT instruction completes: Run returns an Output State carrying the
//     value, with the PC already advanced past the instruction, so calling
//     Run again continues towards the next yield point;
//   - an IN instruction finds the input queue empty: Run returns a NeedInput
//     State with the PC unchanged, so the same instruction is retried
//     transparently once input has been queued with Send;
//   - the HALT instruction executes: Run returns a Halted State, and every
//     further call returns Halted again with no side effects.
//
// Run never blocks, which is what allows a single threaded caller to
// interleave any number of instances through repeated Run calls.
//
// A malformed program or a negative effective address stops the machine with
// a non nil error. The PC is left on the offending instruction.
func (i *Instance) Run() (s State, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "intcode: pc=%d base=%d", i.PC, i.base)
			default:
				panic(e)
			}
		}
	}()
	if i.halted {
		return State{Status: Halted}, nil
	}
	for {
		op := i.Mem.At(Cell(i.PC))
		switch op % 100 {
		case OpAdd:
			a := i.operand(op/100, 1)
			b := i.operand(op/1000, 2)
			c := i.target(op/10000, 3)
			i.Mem.Set(c, i.Mem.At(a)+i.Mem.At(b))
			i.PC += 4
		case OpMul:
			a := i.operand(op/100, 1)
			b := i.operand(op/1000, 2)
			c := i.target(op/10000, 3)
			i.Mem.Set(c, i.Mem.At(a)*i.Mem.At(b))
			i.PC += 4
		case OpIn:
			if len(i.input) == 0 {
				// do not consume the instruction: it is retried on the
				// next Run call.
				return State{Status: NeedInput}, nil
			}
			a := i.target(op/100, 1)
			i.Mem.Set(a, i.input[0])
			i.input = i.input[1:]
			i.PC += 2
		case OpOut:
			a := i.operand(op/100, 1)
			v := i.Mem.At(a)
			i.PC += 2
			i.insCount++
			return State{Status: Output, Value: v}, nil
		case OpJnz:
			a := i.operand(op/100, 1)
			b := i.operand(op/1000, 2)
			if i.Mem.At(a) != 0 {
				i.PC = int(i.Mem.At(b))
			} else {
				i.PC += 3
			}
		case OpJz:
			a := i.operand(op/100, 1)
			b := i.operand(op/1000, 2)
			if i.Mem.At(a) == 0 {
				i.PC = int(i.Mem.At(b))
			} else {
				i.PC += 3
			}
		case OpLt:
			a := i.operand(op/100, 1)
			b := i.operand(op/1000, 2)
			c := i.target(op/10000, 3)
			if i.Mem.At(a) < i.Mem.At(b) {
				i.Mem.Set(c, 1)
			} else {
				i.Mem.Set(c, 0)
			}
			i.PC += 4
		case OpEq:
			a := i.operand(op/100, 1)
			b := i.operand(op/1000, 2)
			c := i.target(op/10000, 3)
			if i.Mem.At(a) == i.Mem.At(b) {
				i.Mem.Set(c, 1)
			} else {
				i.Mem.Set(c, 0)
			}
			i.PC += 4
		case OpArb:
			a := i.operand(op/100, 1)
			i.base += i.Mem.At(a)
			i.PC += 2
		case OpHalt:
			i.halted = true
			i.insCount++
			return State{Status: Halted}, nil
		default:
			panic(errors.Errorf("unknown opcode %d", op))
		}
		i.insCount++
	}
}

// operand resolves the effective address of a read operand. mode holds the
// instruction word shifted so that the relevant mode digit is in the unit
// position. Immediate operands resolve to the operand's own address, so that
// callers read values uniformly through Mem.At.
func (i *Instance) operand(mode Cell, offset int) Cell {
	var addr Cell
	switch mode % 10 {
	case Position:
		addr = i.Mem.At(Cell(i.PC + offset))
	case Immediate:
		addr = Cell(i.PC + offset)
	case Relative:
		addr = i.base + i.Mem.At(Cell(i.PC+offset))
	default:
		panic(errors.Errorf("unknown addressing mode %d", mode%10))
	}
	if addr < 0 {
		panic(errors.Errorf("negative effective address %d", addr))
	}
	return addr
}

// target resolves the effective address of a write operand. An immediate
// write target is a malformed program.
func (i *Instance) target(mode Cell, offset int) Cell {
	var addr Cell
	switch mode % 10 {
	case Position:
		addr = i.Mem.At(Cell(i.PC + offset))
	case Immediate:
		panic(errors.New("immediate mode write target"))
	case Relative:
		addr = i.base + i.Mem.At(Cell(i.PC+offset))
	default:
		panic(errors.Errorf("unknown addressing mode %d", mode%10))
	}
	if addr < 0 {
		panic(errors.Errorf("negative effective address %d", addr))
	}
	return addr
}
