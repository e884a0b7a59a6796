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

// Intcode Virtual Machine opcodes.
const (
	OpAdd Cell = iota + 1 // c := a + b
	OpMul                 // c := a * b
	OpIn                  // a := next queued input
	OpOut                 // yield a
	OpJnz                 // if a != 0 then pc := b
	OpJz                  // if a == 0 then pc := b
	OpLt                  // c := a < b
	OpEq                  // c := a == b
	OpArb                 // base += a

	OpHalt Cell = 99
)

// Addressing modes. One decimal digit per operand, read least significant
// first above the opcode in the instruction word.
const (
	Position Cell = iota
	Immediate
	Relative
)

type opdef struct {
	name string
	args int
}

var opdefs = map[Cell]opdef{
	OpAdd:  {"add", 3},
	OpMul:  {"mul", 3},
	OpIn:   {"in", 1},
	OpOut:  {"out", 1},
	OpJnz:  {"jnz", 2},
	OpJz:   {"jz", 2},
	OpLt:   {"lt", 3},
	OpEq:   {"eq", 3},
	OpArb:  {"arb", 1},
	OpHalt: {"halt", 0},
}
