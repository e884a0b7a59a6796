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

// Package vm implements an Intcode virtual machine.
//
// Intcode programs are flat lists of signed 64 bit integers. The machine
// interprets ten opcodes over a growable, zero filled memory image, with
// three addressing modes (position, immediate and relative) encoded as
// decimal digits above the opcode in each instruction word.
//
// The defining feature of this implementation is its cooperative execution
// contract: Run never blocks. It executes instructions until the program
// emits an output value, asks for input that has not been supplied yet, or
// halts, then returns a State describing why control was yielded. A single
// threaded caller can therefore drive any number of Instances by
// interleaving Run calls, which is how amplifier feedback loops and packet
// networks of dozens of machines are built on top of this package.
//
// Programs are trusted. A malformed instruction (unknown opcode, write
// operand in immediate mode) or a negative effective address stops the
// machine with an error; there is no recovery path.
//
// Note that for performance reasons the PC is not incremented in a single
// place, rather each opcode deals with the PC as needed. This should be of
// no concern to users of the public API.
package vm
