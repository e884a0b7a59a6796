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

// Send appends the given values to the tail of the input queue, preserving
// order. It is safe to call at any time, including after the machine has
// halted, in which case the values are simply never consumed.
func (i *Instance) Send(vs ...Cell) {
	i.input = append(i.input, vs...)
}

// SendString queues the code point of each byte of s. Scripted programs
// usually expect a trailing newline after each command; providing it is the
// caller's responsibility.
func (i *Instance) SendString(s string) {
	for _, c := range []byte(s) {
		i.input = append(i.input, Cell(c))
	}
}
