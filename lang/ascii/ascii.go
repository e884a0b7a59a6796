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

// Package ascii provides utility functions and types for driving Intcode
// programs that speak a line oriented ASCII protocol: scripted robots,
// interactive consoles and the like.
//
// Such programs emit text one code point per output value and read commands
// the same way, one code point per input value, terminated by a newline.
// Values outside the ASCII range are how they report final numeric answers
// in the middle of a text stream; ReadLine surfaces these through State.
package ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// Machine wraps a vm.Instance with line oriented ASCII I/O.
type Machine struct {
	VM   *vm.Instance
	last vm.State
}

// New creates a Machine running the given program.
func New(program []vm.Cell, opts ...vm.Option) (*Machine, error) {
	i, err := vm.New(program, opts...)
	if err != nil {
		return nil, err
	}
	return &Machine{VM: i}, nil
}

// State returns the VM state that ended the last ReadLine: the newline
// output that terminated the line, a NeedInput or Halted yield, or an
// Output carrying a non ASCII value.
func (m *Machine) State() vm.State {
	return m.last
}

// WriteLine queues the command s followed by the trailing newline that
// scripted programs expect.
func (m *Machine) WriteLine(s string) {
	m.VM.SendString(s)
	m.VM.Send('\n')
}

// ReadLine runs the machine until it has emitted a full line of ASCII
// output and returns the line without its trailing newline. The read also
// stops, returning the text collected so far, when the machine asks for
// input, halts, or emits a value outside the ASCII range; State tells these
// cases apart.
func (m *Machine) ReadLine() (string, error) {
	var b strings.Builder
	for {
		s, err := m.VM.Run()
		if err != nil {
			return b.String(), err
		}
		m.last = s
		if s.Status != vm.Output {
			return b.String(), nil
		}
		if s.Value == '\n' {
			return b.String(), nil
		}
		if s.Value < 0 || s.Value > unicode.MaxASCII {
			return b.String(), nil
		}
		b.WriteByte(byte(s.Value))
	}
}

// Interact pumps the machine against the given reader and writer until it
// halts: output is echoed to w, and whenever the machine starves for input
// a full line is read from r and queued. Non ASCII output values are
// printed in decimal on their own line. Interact returns nil once the
// machine halts, or the first VM or I/O error.
func (m *Machine) Interact(r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)
	for {
		s, err := m.VM.Run()
		if err != nil {
			return err
		}
		m.last = s
		switch s.Status {
		case vm.Output:
			var b []byte
			if s.Value >= 0 && s.Value <= unicode.MaxASCII {
				b = []byte{byte(s.Value)}
			} else {
				b = append(strconv.AppendInt(b, int64(s.Value), 10), '\n')
			}
			if _, err = w.Write(b); err != nil {
				return errors.Wrap(err, "output failed")
			}
		case vm.NeedInput:
			if !in.Scan() {
				if err = in.Err(); err != nil {
					return errors.Wrap(err, "input failed")
				}
				return errors.New("input closed before the program halted")
			}
			m.WriteLine(in.Text())
		case vm.Halted:
			return nil
		}
	}
}
