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

package ascii_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
)

func setup(t *testing.T, code string, opts ...vm.Option) *ascii.Machine {
	t.Helper()
	prog, err := vm.ParseString(code)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	m, err := ascii.New(prog, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return m
}

// prints "hi" and halts.
const hi = "104,104,104,105,104,10,99"

// echoes input bytes until a newline has been echoed, then halts.
const echo = "3,100,4,100,1008,100,10,101,1006,101,0,99"

func TestReadLine(t *testing.T) {
	m := setup(t, hi)
	line, err := m.ReadLine()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if line != "hi" {
		t.Errorf("expected %q, got %q", "hi", line)
	}
	if s := m.State(); s.Status != vm.Output || s.Value != '\n' {
		t.Errorf("expected a newline output state, got %v", s)
	}
	line, err = m.ReadLine()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if line != "" || m.State().Status != vm.Halted {
		t.Errorf("expected empty line and %v, got %q and %v", vm.Halted, line, m.State())
	}
}

func TestReadLineNonASCII(t *testing.T) {
	// "h", newline, then a value that cannot be a code point
	m := setup(t, "104,104,104,10,104,1000000,99")
	if line, err := m.ReadLine(); err != nil || line != "h" {
		t.Fatalf("expected %q, got %q (%v)", "h", line, err)
	}
	line, err := m.ReadLine()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if line != "" {
		t.Errorf("expected an empty line, got %q", line)
	}
	if s := m.State(); s.Status != vm.Output || s.Value != 1000000 {
		t.Errorf("expected out of range output state, got %v", s)
	}
}

func TestWriteLine(t *testing.T) {
	m := setup(t, echo)
	m.WriteLine("ok")
	line, err := m.ReadLine()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if line != "ok" {
		t.Errorf("expected %q, got %q", "ok", line)
	}
	if _, err = m.ReadLine(); m.State().Status != vm.Halted {
		t.Errorf("expected %v, got %v (%v)", vm.Halted, m.State(), err)
	}
}

func TestReadLineStarved(t *testing.T) {
	m := setup(t, echo)
	line, err := m.ReadLine()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if line != "" || m.State().Status != vm.NeedInput {
		t.Errorf("expected empty line and %v, got %q and %v", vm.NeedInput, line, m.State())
	}
}

func TestInteract(t *testing.T) {
	var out bytes.Buffer
	m := setup(t, echo)
	if err := m.Interact(strings.NewReader("hey\n"), &out); err != nil {
		t.Fatalf("%+v", err)
	}
	if got := out.String(); got != "hey\n" {
		t.Errorf("expected %q, got %q", "hey\n", got)
	}
}

func TestInteractNonASCII(t *testing.T) {
	var out bytes.Buffer
	m := setup(t, "104,77,104,1000000,99")
	if err := m.Interact(strings.NewReader(""), &out); err != nil {
		t.Fatalf("%+v", err)
	}
	if got := out.String(); got != "M1000000\n" {
		t.Errorf("expected %q, got %q", "M1000000\n", got)
	}
}

func TestInteractInputClosed(t *testing.T) {
	var out bytes.Buffer
	m := setup(t, echo)
	if err := m.Interact(strings.NewReader(""), &out); err == nil {
		t.Error("expected an error")
	}
}
