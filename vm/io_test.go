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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
)

// reads five values then writes them back in order.
var fifo = C{
	3, 100, 3, 101, 3, 102, 3, 103, 3, 104,
	4, 100, 4, 101, 4, 102, 4, 103, 4, 104,
	99,
}

func TestSendOrder(t *testing.T) {
	i := setup(t, fifo, vm.Input(1, 2))
	i.Send(3)
	i.SendString("AB")
	if out := drain(t, i); !eq(out, C{1, 2, 3, 'A', 'B'}) {
		t.Errorf("expected output [1 2 3 65 66], got %d", out)
	}
}

func TestInputString(t *testing.T) {
	i := setup(t, C{3, 0, 4, 0, 99}, vm.InputString("h"))
	if out := drain(t, i); !eq(out, C{'h'}) {
		t.Errorf("expected output [104], got %d", out)
	}
}

// runAmp resumes one amplifier and returns its next output, or ok=false if
// it halted instead.
func runAmp(t *testing.T, i *vm.Instance) (v vm.Cell, ok bool) {
	t.Helper()
	s, err := i.Run()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	switch s.Status {
	case vm.Output:
		return s.Value, true
	case vm.Halted:
		return 0, false
	}
	t.Fatal("amplifier starved")
	return 0, false
}

// Five amplifiers in a serial chain: each one receives its phase setting
// and the previous stage's signal, and produces one output.
func TestAmplifierChain(t *testing.T) {
	var chains = [...]struct {
		code   C
		phases C
		signal vm.Cell
	}{
		{C{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
			C{4, 3, 2, 1, 0}, 43210},
		{C{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
			C{0, 1, 2, 3, 4}, 54321},
	}
	for n, c := range chains {
		var signal vm.Cell
		for _, phase := range c.phases {
			i := setup(t, c.code, vm.Input(phase, signal))
			v, ok := runAmp(t, i)
			if !ok {
				t.Fatalf("chain %d: amplifier halted without output", n)
			}
			signal = v
		}
		if signal != c.signal {
			t.Errorf("chain %d: expected signal %d, got %d", n, c.signal, signal)
		}
	}
}

// Five amplifiers in a feedback loop, driven round robin from a single
// goroutine. Every instance owns its state; the loop below is the whole
// cooperation mechanism.
func TestAmplifierFeedback(t *testing.T) {
	code := C{
		3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27,
		4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5,
	}
	phases := C{9, 8, 7, 6, 5}

	amps := make([]*vm.Instance, len(phases))
	for k, phase := range phases {
		amps[k] = setup(t, code, vm.Input(phase))
	}
	var signal vm.Cell
	for !amps[len(amps)-1].Halted() {
		for _, a := range amps {
			a.Send(signal)
			if v, ok := runAmp(t, a); ok {
				signal = v
			}
		}
	}
	if signal != 139629729 {
		t.Errorf("expected signal 139629729, got %d", signal)
	}
}
