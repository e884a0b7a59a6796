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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
)

type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, vm.Cell(n))
	return nil
}
func (l *cellList) Get() interface{} { return *l }

var (
	noRaw       bool
	debug       bool
	dump        bool
	outFileName string
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Base: %v\n", i.PC, i.Mem[i.PC], i.Base())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Base: %v\n", i.PC, i.Base())
		}
	}
	os.Exit(1)
}

// runNumeric drives the machine with plain integer I/O: every output value
// is printed on its own line and every input starvation reads one integer
// from r.
func runNumeric(i *vm.Instance, r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	for {
		s, err := i.Run()
		if err != nil {
			return err
		}
		switch s.Status {
		case vm.Output:
			fmt.Fprintln(w, int64(s.Value))
		case vm.NeedInput:
			var v int64
			if _, err = fmt.Fscan(in, &v); err != nil {
				return err
			}
			i.Send(vm.Cell(v))
		case vm.Halted:
			return nil
		}
	}
}

func main() {
	var err error
	var i *vm.Instance
	var inputs cellList

	var fileName = flag.String("program", "program.txt", "Load the Intcode program from file `filename`")
	var extra = flag.Int("extra", -1, "reserve `n` extra memory cells beyond the end of the program")
	var disasm = flag.Bool("disasm", false, "print a disassembly of the program and exit")
	var asciiMode = flag.Bool("ascii", false, "drive the program through the line oriented ASCII protocol")
	flag.Var(&inputs, "in", "queue integer `value` as input (can be specified multiple times)")
	flag.BoolVar(&dump, "dump", false, "dump registers and memory image upon exit")
	flag.BoolVar(&noRaw, "noraw", false, "disable raw terminal IO in -ascii mode")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&outFileName, "o", "", "`filename` to use when saving the final memory image as a program")

	flag.Parse()

	prog, err := vm.Load(*fileName)
	if err != nil {
		atExit(nil, err)
	}

	if *disasm {
		atExit(nil, vm.DisassembleAll(vm.Image(prog), os.Stdout))
		return
	}

	var opts = []vm.Option{vm.Input(inputs...)}
	if *extra >= 0 {
		opts = append(opts, vm.Extra(*extra))
	}

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && dump {
			err = dumpVM(i, os.Stdout)
		}
		if err == nil && outFileName != "" {
			err = vm.Save(outFileName, i.Mem)
		}
		atExit(i, err)
	}()

	if *asciiMode {
		var m *ascii.Machine
		m, err = ascii.New(prog, opts...)
		if err != nil {
			return
		}
		i = m.VM
		if !noRaw {
			// switch the terminal to raw mode so that interactive programs
			// receive keystrokes as they are typed.
			if tearDown, e := setRawIO(); e == nil {
				defer tearDown()
			}
		}
		err = m.Interact(os.Stdin, stdout)
		return
	}

	i, err = vm.New(prog, opts...)
	if err != nil {
		return
	}
	err = runNumeric(i, os.Stdin, stdout)
}
