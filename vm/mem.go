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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads an Intcode program from r. The on disk representation is a
// flat sequence of base 10 signed integers; any run of bytes that is not
// part of an integer acts as a separator, so comma and newline delimited
// programs (and anything in between) all load the same way.
func Parse(r io.Reader) ([]Cell, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "program read failed")
	}
	var prog []Cell
	for p := 0; p < len(b); {
		c := b[p]
		if c != '-' && (c < '0' || c > '9') {
			p++
			continue
		}
		start := p
		p++
		for p < len(b) && b[p] >= '0' && b[p] <= '9' {
			p++
		}
		if b[start] == '-' && p == start+1 {
			continue // lone minus sign
		}
		v, err := strconv.ParseInt(string(b[start:p]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad integer at offset %d", start)
		}
		prog = append(prog, Cell(v))
	}
	if len(prog) == 0 {
		return nil, errors.New("empty program")
	}
	return prog, nil
}

// ParseString is a convenience wrapper around Parse for in memory programs.
func ParseString(s string) ([]Cell, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	prog, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return prog, nil
}

// Save writes a Cell slice to file fileName as a comma separated program,
// suitable for loading back with Load.
func Save(fileName string, mem []Cell) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Save")
	}
	w := bufio.NewWriter(f)
	defer func() {
		w.Flush()
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	for p, v := range mem {
		if p > 0 {
			if err = w.WriteByte(','); err != nil {
				return errors.Wrap(err, "Save")
			}
		}
		if _, err = w.WriteString(strconv.FormatInt(int64(v), 10)); err != nil {
			return errors.Wrap(err, "Save")
		}
	}
	err = w.WriteByte('\n')
	return errors.Wrap(err, "Save")
}
