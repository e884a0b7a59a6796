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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
)

// Disassemble decodes the instruction at position pc in the image and
// returns the position of the next instruction and its textual form.
// Operands are rendered according to their addressing mode: @N for
// position, a bare literal for immediate, and r+N / r-N for relative.
// A word that is not a valid instruction is rendered as "dat N" and skipped
// as a single cell; since Intcode freely mixes code and data, this is not
// an error.
func (m Image) Disassemble(pc int) (next int, text string) {
	op := m[pc]
	def, ok := opdefs[op%100]
	if op < 0 || !ok {
		return pc + 1, "dat " + strconv.FormatInt(int64(op), 10)
	}
	var b strings.Builder
	b.WriteString(def.name)
	div := Cell(100)
	for k := 1; k <= def.args; k++ {
		b.WriteByte(' ')
		if pc+k >= len(m) {
			b.WriteString("???")
			break
		}
		v := strconv.FormatInt(int64(m[pc+k]), 10)
		switch (op / div) % 10 {
		case Position:
			b.WriteByte('@')
			b.WriteString(v)
		case Immediate:
			b.WriteString(v)
		case Relative:
			b.WriteByte('r')
			if m[pc+k] >= 0 {
				b.WriteByte('+')
			}
			b.WriteString(v)
		default:
			b.WriteString("?" + v)
		}
		div *= 10
	}
	return pc + def.args + 1, b.String()
}

// DisassembleAll writes a disassembly of all cells in the given image to
// the specified io.Writer. It will return any write error.
func DisassembleAll(m Image, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(m); {
		var text string
		fmt.Fprintf(ew, "% 10d\t", pc)
		pc, text = m.Disassemble(pc)
		io.WriteString(ew, text)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
