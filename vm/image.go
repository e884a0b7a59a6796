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

import "github.com/pkg/errors"

// Image encapsulates a VM's memory. Addresses start at zero and the image
// grows on demand: reading past the end yields 0, writing past the end
// extends it with zero filled cells. Negative addresses are a hard fault in
// both directions, reported as a panic that Run recovers into an error.
type Image []Cell

// At returns the cell at address addr, or 0 if addr lies beyond the current
// extent.
func (m Image) At(addr Cell) Cell {
	if addr < 0 {
		panic(errors.Errorf("read from negative address %d", addr))
	}
	if int(addr) >= len(m) {
		return 0
	}
	return m[addr]
}

// Set stores v at address addr, growing the image if needed.
func (m *Image) Set(addr, v Cell) {
	if addr < 0 {
		panic(errors.Errorf("write to negative address %d", addr))
	}
	if int(addr) >= len(*m) {
		*m = append(*m, make(Image, int(addr)-len(*m)+1)...)
	}
	(*m)[addr] = v
}

// Clone returns an independent copy of the image.
func (m Image) Clone() Image {
	c := make(Image, len(m))
	copy(c, m)
	return c
}

// DecodeString returns the ASCII string starting at position pos in the
// image. The string runs until the first cell outside the byte range.
func (m Image) DecodeString(pos int) string {
	end := pos
	for ; end < len(m) && m[end] > 0 && m[end] < 256; end++ {
	}
	str := make([]byte, end-pos)
	for idx, c := range m[pos:end] {
		str[idx] = byte(c)
	}
	return string(str)
}
