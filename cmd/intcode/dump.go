package main

import (
	"fmt"
	"io"

	"github.com/db47h/intcode/vm"
)

// dumpVM writes the machine registers, run statistics and memory image to
// the specified io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	_, err := fmt.Fprintf(w, "instructions:%d halted:%v pending:%d\n",
		i.InstructionCount(), i.Halted(), i.Pending())
	if err != nil {
		return err
	}
	return i.Dump(w)
}
