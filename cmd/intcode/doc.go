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

// The intcode command line tool is a showcase for the package
// github.com/db47h/intcode/vm. It loads an Intcode program from a text file
// and runs it to completion.
//
// Usage:
//
//	-ascii
//		  drive the program through the line oriented ASCII protocol
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a disassembly of the program and exit
//	-dump
//		  dump registers and memory image upon exit
//	-extra n
//		  reserve n extra memory cells beyond the end of the program
//	-in value
//		  queue integer value as input (can be specified multiple times)
//	-noraw
//		  disable raw terminal IO in -ascii mode
//	-o filename
//		  filename to use when saving the final memory image as a program
//	-program filename
//		  Load the Intcode program from file filename (default "program.txt")
//
// -ascii: many Intcode programs speak a line oriented ASCII protocol. With
// this flag, output values are written to stdout as text and each input
// starvation reads one command line from stdin. Without it, output values
// are printed in decimal one per line and input is read as integers.
//
// -debug: will print a full stacktrace should the VM crash.
//
// -disasm: prints one instruction per line with mode aware operands (@N for
// position, bare literals for immediate, r+N for relative). Words that do
// not decode as instructions print as "dat N".
//
// -dump: dumps registers, run statistics and the memory image to stdout in
// the same text format the loader accepts.
//
// -in: queues inputs ahead of the first instruction, in order of appearance
// on the command line.
//
// -o: after the program halts, saves the final memory image as a
// comma separated program file. Combined with -extra 0 this can be used to
// snapshot self modifying programs.
package main
