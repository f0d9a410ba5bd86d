/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	bitvector "github.com/succinct-go/bitvector"
)

// commandKind distinguishes the three query verbs the textual front end
// accepts.
type commandKind int

const (
	cmdAccess commandKind = iota
	cmdRank
	cmdSelect
)

// command is one parsed line of the command section.
type command struct {
	kind commandKind
	bit  uint
	arg  int
}

// parsedInput holds everything read from the input file: the bit string
// to build a Vector from and the query commands to run against it.
type parsedInput struct {
	bits     string
	commands []command
}

// parseInput reads the textual format described by the front end's wire
// contract:
//
//	<C>
//	<bit-string>
//	<command_1>
//	...
//	<command_C>
func parseInput(r io.Reader) (*parsedInput, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing command count line", bitvector.ErrMalformedInput)
	}

	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid command count %q", bitvector.ErrMalformedInput, scanner.Text())
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing bit string line", bitvector.ErrMalformedInput)
	}

	bits := strings.TrimSpace(scanner.Text())

	commands := make([]command, 0, count)

	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: declared %d commands but found only %d", bitvector.ErrMalformedInput, count, i)
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			return nil, err
		}

		commands = append(commands, cmd)
	}

	if scanner.Scan() {
		return nil, fmt.Errorf("%w: more command lines present than the declared count %d", bitvector.ErrMalformedInput, count)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", bitvector.ErrIOFailure, err)
	}

	return &parsedInput{bits: bits, commands: commands}, nil
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)

	if len(fields) == 0 {
		return command{}, fmt.Errorf("%w: empty command line", bitvector.ErrMalformedInput)
	}

	switch fields[0] {
	case "access":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("%w: access expects 1 argument, got %q", bitvector.ErrMalformedInput, line)
		}

		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("%w: access index %q is not numeric", bitvector.ErrMalformedInput, fields[1])
		}

		return command{kind: cmdAccess, arg: i}, nil

	case "rank":
		if len(fields) != 3 {
			return command{}, fmt.Errorf("%w: rank expects 2 arguments, got %q", bitvector.ErrMalformedInput, line)
		}

		b, err := parseBit(fields[1])
		if err != nil {
			return command{}, err
		}

		i, err := strconv.Atoi(fields[2])
		if err != nil {
			return command{}, fmt.Errorf("%w: rank index %q is not numeric", bitvector.ErrMalformedInput, fields[2])
		}

		return command{kind: cmdRank, bit: b, arg: i}, nil

	case "select":
		if len(fields) != 3 {
			return command{}, fmt.Errorf("%w: select expects 2 arguments, got %q", bitvector.ErrMalformedInput, line)
		}

		b, err := parseBit(fields[1])
		if err != nil {
			return command{}, err
		}

		j, err := strconv.Atoi(fields[2])
		if err != nil {
			return command{}, fmt.Errorf("%w: select rank %q is not numeric", bitvector.ErrMalformedInput, fields[2])
		}

		return command{kind: cmdSelect, bit: b, arg: j}, nil

	default:
		return command{}, fmt.Errorf("%w: unknown command verb %q", bitvector.ErrMalformedInput, fields[0])
	}
}

func parseBit(s string) (uint, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: bit value must be 0 or 1, got %q", bitvector.ErrMalformedInput, s)
	}
}
