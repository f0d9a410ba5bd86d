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

// Command succinctcli is the textual front end described by the core
// library's external interface: it reads a bit string and a batch of
// access/rank/select commands from a file, runs them against a freshly
// built bitvector.Vector, and writes the results to another file.
//
// It is deliberately a thin driver: every interesting algorithm lives in
// the bitvector package and its sub-packages; this command only parses
// text and formats results, the same division of labor as app/Kanzi.go
// sits on top of the kanzi compression engine.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	bitvector "github.com/succinct-go/bitvector"
)

const (
	exitMissingParam = 1
	exitMalformed    = 2
	exitIOFailure    = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run is the testable core of main: it takes the raw argument slice and a
// diagnostics writer, and returns the process exit code.
func run(args []string, diag io.Writer) int {
	positional := make([]string, 0, 2)
	verbose := false

	for _, a := range args {
		switch a {
		case "-v", "--verbose":
			verbose = true
		default:
			positional = append(positional, a)
		}
	}

	if len(positional) != 2 {
		fmt.Fprintln(diag, "Usage: succinctcli [-v|--verbose] <input_path> <output_path>")
		return exitMissingParam
	}

	inputPath, outputPath := positional[0], positional[1]

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(diag, "failed to open %s: %v\n", inputPath, err)
		return exitIOFailure
	}
	defer in.Close()

	parsed, err := parseInput(in)
	if err != nil {
		fmt.Fprintf(diag, "%v\n", err)
		return exitMalformed
	}

	var listeners []bitvector.Listener
	var printer *infoPrinter

	if verbose {
		printer = newInfoPrinter(diag)
		listeners = append(listeners, printer)
	}

	start := time.Now()

	v, err := bitvector.Build(parsed.bits, listeners...)
	if err != nil {
		fmt.Fprintf(diag, "%v\n", err)
		return exitMalformed
	}

	results, err := execute(v, parsed.commands, printer)
	if err != nil {
		fmt.Fprintf(diag, "%v\n", err)
		return exitMalformed
	}

	elapsed := time.Since(start)

	if err := writeOutput(outputPath, results); err != nil {
		fmt.Fprintf(diag, "%v\n", err)
		return exitIOFailure
	}

	if verbose {
		fmt.Fprintf(diag, "RESULT name=%s time=%d space=%d\n",
			uuid.NewString(), elapsed.Milliseconds(), v.SizeBytes())
	}

	return 0
}

// execute runs every parsed command against v in order and formats each
// result as a line of text. An out-of-range query aborts the whole run,
// matching the front end's "fatal for the current query, may abort the
// run" policy from the core's error handling contract.
func execute(v *bitvector.Vector, commands []command, printer *infoPrinter) ([]string, error) {
	results := make([]string, 0, len(commands))

	for _, c := range commands {
		var line string

		switch c.kind {
		case cmdAccess:
			bit, err := v.Access(c.arg)
			if err != nil {
				return nil, fmt.Errorf("access %d: %w", c.arg, err)
			}

			line = strconv.FormatUint(uint64(bit), 10)

		case cmdRank:
			r, err := v.Rank(c.bit, c.arg)
			if err != nil {
				return nil, fmt.Errorf("rank %d %d: %w", c.bit, c.arg, err)
			}

			line = strconv.Itoa(r)

		case cmdSelect:
			p, err := v.Select(c.bit, c.arg)
			if err != nil {
				return nil, fmt.Errorf("select %d %d: %w", c.bit, c.arg, err)
			}

			line = strconv.Itoa(p)

		default:
			return nil, errors.New("execute: unreachable command kind")
		}

		if printer != nil {
			printer.ProcessEvent(bitvector.NewEvent(bitvector.EvtQuery, 0, line, time.Time{}))
		}

		results = append(results, line)
	}

	return results, nil
}

func writeOutput(path string, results []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", bitvector.ErrIOFailure, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := w.WriteString(strings.Join(results, "\n")); err != nil {
		return fmt.Errorf("%w: write %s: %v", bitvector.ErrIOFailure, path, err)
	}

	if len(results) > 0 {
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: write %s: %v", bitvector.ErrIOFailure, path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %v", bitvector.ErrIOFailure, path, err)
	}

	return nil
}
