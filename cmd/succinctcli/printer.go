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
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"

	bitvector "github.com/succinct-go/bitvector"
)

// infoPrinter is an implementation of bitvector.Listener that renders
// build events as human-readable lines, the way app/InfoPrinter.go
// renders block-processing events for the compressor CLI.
type infoPrinter struct {
	writer io.Writer
	lock   sync.Mutex
}

func newInfoPrinter(w io.Writer) *infoPrinter {
	return &infoPrinter{writer: w}
}

// ProcessEvent implements bitvector.Listener.
func (p *infoPrinter) ProcessEvent(evt *bitvector.Event) {
	p.lock.Lock()
	defer p.lock.Unlock()

	switch evt.Type() {
	case bitvector.EvtBuildStart:
		fmt.Fprintf(p.writer, "building vector of %s bits\n", humanize.Comma(evt.Size()))

	case bitvector.EvtBuildEnd:
		fmt.Fprintf(p.writer, "built indices, resident size %s\n", humanize.Bytes(uint64(evt.Size())))

	case bitvector.EvtQuery:
		fmt.Fprintf(p.writer, "%s\n", evt.String())
	}
}
