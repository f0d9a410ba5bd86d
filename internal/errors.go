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

package internal

import "errors"

// Sentinel errors shared by storage, rank and selectindex so that callers
// across package boundaries can distinguish error kinds with errors.Is,
// without introducing an import cycle back to the root bitvector package.
var (
	// ErrMalformedInput flags a bit string, parameter or command that could
	// not be parsed. Fatal at construction.
	ErrMalformedInput = errors.New("bitvector: malformed input")

	// ErrOutOfRange flags a query index outside the bounds the structure
	// was built for.
	ErrOutOfRange = errors.New("bitvector: index out of range")

	// ErrUninitialised flags a query issued against an index that was
	// never built.
	ErrUninitialised = errors.New("bitvector: index not built")

	// ErrIOFailure flags a read or write failure at the command-line
	// front end.
	ErrIOFailure = errors.New("bitvector: i/o failure")
)
