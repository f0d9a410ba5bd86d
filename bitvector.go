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

// Package bitvector provides a succinct bit vector answering access, rank
// and select queries over a static bit sequence in O(1), using o(n)
// auxiliary space.
//
// The implementation of the supporting index structures lives in the
// storage, rank and selectindex sub-packages; this package wires them
// together into a single read-only Vector.
package bitvector

import (
	"fmt"
	"time"

	"github.com/succinct-go/bitvector/internal"
	"github.com/succinct-go/bitvector/rank"
	"github.com/succinct-go/bitvector/selectindex"
	"github.com/succinct-go/bitvector/storage"
)

// Re-exported error kinds. Callers distinguish error kinds with errors.Is
// against these sentinels.
var (
	ErrMalformedInput = internal.ErrMalformedInput
	ErrOutOfRange     = internal.ErrOutOfRange
	ErrUninitialised  = internal.ErrUninitialised
	ErrIOFailure      = internal.ErrIOFailure
)

// Vector is an immutable bit sequence with its rank and select indices. A
// Vector is only ever produced fully built: there is no partially
// constructed state visible to callers, and no method mutates it.
type Vector struct {
	bits *storage.BitStorage
	rk   *rank.Index
	sel  [2]*selectindex.Index
}

// Build parses an ASCII string of '0'/'1' characters and constructs a
// Vector with both rank and select indices. Any other byte is reported as
// ErrMalformedInput.
func Build(bits string, listeners ...Listener) (*Vector, error) {
	bs, err := storage.NewFromString(bits)
	if err != nil {
		return nil, err
	}

	return buildIndices(bs, listeners)
}

// BuildFromWords constructs a Vector from an already packed native-width
// word buffer plus a bit length, as an alternative to Build for callers
// that already hold the bits in binary form.
func BuildFromWords(words []uint64, length int, listeners ...Listener) (*Vector, error) {
	bs, err := storage.NewFromWords(words, length)
	if err != nil {
		return nil, err
	}

	return buildIndices(bs, listeners)
}

func notify(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}

func buildIndices(bs *storage.BitStorage, listeners []Listener) (*Vector, error) {
	notify(listeners, NewEvent(EvtBuildStart, int64(bs.Len()), "build start", time.Time{}))

	v := &Vector{bits: bs, rk: rank.Build(bs)}

	sel0, err := selectindex.Build(bs, 0)
	if err != nil {
		return nil, err
	}

	sel1, err := selectindex.Build(bs, 1)
	if err != nil {
		return nil, err
	}

	v.sel[0] = sel0
	v.sel[1] = sel1

	notify(listeners, NewEvent(EvtBuildEnd, v.SizeBytes(), "build end", time.Time{}))

	return v, nil
}

// Len returns n, the length of the bit sequence.
func (v *Vector) Len() int {
	return v.bits.Len()
}

// Access returns the bit at position i.
func (v *Vector) Access(i int) (uint, error) {
	return v.bits.Access(i)
}

// Rank returns the number of occurrences of bit in [0,i).
func (v *Vector) Rank(bit uint, i int) (int, error) {
	switch bit {
	case 0:
		return v.rk.Rank0(v.bits, i)
	case 1:
		return v.rk.Rank1(v.bits, i)
	default:
		return 0, fmt.Errorf("%w: rank target bit must be 0 or 1, got %d", ErrMalformedInput, bit)
	}
}

// Select returns the position of the j-th occurrence of bit. j is
// 1-based, per the public API contract; callers wanting a 0-based index
// must add one before calling.
func (v *Vector) Select(bit uint, j int) (int, error) {
	if bit != 0 && bit != 1 {
		return 0, fmt.Errorf("%w: select target bit must be 0 or 1, got %d", ErrMalformedInput, bit)
	}

	if j < 1 {
		return 0, fmt.Errorf("%w: select(%d) j must be >= 1", ErrOutOfRange, j)
	}

	return v.sel[bit].Select(v.bits, j-1)
}

// SizeBytes returns the total resident byte cost of the vector: raw
// storage plus both index structures.
func (v *Vector) SizeBytes() int64 {
	return v.bits.SizeBytes() + v.RankSizeBytes() + v.SelectSizeBytes(0) + v.SelectSizeBytes(1)
}

// RankSizeBytes returns the resident byte cost of the rank index alone.
func (v *Vector) RankSizeBytes() int64 {
	return v.rk.SizeBytes()
}

// SelectSizeBytes returns the resident byte cost of the select index for
// the given target bit.
func (v *Vector) SelectSizeBytes(bit uint) int64 {
	if bit != 0 && bit != 1 {
		return 0
	}

	return v.sel[bit].SizeBytes()
}
