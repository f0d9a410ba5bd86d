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

// Package storage implements BitStorage, the packed bit array that every
// index structure in this module reads from but never mutates once built.
// The sliding-window word access below is the random-access counterpart of
// the bit-register bookkeeping in a bitstream reader: instead of pulling
// the next W bits off an io.Reader into a 'current' register, AccessWord
// rebuilds that same W-bit register on demand from two adjacent words.
package storage

import (
	"fmt"
	"math/bits"

	"github.com/succinct-go/bitvector/internal"
)

// NativeWordWidth is the default, and only fully space-efficient, word
// width: a plain Go uint64.
const NativeWordWidth = 64

// BitStorage packs n bits into an array of fixed-width words. Bit i lives
// in word i/W at intra-word position i mod W, LSB-first. It is immutable
// once construction returns.
type BitStorage struct {
	words     []uint64
	length    int
	wordWidth uint
}

// New allocates a BitStorage able to hold 'length' bits, all zero, using
// words of 'wordWidth' bits (8, 16, 32 or 64; 0 defaults to
// NativeWordWidth). The words slice is always backed by uint64 for
// simplicity; narrower widths only change the size of the window that
// AccessWord hands back, not the underlying Go representation.
func New(length int, wordWidth uint) (*BitStorage, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative bit length %d", internal.ErrMalformedInput, length)
	}

	if wordWidth == 0 {
		wordWidth = NativeWordWidth
	}

	switch wordWidth {
	case 8, 16, 32, 64:
	default:
		return nil, fmt.Errorf("%w: unsupported word width %d", internal.ErrMalformedInput, wordWidth)
	}

	n := internal.CeilDiv(length, int(wordWidth))

	if n == 0 {
		n = 1
	}

	return &BitStorage{
		words:     make([]uint64, n),
		length:    length,
		wordWidth: wordWidth,
	}, nil
}

// NewFromString parses an ASCII string of '0'/'1' characters into a new
// BitStorage using the native word width. Bit i takes the value of s[i].
func NewFromString(s string) (*BitStorage, error) {
	b, err := New(len(s), NativeWordWidth)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b.set(i)
		default:
			return nil, fmt.Errorf("%w: byte %q at position %d is not '0' or '1'", internal.ErrMalformedInput, s[i], i)
		}
	}

	return b, nil
}

// NewFromWords wraps a pre-packed word buffer (native width) and a bit
// length. The caller retains no further access to words; BitStorage takes
// ownership of the slice.
func NewFromWords(words []uint64, length int) (*BitStorage, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative bit length %d", internal.ErrMalformedInput, length)
	}

	want := internal.CeilDiv(length, NativeWordWidth)
	if want == 0 {
		want = 1
	}

	if len(words) != want {
		return nil, fmt.Errorf("%w: expected %d words for %d bits, got %d", internal.ErrMalformedInput, want, length, len(words))
	}

	return &BitStorage{words: words, length: length, wordWidth: NativeWordWidth}, nil
}

func (b *BitStorage) set(i int) {
	w := i / int(b.wordWidth)
	p := uint(i % int(b.wordWidth))
	b.words[w] |= uint64(1) << p
}

// Len returns n, the number of valid bits.
func (b *BitStorage) Len() int {
	return b.length
}

// WordWidth returns the configured word width W.
func (b *BitStorage) WordWidth() uint {
	return b.wordWidth
}

// Access returns the bit at position i.
func (b *BitStorage) Access(i int) (uint, error) {
	if i < 0 || i >= b.length {
		return 0, fmt.Errorf("%w: access(%d) for length %d", internal.ErrOutOfRange, i, b.length)
	}

	w := i / int(b.wordWidth)
	p := uint(i % int(b.wordWidth))

	return uint((b.words[w] >> p) & 1), nil
}

// AccessWord returns the W-bit window whose LSB is bit i. Bits at
// positions >= length are unspecified; callers that might read across the
// end of the vector must mask before interpreting the result. i need not
// be word-aligned, but must be < length (or == length, returning a window
// with no meaningful bits, to let callers probe one-past-the-end safely).
func (b *BitStorage) AccessWord(i int) uint64 {
	W := int(b.wordWidth)
	w := i / W
	s := uint(i % W)
	mask := internal.WordMask(b.wordWidth)

	if w >= len(b.words) {
		return 0
	}

	if s == 0 {
		return b.words[w] & mask
	}

	lo := b.words[w] >> s

	var hi uint64
	if w+1 < len(b.words) {
		hi = (b.words[w+1] << (uint(W) - s)) & mask
	}

	return (lo | hi) & mask
}

// PopCount returns the number of 1-bits in [lo, hi).
func (b *BitStorage) PopCount(lo, hi int) (int, error) {
	if lo < 0 || hi > b.length || lo > hi {
		return 0, fmt.Errorf("%w: popcount(%d,%d) for length %d", internal.ErrOutOfRange, lo, hi, b.length)
	}

	W := int(b.wordWidth)
	count := 0

	for i := lo; i < hi; i += W {
		window := b.AccessWord(i)

		if remaining := hi - i; remaining < W {
			window &= internal.WordMask(uint(remaining))
		}

		count += bits.OnesCount64(window)
	}

	return count, nil
}

// SizeBytes returns the resident byte cost of the packed word array plus a
// small fixed header.
func (b *BitStorage) SizeBytes() int64 {
	const header = 24 // length, wordWidth, slice header rounding
	return int64(len(b.words))*int64(b.wordWidth)/8 + header
}
