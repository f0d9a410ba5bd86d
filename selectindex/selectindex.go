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

// Package selectindex implements the three-level select index: variable
// span super-blocks classified sparse/dense, each dense one recursing once
// more into blocks, finished off by a word-level select. Two independent
// instances exist per Vector, one per target bit value; they share no
// storage.
package selectindex

import (
	"fmt"
	"math/bits"

	"github.com/succinct-go/bitvector/internal"
	"github.com/succinct-go/bitvector/storage"
)

type blockKind uint8

const (
	blockSparse blockKind = iota
	blockDense
)

// block is a block within a dense super-block: a tagged union of an
// explicit position table (sparse) or a single starting offset (dense),
// resolved at query time via a discriminant check rather than virtual
// dispatch.
type block struct {
	kind      blockKind
	positions []int // sparse: global bit-indices of the block's occurrences
	offset    int   // dense: global bit-index of the block's first bit
}

type superKind uint8

const (
	superSparse superKind = iota
	superDense
)

// superBlock is, symmetrically, either an explicit position table or a
// sequence of blocks.
type superBlock struct {
	kind      superKind
	positions []int
	blocks    []block
}

// Index is the select index for one target bit value.
type Index struct {
	bit     uint
	zSuper  int
	lSuper  int
	lBlock  int
	zBlock  int
	supers  []superBlock
	total   int
}

// Build constructs the select index for occurrences of bit (0 or 1) in bs,
// in a single pass.
func Build(bs *storage.BitStorage, bit uint) (*Index, error) {
	if bit != 0 && bit != 1 {
		return nil, fmt.Errorf("%w: select target bit must be 0 or 1, got %d", internal.ErrMalformedInput, bit)
	}

	n := bs.Len()
	L := internal.FloorLog2(n)

	zSuper := internal.Max(1, L*L)
	lSuper := internal.Max(1, zSuper*zSuper)
	lBlock := internal.Max(1, L)
	zBlock := internal.Max(1, internal.ISqrt(lBlock))

	idx := &Index{
		bit:    bit,
		zSuper: zSuper,
		lSuper: lSuper,
		lBlock: lBlock,
		zBlock: zBlock,
	}

	superStart := 0
	counter := 0
	var pending []int

	for i := 0; i < n; i++ {
		v, err := bs.Access(i)
		if err != nil {
			return nil, err
		}

		if v == bit {
			counter++
			pending = append(pending, i)
		}

		if counter == zSuper || i == n-1 {
			end := i + 1
			sb := buildSuperBlock(superStart, end, pending, lSuper, lBlock, zBlock)
			idx.supers = append(idx.supers, sb)
			idx.total += counter

			counter = 0
			pending = pending[:0]
			superStart = end
		}
	}

	return idx, nil
}

func buildSuperBlock(start, end int, occurrences []int, lSuper, lBlock, zBlock int) superBlock {
	span := end - start

	if span >= lSuper {
		return superBlock{kind: superSparse, positions: shrink(occurrences)}
	}

	var blocks []block
	blockStart := start

	for i := 0; i < len(occurrences); i += zBlock {
		j := internal.Min(i+zBlock, len(occurrences))
		chunk := occurrences[i:j]

		var blockEnd int
		if j == len(occurrences) {
			blockEnd = end
		} else {
			blockEnd = chunk[len(chunk)-1] + 1
		}

		if blockEnd-blockStart >= lBlock {
			blocks = append(blocks, block{kind: blockSparse, positions: shrink(chunk)})
		} else {
			blocks = append(blocks, block{kind: blockDense, offset: blockStart})
		}

		blockStart = blockEnd
	}

	return superBlock{kind: superDense, blocks: blocks}
}

// shrink copies s into an exactly-sized backing array, matching the
// measured-faster "shrink after building" policy over pre-counting exact
// sizes up front.
func shrink(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Select returns the global bit position of the (j+1)-th occurrence of the
// target bit (j is 0-based; the root package's public API is 1-based and
// subtracts one before calling in).
func (idx *Index) Select(bs *storage.BitStorage, j int) (int, error) {
	if j < 0 || j >= idx.total {
		return 0, fmt.Errorf("%w: select(%d) for %d occurrences", internal.ErrOutOfRange, j, idx.total)
	}

	s := j / idx.zSuper
	sb := idx.supers[s]
	local := j % idx.zSuper

	if sb.kind == superSparse {
		return sb.positions[local], nil
	}

	k := local / idx.zBlock
	r := local % idx.zBlock
	blk := sb.blocks[k]

	if blk.kind == blockSparse {
		return blk.positions[r], nil
	}

	window := bs.AccessWord(blk.offset)
	p, err := wordSelect(idx.bit, window, r, bs.WordWidth())
	if err != nil {
		return 0, fmt.Errorf("select: dense block at offset %d: %w", blk.offset, err)
	}

	return blk.offset + p, nil
}

// Total returns m, the number of occurrences of the target bit.
func (idx *Index) Total() int {
	return idx.total
}

// SizeBytes returns the resident byte cost of the index, including the
// shared word-select lookup tables (counted once, see select_table.go).
func (idx *Index) SizeBytes() int64 {
	const (
		superHeader = 8  // tag + slice header rounding for the variant union
		blockHeader = 8
		tableBytes  = 2 * 256 * 8 // two 256x8 int8 tables
	)

	var total int64 = tableBytes

	for _, sb := range idx.supers {
		total += superHeader

		switch sb.kind {
		case superSparse:
			total += int64(len(sb.positions)) * 8
		case superDense:
			for _, blk := range sb.blocks {
				total += blockHeader

				if blk.kind == blockSparse {
					total += int64(len(blk.positions)) * 8
				} else {
					total += 8 // offset only
				}
			}
		}
	}

	return total
}

// wordSelect returns the bit position within a width-bit word of the
// (r+1)-th bit equal to bit (0-based r), scanning byte-sized chunks
// against the precomputed tables in select_table.go.
func wordSelect(bit uint, word uint64, r int, width uint) (int, error) {
	table := &oneSelect
	if bit == 0 {
		table = &zeroSelect
	}

	remaining := r
	chunks := int(width) / 8

	for c := 0; c < chunks; c++ {
		b := byte(word >> uint(c*8))

		var cnt int
		if bit == 1 {
			cnt = bits.OnesCount8(b)
		} else {
			cnt = 8 - bits.OnesCount8(b)
		}

		if remaining < cnt {
			return c*8 + int(table[b][remaining]), nil
		}

		remaining -= cnt
	}

	return 0, fmt.Errorf("%w: rank %d has no match within word", internal.ErrOutOfRange, r)
}
