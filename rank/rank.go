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

// Package rank implements the two-level rank index: a super-block counter
// refined by a block counter, finished off by a word-level popcount of the
// remainder. Built once over an immutable storage.BitStorage, it answers
// rank queries in O(1).
package rank

import (
	"fmt"
	"math/bits"

	"github.com/succinct-go/bitvector/internal"
	"github.com/succinct-go/bitvector/storage"
)

// Index is the two-level rank structure for a single BitStorage. It holds
// no reference back to the storage; every query takes it explicitly,
// which keeps ownership simple.
type Index struct {
	superBlocks []uint64 // cumulative 1-count through the end of super-block s
	blocks      []uint16 // cumulative 1-count, from the enclosing super-block start, through the end of block k
	blockSize   int      // B
	superSize   int      // S = B*B
	n           int
}

// Build constructs a rank index over bs in a single pass.
func Build(bs *storage.BitStorage) *Index {
	n := bs.Len()

	B := internal.Max(1, internal.FloorLog2(n)/2)
	S := B * B

	numSuper := internal.CeilDiv(n, S)
	if numSuper == 0 {
		numSuper = 1
	}

	numBlocks := internal.CeilDiv(n, B)

	superBlocks := make([]uint64, numSuper)
	blocks := make([]uint16, numBlocks)

	blockIdx := 0
	cum := 0

	for s := 0; s < numSuper; s++ {
		superStart := s * S
		superEnd := internal.Min((s+1)*S, n)
		localCum := 0

		for blockStart := superStart; blockStart < superEnd; blockStart += B {
			blockEnd := internal.Min(blockStart+B, superEnd)

			// PopCount cannot fail here: [blockStart,blockEnd) is always
			// within [0,n) by construction above.
			c, _ := bs.PopCount(blockStart, blockEnd)
			localCum += c
			blocks[blockIdx] = uint16(localCum)
			blockIdx++
		}

		cum += localCum
		superBlocks[s] = uint64(cum)
	}

	return &Index{
		superBlocks: superBlocks,
		blocks:      blocks,
		blockSize:   B,
		superSize:   S,
		n:           n,
	}
}

// Rank1 returns the number of 1-bits in bs[0,i).
func (idx *Index) Rank1(bs *storage.BitStorage, i int) (int, error) {
	if i < 0 || i > idx.n {
		return 0, fmt.Errorf("%w: rank(%d) for length %d", internal.ErrOutOfRange, i, idx.n)
	}

	if i == 0 {
		return 0, nil
	}

	B, S := idx.blockSize, idx.superSize

	total := 0

	superIdx := i / S
	if superIdx > 0 {
		total += int(idx.superBlocks[superIdx-1])
	}

	blockIdx := i / B
	if blockIdx%B != 0 {
		total += int(idx.blocks[blockIdx-1])
	}

	blockStart := blockIdx * B
	if rem := i - blockStart; rem > 0 {
		window := bs.AccessWord(blockStart)
		total += bits.OnesCount64(window & internal.WordMask(uint(rem)))
	}

	return total, nil
}

// Rank0 returns the number of 0-bits in bs[0,i), computed as i-Rank1(i).
func (idx *Index) Rank0(bs *storage.BitStorage, i int) (int, error) {
	r1, err := idx.Rank1(bs, i)
	if err != nil {
		return 0, err
	}

	return i - r1, nil
}

// Total1 returns the total number of 1-bits in the vector.
func (idx *Index) Total1() int {
	if len(idx.superBlocks) == 0 {
		return 0
	}

	return int(idx.superBlocks[len(idx.superBlocks)-1])
}

// SizeBytes returns the resident byte cost of the index tables.
func (idx *Index) SizeBytes() int64 {
	const header = 32
	return int64(len(idx.superBlocks))*8 + int64(len(idx.blocks))*2 + header
}
