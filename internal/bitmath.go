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

// Package internal gathers the small integer-arithmetic helpers shared by
// the storage, rank and selectindex packages. None of this is exported
// outside the module, mirroring the layout of the indexing code it supports.
package internal

import "math/bits"

// FloorLog2 returns floor(log2(x)) using the integer-logarithm form (as
// opposed to truncating a floating point log2), so that block and
// super-block sizing is reproducible across platforms. Returns 0 for x<=0.
func FloorLog2(x int) int {
	if x <= 0 {
		return 0
	}

	return bits.Len64(uint64(x)) - 1
}

// ISqrt returns floor(sqrt(x)) for x>=0.
func ISqrt(x int) int {
	if x <= 0 {
		return 0
	}

	r := int(bits.Len64(uint64(x))) // cheap upper bound to seed Newton's method
	s := 1 << ((r + 1) / 2)

	for {
		t := (s + x/s) / 2

		if t >= s {
			return s
		}

		s = t
	}
}

// CeilDiv returns ceil(a/b) for a>=0, b>0.
func CeilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}

	return (a + b - 1) / b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// WordMask returns a mask with the low 'width' bits set. width must be in
// [1,64].
func WordMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}
