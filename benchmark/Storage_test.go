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

// Package benchmark holds the go test -bench micro-benchmarks for the
// succinct index structures, one file per subsystem with Benchmark*
// functions only.
package benchmark

import (
	"math/rand"
	"testing"

	"github.com/succinct-go/bitvector/storage"
)

func randomBitString(n int, seed int64) string {
	rnd := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)

	for i := range buf {
		if rnd.Intn(2) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf)
}

func BenchmarkBitStorageAccess(b *testing.B) {
	bs, err := storage.NewFromString(randomBitString(1 << 20, 1))
	if err != nil {
		b.Fatal(err)
	}

	n := bs.Len()
	iter := b.N

	for i := 0; i < iter; i++ {
		if _, err := bs.Access(i % n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBitStorageAccessWord(b *testing.B) {
	bs, err := storage.NewFromString(randomBitString(1 << 20, 2))
	if err != nil {
		b.Fatal(err)
	}

	n := bs.Len()
	iter := b.N

	for i := 0; i < iter; i++ {
		bs.AccessWord(i % n)
	}
}

func BenchmarkBitStoragePopCount(b *testing.B) {
	bs, err := storage.NewFromString(randomBitString(1<<20, 3))
	if err != nil {
		b.Fatal(err)
	}

	n := bs.Len()
	iter := b.N

	for i := 0; i < iter; i++ {
		lo := i % (n - 128)
		if _, err := bs.PopCount(lo, lo+128); err != nil {
			b.Fatal(err)
		}
	}
}
