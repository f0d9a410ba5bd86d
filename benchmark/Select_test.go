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

package benchmark

import (
	"testing"

	"github.com/succinct-go/bitvector/selectindex"
	"github.com/succinct-go/bitvector/storage"
)

func BenchmarkSelectBuild(b *testing.B) {
	s := randomBitString(1 << 20, 20)

	iter := b.N

	for i := 0; i < iter; i++ {
		bs, err := storage.NewFromString(s)
		if err != nil {
			b.Fatal(err)
		}

		if _, err := selectindex.Build(bs, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelect1(b *testing.B) {
	bs, err := storage.NewFromString(randomBitString(1<<20, 21))
	if err != nil {
		b.Fatal(err)
	}

	idx, err := selectindex.Build(bs, 1)
	if err != nil {
		b.Fatal(err)
	}

	total := idx.Total()
	iter := b.N

	for i := 0; i < iter; i++ {
		if _, err := idx.Select(bs, i%total); err != nil {
			b.Fatal(err)
		}
	}
}
