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

package storage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromStringRejectsBadChars(t *testing.T) {
	_, err := NewFromString("0102")
	require.Error(t, err)
}

func TestAccessMatchesSourceString(t *testing.T) {
	s := "0100100010101"
	b, err := NewFromString(s)
	require.NoError(t, err)
	require.Equal(t, len(s), b.Len())

	for i, c := range s {
		want := uint(0)
		if c == '1' {
			want = 1
		}

		got, err := b.Access(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestAccessOutOfRange(t *testing.T) {
	b, err := NewFromString("101")
	require.NoError(t, err)

	_, err = b.Access(3)
	require.Error(t, err)

	_, err = b.Access(-1)
	require.Error(t, err)
}

func TestPopCountMatchesRankTotal(t *testing.T) {
	b, err := NewFromString("0100100010101")
	require.NoError(t, err)

	count, err := b.PopCount(0, b.Len())
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestAccessWordIsBitwiseORofShiftedAccess(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	buf := make([]byte, 300)

	for i := range buf {
		if rnd.Intn(2) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	b, err := NewFromString(string(buf))
	require.NoError(t, err)

	W := int(b.WordWidth())

	for i := 0; i < b.Len(); i++ {
		window := b.AccessWord(i)

		var want uint64
		for k := 0; k < W && i+k < b.Len(); k++ {
			bit, err := b.Access(i + k)
			require.NoError(t, err)
			want |= uint64(bit) << uint(k)
		}

		mask := (uint64(1) << uint(minInt(W, b.Len()-i))) - 1
		require.Equal(t, want, window&mask, "mismatch at i=%d", i)
	}
}

func TestNarrowerWordWidths(t *testing.T) {
	for _, w := range []uint{8, 16, 32, 64} {
		b, err := New(20, w)
		require.NoError(t, err)
		require.Equal(t, w, b.WordWidth())
		require.Equal(t, 20, b.Len())

		_, err = b.Access(19)
		require.NoError(t, err)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
