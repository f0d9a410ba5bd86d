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

package bitvector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedScenarioAPublicAPI(t *testing.T) {
	v, err := Build("0100100010101")
	require.NoError(t, err)

	a, err := v.Access(3)
	require.NoError(t, err)
	require.Equal(t, uint(0), a)

	r, err := v.Rank(1, 13)
	require.NoError(t, err)
	require.Equal(t, 5, r)

	r, err = v.Rank(0, 7)
	require.NoError(t, err)
	require.Equal(t, 5, r)

	p, err := v.Select(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, p)

	p, err = v.Select(1, 5)
	require.NoError(t, err)
	require.Equal(t, 12, p)

	p, err = v.Select(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, p)
}

func TestMalformedInput(t *testing.T) {
	_, err := Build("01012x01")
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestRankAtEndEqualsTotal(t *testing.T) {
	v, err := Build("1111111111")
	require.NoError(t, err)

	r, err := v.Rank(1, v.Len())
	require.NoError(t, err)
	require.Equal(t, 10, r)
}

func TestBuildWithListenerSeesStartAndEnd(t *testing.T) {
	var types []int
	rec := listenerFunc(func(evt *Event) { types = append(types, evt.Type()) })

	_, err := Build("10101", rec)
	require.NoError(t, err)

	require.Equal(t, []int{EvtBuildStart, EvtBuildEnd}, types)
}

func TestPropertyAccessRankSelectRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2026))
	buf := make([]byte, 4096)
	for i := range buf {
		if rnd.Intn(2) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	v, err := Build(string(buf))
	require.NoError(t, err)

	for i := 0; i < v.Len(); i++ {
		a, err := v.Access(i)
		require.NoError(t, err)

		r1, err := v.Rank(uint(a), i+1)
		require.NoError(t, err)
		r0, err := v.Rank(uint(a), i)
		require.NoError(t, err)
		require.Equal(t, 1, r1-r0)
	}

	for _, bit := range []uint{0, 1} {
		total, err := v.Rank(bit, v.Len())
		require.NoError(t, err)

		for k := 1; k <= total; k++ {
			p, err := v.Select(bit, k)
			require.NoError(t, err)

			a, err := v.Access(p)
			require.NoError(t, err)
			require.Equal(t, bit, a)
		}
	}
}

type listenerFunc func(evt *Event)

func (f listenerFunc) ProcessEvent(evt *Event) { f(evt) }
