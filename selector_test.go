package gapset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_SparseToDense(t *testing.T) {
	b := New[U1024]()
	low, _ := thresholds(1024)

	for p := range low {
		b.Set(p * 3)
		require.Equal(t, Sparse, b.Representation(), "after %d sets", p+1)
	}
	b.Set(1000)
	assert.Equal(t, Dense, b.Representation())
	assert.Equal(t, low+1, b.Count())
}

func TestSelector_DenseSampling(t *testing.T) {
	b := New[U1024]()
	for p := range 100 {
		b.Set(p)
	}
	require.Equal(t, Dense, b.Representation())

	// The density is re-checked on every 32nd mutation only, so the set stays
	// Dense for a while after dropping below the threshold.
	for p := range 100 {
		b.Reset(p)
	}
	assert.Equal(t, Sparse, b.Representation())
	assert.Equal(t, 0, b.Count())
}

func TestSelector_DenseToFullAndBack(t *testing.T) {
	b := New[U1024]()
	for p := range 1024 {
		b.Set(p)
	}
	assert.Equal(t, Full, b.Representation())
	assert.Equal(t, 1024, b.Count())
	assert.Equal(t, 0, b.Stats().Stored)

	low, _ := thresholds(1024)
	for p := range low {
		b.Reset(p)
		require.Equal(t, Full, b.Representation())
	}
	b.Reset(low)
	assert.Equal(t, Dense, b.Representation())
	assert.Equal(t, 1024-low-1, b.Count())
}

func TestSelector_SamplingIsPerInstance(t *testing.T) {
	a := inRep[U1024](t, Dense, 1, 2, 3)
	b := inRep[U1024](t, Dense, 1, 2, 3)
	a.checks, b.checks = 0, 0

	for range 31 {
		a.Set(1)
	}
	assert.Equal(t, Sparse, a.Representation())
	assert.Equal(t, Dense, b.Representation())

	for range 30 {
		b.Set(1)
	}
	assert.Equal(t, Dense, b.Representation())
	b.Set(1)
	assert.Equal(t, Sparse, b.Representation())
}

func TestSelector_Conversions(t *testing.T) {
	want := []int{0, 9, 10, 11, 500, 1023}
	for _, from := range allReps {
		for _, to := range allReps {
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				b := inRep[U1024](t, from, want...)
				b.force(to)
				require.Equal(t, to, b.Representation())
				assertBits(t, want, b)
			})
		}
	}
}

func TestSelector_ConvertSentinels(t *testing.T) {
	all := make([]int, 64)
	for i := range all {
		all[i] = i
	}
	for _, to := range allReps {
		t.Run(to.String(), func(t *testing.T) {
			b := saturatedSparse[U64]()
			b.force(to)
			assertBits(t, all, b)

			e := saturatedFull[U64]()
			e.force(to)
			assertBits(t, nil, e)
		})
	}
}
