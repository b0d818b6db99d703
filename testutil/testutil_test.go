package testutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	rng := NewRNG(4711)

	ps := rng.Positions(1000, 0.1)

	assert.True(t, sort.IntsAreSorted(ps))
	assert.InDelta(t, 100, len(ps), 50)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 1000)
	}
	assert.Empty(t, rng.Positions(100, 0))
	assert.Len(t, rng.Positions(100, 1), 100)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Mask(64, 0.5)

	rng.Reset()
	v2 := rng.Mask(64, 0.5)

	assert.Equal(t, v1, v2)
}

func TestClusters(t *testing.T) {
	rng := NewRNG(42)

	mask := rng.Clusters(256, 4, 8)

	assert.Len(t, mask, 256)
	c := ModelFromMask(mask).Count()
	assert.Greater(t, c, 0)
	assert.LessOrEqual(t, c, 32)
}

func TestModel(t *testing.T) {
	m := ModelOf(8, 0, 1)
	m.ShiftLeft(3)
	assert.Equal(t, []int{3, 4}, m.Positions())
	assert.Equal(t, "00011000", m.String())

	m.ShiftRight(4)
	assert.Equal(t, []int{0}, m.Positions())

	m.FlipAll()
	assert.Equal(t, 7, m.Count())

	o := ModelOf(8, 0, 1, 2)
	m.And(o)
	assert.Equal(t, []int{1, 2}, m.Positions())
	m.Xor(o)
	assert.Equal(t, []int{0}, m.Positions())
	m.Or(ModelOf(8, 7))
	m.AndNot(ModelOf(8, 0))
	assert.True(t, m.Equal(ModelOf(8, 7)))
}
