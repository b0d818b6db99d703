package gapset

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gapset/testutil"
)

func TestEqual_AcrossRepresentations(t *testing.T) {
	rng := testutil.NewRNG(3)
	for _, density := range []float64{0, 0.01, 0.5, 0.99, 1} {
		m := testutil.ModelFromMask(rng.Mask(1024, density))
		for _, ra := range allReps {
			for _, rb := range allReps {
				a, b := setOf[U1024](m, ra), setOf[U1024](m, rb)
				assert.True(t, a.Equal(b), "%v vs %v at %.2f", ra, rb, density)
				assert.True(t, b.Equal(a), "%v vs %v at %.2f", rb, ra, density)

				if density > 0 && density < 1 {
					// Move one set bit so counts agree but contents differ.
					p := m.Positions()[0]
					q := p + 1
					for q < 1024 && m.Test(q) {
						q++
					}
					if q < 1024 {
						b.Reset(p).Set(q)
						assert.False(t, a.Equal(b), "%v vs %v at %.2f", ra, rb, density)
					}
				}
				b.FlipAll()
				if density != 0.5 {
					assert.False(t, a.Equal(b))
				}
			}
		}
	}
}

func TestEqual_Sentinels(t *testing.T) {
	all := New[U128]().SetAll()
	assert.True(t, saturatedSparse[U128]().Equal(all))
	assert.True(t, all.Equal(saturatedSparse[U128]()))
	assert.True(t, saturatedFull[U128]().Equal(New[U128]()))
	assert.True(t, saturatedFull[U128]().Equal(inRep[U128](t, Dense)))
	assert.False(t, saturatedFull[U128]().Equal(saturatedSparse[U128]()))

	a := New[U128]()
	assert.True(t, a.Equal(a))
}

func TestEqualBitSet(t *testing.T) {
	for _, rep := range allReps {
		b := inRep[U256](t, rep, 1, 128, 255)

		bs := bitset.New(256)
		bs.Set(1).Set(128).Set(255)
		assert.True(t, b.EqualBitSet(bs), rep.String())

		bs.Clear(128)
		assert.False(t, b.EqualBitSet(bs), rep.String())

		bs.Set(128).Set(300)
		assert.False(t, b.EqualBitSet(bs), rep.String())
	}
	assert.True(t, New[U64]().EqualBitSet(nil))
	assert.False(t, Of[U64](3).EqualBitSet(nil))
}
