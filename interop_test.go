package gapset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gapset/testutil"
)

func TestInterop_BitSetRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(11)
	for _, density := range []float64{0, 0.01, 0.5, 0.99, 1} {
		m := testutil.ModelFromMask(rng.Mask(1024, density))
		for _, rep := range allReps {
			b := setOf[U1024](m, rep)
			bs := b.ToBitSet()
			assert.Equal(t, uint(m.Count()), bs.Count())
			assert.True(t, b.EqualBitSet(bs))

			got, err := FromBitSet[U1024](bs)
			require.NoError(t, err)
			assertModel(t, m, got)
		}
	}
}

func TestInterop_ToBitSetIsACopy(t *testing.T) {
	b := inRep[U256](t, Dense, 1, 2, 3)
	bs := b.ToBitSet()
	bs.Set(200)
	assertBits(t, []int{1, 2, 3}, b)
}

func TestInterop_FromBitSetChoosesRepresentation(t *testing.T) {
	bs := bitset.New(1024)
	bs.Set(5)
	b, err := FromBitSet[U1024](bs)
	require.NoError(t, err)
	assert.Equal(t, Sparse, b.Representation())

	bs.FlipRange(0, 1024)
	b, err = FromBitSet[U1024](bs)
	require.NoError(t, err)
	assert.Equal(t, Full, b.Representation())
	assert.Equal(t, 1, b.Stats().Stored)

	bs.FlipRange(0, 512)
	b, err = FromBitSet[U1024](bs)
	require.NoError(t, err)
	assert.Equal(t, Dense, b.Representation())

	b, err = FromBitSet[U1024](nil)
	require.NoError(t, err)
	assert.True(t, b.None())
}

func TestInterop_FromBitSetOutOfRange(t *testing.T) {
	bs := bitset.New(128)
	bs.Set(3).Set(70)
	_, err := FromBitSet[U64](bs)

	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 70, re.Pos)
	assert.Equal(t, 64, re.Size)
}

func TestInterop_RoaringRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(12)
	masks := [][]bool{
		rng.Mask(4096, 0),
		rng.Mask(4096, 0.005),
		rng.Mask(4096, 0.5),
		rng.Clusters(4096, 4, 600),
		rng.Mask(4096, 1),
	}
	for _, mask := range masks {
		m := testutil.ModelFromMask(mask)
		for _, rep := range allReps {
			b := setOf[U4096](m, rep)
			rb := b.ToRoaring()
			assert.Equal(t, uint64(m.Count()), rb.GetCardinality())

			got, err := FromRoaring[U4096](rb)
			require.NoError(t, err)
			assertModel(t, m, got)
		}
	}

	for _, b := range []*Bitset[U64]{saturatedSparse[U64](), saturatedFull[U64]()} {
		rb := b.ToRoaring()
		assert.Equal(t, uint64(b.Count()), rb.GetCardinality())
	}
}

func TestInterop_FromRoaringOutOfRange(t *testing.T) {
	_, err := FromRoaring[U256](roaring.BitmapOf(1, 256))

	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 256, re.Pos)

	b, err := FromRoaring[U256](nil)
	require.NoError(t, err)
	assert.True(t, b.None())
}
