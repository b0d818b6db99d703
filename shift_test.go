package gapset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gapset/testutil"
)

func TestShift_Scenario(t *testing.T) {
	for _, rep := range allReps {
		t.Run(rep.String(), func(t *testing.T) {
			b := inRep[U8](t, rep, 0, 1)
			assertBits(t, []int{3, 4}, b.ShiftLeft(3))
		})
	}
}

func TestShift_AgainstModel(t *testing.T) {
	rng := testutil.NewRNG(7)
	masks := map[string][]bool{
		"empty":    make([]bool, 1024),
		"sparse":   rng.Mask(1024, 0.02),
		"dense":    rng.Mask(1024, 0.5),
		"full":     rng.Mask(1024, 0.98),
		"all":      rng.Mask(1024, 1),
		"clusters": rng.Clusters(1024, 5, 100),
	}
	shifts := []int{0, 1, 7, 63, 64, 65, 200, 1023, 1024, 5000}

	for name, mask := range masks {
		m := testutil.ModelFromMask(mask)
		t.Run(name, func(t *testing.T) {
			for _, rep := range allReps {
				for _, k := range shifts {
					left := m.Clone()
					left.ShiftLeft(min(k, 1024))
					got := setOf[U1024](m, rep).ShiftLeft(k)
					assertModel(t, left, got)

					right := m.Clone()
					right.ShiftRight(min(k, 1024))
					got = setOf[U1024](m, rep).ShiftRight(k)
					assertModel(t, right, got)
				}
			}
		})
	}
}

func TestShift_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(99)
	m := testutil.ModelFromMask(rng.Mask(512, 0.4))

	for _, rep := range allReps {
		for _, k := range []int{1, 10, 100, 511} {
			b := setOf[U512](m, rep)
			got := b.Lsh(k).Rsh(k)

			for p := range 512 {
				want := p < 512-k && m.Test(p)
				assert.Equal(t, want, got.Test(p), "%v k=%d bit %d", rep, k, p)
			}
			assertModel(t, m, b)

			got = b.Rsh(k).Lsh(k)
			for p := range 512 {
				want := p >= k && m.Test(p)
				assert.Equal(t, want, got.Test(p), "%v k=%d bit %d", rep, k, p)
			}
		}
	}
}

func TestShift_Sentinels(t *testing.T) {
	b := saturatedSparse[U256]().ShiftLeft(10)
	assert.Equal(t, 246, b.Count())
	assert.False(t, b.Test(9))
	assert.True(t, b.Test(10))

	b = saturatedSparse[U256]().ShiftRight(3)
	assert.Equal(t, 253, b.Count())
	assert.True(t, b.Test(252))
	assert.False(t, b.Test(253))

	b = saturatedFull[U256]().ShiftLeft(5)
	assert.True(t, b.None())
}

func TestShift_FullStaysGapEncodedForShortShifts(t *testing.T) {
	b := New[U4096]().SetAll()
	b.Reset(100)
	b.ShiftLeft(2)
	assert.Equal(t, Full, b.Representation())
	assertBits(t, nil, b.Complement().AndNot(Of[U4096](0, 1, 102)))
	assert.Equal(t, 4096-3, b.Count())

	low, _ := thresholds(4096)
	b.ShiftRight(low + 1)
	assert.Equal(t, 4096-(low+1), b.Count())
}

func TestShift_Negative(t *testing.T) {
	b := New[U64]()
	assert.Panics(t, func() { b.ShiftLeft(-1) })
	assert.Panics(t, func() { b.ShiftRight(-1) })
}
