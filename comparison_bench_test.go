package gapset

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gapset/testutil"
)

// Comparative benchmarks: Bitset vs bits-and-blooms vs Roaring Bitmap
// Run with: go test -bench=Comparison -benchmem .

// ==============================================================================
// Single-bit updates
// ==============================================================================

func BenchmarkComparison_SetReset_Sparse(b *testing.B) {
	s := Of[U4096](1, 100, 2000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := (i * 977) % 4096
		s.Set(p).Reset(p)
	}
}

func BenchmarkComparison_SetReset_Dense(b *testing.B) {
	s := setOf[U4096](testutil.ModelFromMask(testutil.NewRNG(1).Mask(4096, 0.5)), Dense)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := (i * 977) % 4096
		s.Flip(p).Flip(p)
	}
}

func BenchmarkComparison_SetReset_BitSet(b *testing.B) {
	s := bitset.New(4096)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := uint((i * 977) % 4096)
		s.Set(p).Clear(p)
	}
}

func BenchmarkComparison_SetReset_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := uint32((i * 977) % 4096)
		rb.Add(p)
		rb.Remove(p)
	}
}

// ==============================================================================
// AND operation comparison
// ==============================================================================

func benchSets(density float64) (*testutil.Model, *testutil.Model) {
	rng := testutil.NewRNG(2)
	return testutil.ModelFromMask(rng.Mask(4096, density)),
		testutil.ModelFromMask(rng.Mask(4096, density))
}

func BenchmarkComparison_And_Bitset(b *testing.B) {
	cases := []struct {
		density float64
		rep     Representation
	}{
		{0.001, Sparse},
		{0.5, Dense},
		{0.999, Full},
	}
	for _, tc := range cases {
		ma, mb := benchSets(tc.density)
		x, y := setOf[U4096](ma, tc.rep), setOf[U4096](mb, tc.rep)
		b.Run(tc.rep.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = x.Intersection(y)
			}
		})
	}
}

func BenchmarkComparison_And_BitSet(b *testing.B) {
	ma, mb := benchSets(0.5)
	x, y := setOf[U4096](ma, Dense).ToBitSet(), setOf[U4096](mb, Dense).ToBitSet()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.Intersection(y)
	}
}

func BenchmarkComparison_And_Roaring(b *testing.B) {
	ma, mb := benchSets(0.5)
	x, y := setOf[U4096](ma, Dense).ToRoaring(), setOf[U4096](mb, Dense).ToRoaring()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = roaring.And(x, y)
	}
}

// ==============================================================================
// Memory footprint
// ==============================================================================

func BenchmarkComparison_HeapBytes(b *testing.B) {
	for _, density := range []float64{0.001, 0.5, 0.999} {
		m, _ := benchSets(density)
		b.Run(fmt.Sprintf("density=%g", density), func(b *testing.B) {
			var s *Bitset[U4096]
			for i := 0; i < b.N; i++ {
				s = New[U4096]()
				for _, p := range m.Positions() {
					s.Set(p)
				}
			}
			b.ReportMetric(float64(s.Stats().HeapBytes), "heap-bytes")
			b.ReportMetric(float64(s.ToBitSet().BinaryStorageSize()), "bitset-bytes")
			b.ReportMetric(float64(s.ToRoaring().GetSizeInBytes()), "roaring-bytes")
		})
	}
}
