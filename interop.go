package gapset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gapset/internal/gaps"
)

// build creates a set from count strictly increasing positions below n,
// choosing the representation the selector would settle on.
func build[U Universe](n, count int, positions iter.Seq[int]) *Bitset[U] {
	low, high := thresholds(n)
	b := &Bitset[U]{}

	switch {
	case count == n:
		b.rep = Full
	case count <= low:
		out := gaps.NewBuilder(&b.members)
		for p := range positions {
			out.Add(p)
		}
	case count >= high:
		b.rep = Full
		out := gaps.NewBuilder(&b.members)
		next := 0
		for p := range positions {
			out.AddRange(next, p)
			next = p + 1
		}
		out.AddRange(next, n)
	default:
		b.rep = Dense
		b.dense = newDense(n)
		for p := range positions {
			b.dense.Set(uint(p))
		}
	}
	return b
}

// ToBitSet returns the set as an N-bit bits-and-blooms bitset.
func (b *Bitset[U]) ToBitSet() *bitset.BitSet {
	n := universeBits[U]()
	switch b.rep {
	case Dense:
		return b.dense.Clone()
	case Full:
		out := newDense(n)
		if !b.saturated {
			out.FlipRange(0, uint(n))
			b.members.ForEach(func(p int) bool {
				out.Clear(uint(p))
				return true
			})
		}
		return out
	default:
		out := newDense(n)
		for p := range b.All() {
			out.Set(uint(p))
		}
		return out
	}
}

// FromBitSet builds a set from bs. It returns a *RangeError if bs has a bit
// set at or beyond N.
func FromBitSet[U Universe](bs *bitset.BitSet) (*Bitset[U], error) {
	n := universeBits[U]()
	if bs == nil {
		return New[U](), nil
	}
	if i, ok := bs.NextSet(uint(n)); ok {
		return nil, &RangeError{Pos: int(i), Size: n}
	}
	return build[U](n, int(bs.Count()), func(yield func(int) bool) {
		for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}), nil
}

// ToRoaring returns the set as a roaring bitmap.
func (b *Bitset[U]) ToRoaring() *roaring.Bitmap {
	n := universeBits[U]()
	rb := roaring.New()
	switch {
	case b.rep == Full && b.saturated:
	case b.rep == Full:
		b.members.Runs(n, func(start, end int) bool {
			rb.AddRange(uint64(start), uint64(end))
			return true
		})
	case b.rep == Sparse && b.saturated:
		rb.AddRange(0, uint64(n))
	default:
		for p := range b.All() {
			rb.Add(uint32(p))
		}
	}
	return rb
}

// FromRoaring builds a set from rb. It returns a *RangeError if rb holds a
// value at or beyond N.
func FromRoaring[U Universe](rb *roaring.Bitmap) (*Bitset[U], error) {
	n := universeBits[U]()
	if rb == nil || rb.IsEmpty() {
		return New[U](), nil
	}
	if mx := rb.Maximum(); int64(mx) >= int64(n) {
		return nil, &RangeError{Pos: int(mx), Size: n}
	}
	return build[U](n, int(rb.GetCardinality()), func(yield func(int) bool) {
		it := rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}), nil
}
