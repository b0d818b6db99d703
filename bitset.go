package gapset

import (
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gapset/internal/gaps"
)

// Bitset is a set of positions in the fixed universe [0, N) where N is
// fixed by the type parameter U.
//
// The zero value is an empty set ready to use. A Bitset is not safe for
// concurrent mutation. A Bitset must not be copied by value once used: the
// copy would share part of its storage with the original. Use Clone or
// CopyFrom for an independent copy; go vet reports value copies.
type Bitset[U Universe] struct {
	noCopy noCopy

	rep Representation

	// members holds the set bits (Sparse) or the unset bits (Full).
	members gaps.List

	// saturated is the sentinel stored count of N: every bit set for Sparse,
	// every bit unset for Full. members is empty while it holds.
	saturated bool

	// dense is the N-bit array, non-nil only for Dense.
	dense *bitset.BitSet

	// checks counts mutating calls while Dense; every 32nd one re-evaluates
	// the density.
	checks uint32
}

// noCopy makes go vet's copylocks check flag Bitset values being copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// densityCheckMask selects which mutating calls re-count a Dense set.
const densityCheckMask = 31

// New returns an empty Bitset.
func New[U Universe]() *Bitset[U] {
	universeBits[U]()
	return &Bitset[U]{}
}

// Of returns a Bitset holding the given positions.
// It panics with a *RangeError if a position lies outside the universe.
func Of[U Universe](positions ...int) *Bitset[U] {
	b := New[U]()
	for _, p := range positions {
		b.Set(p)
	}
	return b
}

// FromUint64 returns a Bitset whose bit p equals bit p of x for p < N.
// Bits of x at or beyond N are ignored.
func FromUint64[U Universe](x uint64) *Bitset[U] {
	b := New[U]()
	n := b.Size()
	for p := 0; x != 0 && p < n; p++ {
		if x&1 != 0 {
			b.Set(p)
		}
		x >>= 1
	}
	return b
}

// Size returns N, the number of addressable positions.
func (b *Bitset[U]) Size() int { return universeBits[U]() }

// Representation returns the encoding currently in use.
func (b *Bitset[U]) Representation() Representation { return b.rep }

// Stats describes the physical state of a Bitset.
type Stats struct {
	Representation Representation
	// Stored is the number of stored elements: set bits for Sparse, unset
	// bits for Full (N for the sentinel states), zero for Dense.
	Stored    int
	Count     int
	Saturated bool
	HeapBytes int
}

// Stats returns a snapshot of the physical state.
func (b *Bitset[U]) Stats() Stats {
	n := universeBits[U]()
	s := Stats{
		Representation: b.rep,
		Count:          b.Count(),
		Saturated:      b.saturated,
	}
	if b.rep == Dense {
		s.HeapBytes = len(b.dense.Words()) * 8
		return s
	}
	s.Stored = b.storedCount(n)
	s.HeapBytes = b.members.HeapBytes()
	return s
}

// storedCount returns the number of gap-encoded elements including the sentinel.
func (b *Bitset[U]) storedCount(n int) int {
	if b.saturated {
		return n
	}
	return b.members.Len()
}

func (b *Bitset[U]) checkPos(p int) int {
	n := universeBits[U]()
	if p < 0 || p >= n {
		panic(&RangeError{Pos: p, Size: n})
	}
	return n
}

// Test reports whether bit p is set. It panics with a *RangeError if p is
// outside the universe.
func (b *Bitset[U]) Test(p int) bool {
	b.checkPos(p)
	switch b.rep {
	case Sparse:
		return b.saturated || b.members.Contains(p)
	case Full:
		return !b.saturated && !b.members.Contains(p)
	default:
		return b.dense.Test(uint(p))
	}
}

// At reports whether bit p is set, returning a *RangeError instead of
// panicking when p is outside the universe.
func (b *Bitset[U]) At(p int) (bool, error) {
	n := universeBits[U]()
	if p < 0 || p >= n {
		return false, &RangeError{Pos: p, Size: n}
	}
	return b.Test(p), nil
}

// Set sets bit p.
func (b *Bitset[U]) Set(p int) *Bitset[U] { return b.SetTo(p, true) }

// Reset clears bit p.
func (b *Bitset[U]) Reset(p int) *Bitset[U] { return b.SetTo(p, false) }

// SetTo sets bit p to v.
func (b *Bitset[U]) SetTo(p int, v bool) *Bitset[U] {
	n := b.checkPos(p)
	if b.rep == Dense {
		b.dense.SetTo(uint(p), v)
		b.sampleDensity(n)
		return b
	}

	b.unsaturate()
	var changed bool
	if v == (b.rep == Sparse) {
		changed = b.members.Insert(p)
	} else {
		changed = b.members.Remove(p)
	}
	if changed {
		b.settle(n)
	}
	return b
}

// Flip toggles bit p.
func (b *Bitset[U]) Flip(p int) *Bitset[U] {
	n := b.checkPos(p)
	if b.rep == Dense {
		b.dense.Flip(uint(p))
		b.sampleDensity(n)
		return b
	}
	return b.SetTo(p, !b.Test(p))
}

// FlipAll complements the whole set. The gap encodings swap roles without
// touching a single stored gap.
func (b *Bitset[U]) FlipAll() *Bitset[U] {
	if b.rep == Dense {
		n := universeBits[U]()
		b.dense.FlipRange(0, uint(n))
		b.sampleDensity(n)
		return b
	}
	b.rep = b.rep.inverse()
	return b
}

// SetAll sets every bit.
func (b *Bitset[U]) SetAll() *Bitset[U] {
	b.members.Reset()
	b.rep, b.saturated, b.dense = Full, false, nil
	return b
}

// ClearAll clears every bit.
func (b *Bitset[U]) ClearAll() *Bitset[U] {
	b.members.Reset()
	b.rep, b.saturated, b.dense = Sparse, false, nil
	return b
}

// Count returns the number of set bits.
func (b *Bitset[U]) Count() int {
	n := universeBits[U]()
	switch b.rep {
	case Sparse:
		return b.storedCount(n)
	case Full:
		return n - b.storedCount(n)
	default:
		return int(b.dense.Count())
	}
}

// Any reports whether at least one bit is set.
func (b *Bitset[U]) Any() bool {
	if b.rep == Dense {
		return b.dense.Any()
	}
	return b.Count() > 0
}

// None reports whether no bit is set.
func (b *Bitset[U]) None() bool { return !b.Any() }

// Clone returns an independent deep copy.
func (b *Bitset[U]) Clone() *Bitset[U] {
	c := &Bitset[U]{}
	c.CopyFrom(b)
	return c
}

// CopyFrom makes b a deep copy of src, including its representation.
func (b *Bitset[U]) CopyFrom(src *Bitset[U]) *Bitset[U] {
	if b == src {
		return b
	}
	b.rep, b.saturated = src.rep, src.saturated
	if src.rep == Dense {
		b.members.Reset()
		b.dense = src.dense.Clone()
		return b
	}
	b.dense = nil
	b.members.CopyFrom(&src.members)
	return b
}

// swap moves the storage of tmp into b. tmp must not be used afterwards.
func (b *Bitset[U]) swap(tmp *Bitset[U]) {
	b.rep = tmp.rep
	b.members = tmp.members
	b.saturated = tmp.saturated
	b.dense = tmp.dense
}

// All returns an iterator over the set positions in increasing order.
func (b *Bitset[U]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := universeBits[U]()
		switch b.rep {
		case Sparse:
			if !b.saturated {
				b.members.ForEach(yield)
				return
			}
			for p := 0; p < n; p++ {
				if !yield(p) {
					return
				}
			}
		case Full:
			if b.saturated {
				return
			}
			b.members.Runs(n, func(start, end int) bool {
				for p := start; p < end; p++ {
					if !yield(p) {
						return false
					}
				}
				return true
			})
		default:
			for i, ok := b.dense.NextSet(0); ok && int(i) < n; i, ok = b.dense.NextSet(i + 1) {
				if !yield(int(i)) {
					return
				}
			}
		}
	}
}

// ForEach calls fn for every set position in increasing order until fn
// returns false.
func (b *Bitset[U]) ForEach(fn func(p int) bool) {
	b.All()(fn)
}
