package gapset

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gapset/internal/gaps"
)

// Equal reports whether b and o hold the same bits, whatever their
// representations.
func (b *Bitset[U]) Equal(o *Bitset[U]) bool {
	if b == o {
		return true
	}
	if b.Count() != o.Count() {
		return false
	}

	var empty gaps.List
	x, y := b.view(&empty), o.view(&empty)
	switch {
	case x.dense != nil && y.dense != nil:
		return denseEqual(x.dense, y.dense, universeBits[U]())
	case x.dense == nil && y.dense == nil:
		if x.complement == y.complement {
			return x.list.Equal(y.list)
		}
		// One list holds set bits and the other unset bits. With equal
		// counts they describe the same set iff they never overlap.
		return gaps.Disjoint(x.list, y.list)
	case x.dense != nil:
		return listMatches(y, x.dense)
	default:
		return listMatches(x, y.dense)
	}
}

// listMatches reports whether every list position has the expected bit in d.
// Together with equal counts that makes the sets identical.
func listMatches(l operand, d *bitset.BitSet) bool {
	ok := true
	l.list.ForEach(func(p int) bool {
		ok = d.Test(uint(p)) != l.complement
		return ok
	})
	return ok
}

// EqualBitSet reports whether bs holds exactly the bits of b. Bits of bs at
// or beyond N make the sets unequal.
func (b *Bitset[U]) EqualBitSet(bs *bitset.BitSet) bool {
	if bs == nil {
		return b.None()
	}
	if int(bs.Count()) != b.Count() {
		return false
	}
	if b.rep == Dense {
		return denseEqual(b.dense, bs, universeBits[U]())
	}
	for p := range b.All() {
		if !bs.Test(uint(p)) {
			return false
		}
	}
	return true
}
