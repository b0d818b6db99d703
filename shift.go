package gapset

import "fmt"

// ShiftLeft moves every bit p to p+k. Bits reaching N or beyond are dropped
// and the vacated positions [0, k) are cleared. It panics if k is negative.
func (b *Bitset[U]) ShiftLeft(k int) *Bitset[U] {
	n, ok := b.prepareShift(k)
	if !ok {
		return b
	}
	switch b.rep {
	case Sparse:
		b.members.ShiftUp(k, n, false)
	case Full:
		b.members.ShiftUp(k, n, true)
	default:
		b.dense = shiftDenseLeft(b.dense, k, n)
	}
	b.settle(n)
	return b
}

// ShiftRight moves every bit p to p-k. Bits falling below 0 are dropped and
// the vacated positions [N-k, N) are cleared. It panics if k is negative.
func (b *Bitset[U]) ShiftRight(k int) *Bitset[U] {
	n, ok := b.prepareShift(k)
	if !ok {
		return b
	}
	switch b.rep {
	case Sparse:
		b.members.ShiftDown(k, n, false)
	case Full:
		b.members.ShiftDown(k, n, true)
	default:
		b.dense.ShiftRight(uint(k))
	}
	b.settle(n)
	return b
}

// Lsh returns b shifted left by k as a new set.
func (b *Bitset[U]) Lsh(k int) *Bitset[U] { return b.Clone().ShiftLeft(k) }

// Rsh returns b shifted right by k as a new set.
func (b *Bitset[U]) Rsh(k int) *Bitset[U] { return b.Clone().ShiftRight(k) }

// prepareShift handles the trivial shift counts and leaves b in a state the
// per-representation shift can work on. A Full set stores every vacated
// position as an unset entry, so a long shift goes through Dense instead.
func (b *Bitset[U]) prepareShift(k int) (int, bool) {
	if k < 0 {
		panic(fmt.Sprintf("gapset: negative shift count %d", k))
	}
	n := universeBits[U]()
	if k == 0 {
		return n, false
	}
	if k >= n {
		b.ClearAll()
		return n, false
	}
	b.unsaturate()
	if low, _ := thresholds(n); b.rep == Full && k > low {
		b.makeDense(n)
	}
	return n, true
}
