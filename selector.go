package gapset

import (
	"github.com/hupe1980/gapset/internal/gaps"
)

// unsaturate turns a sentinel state into the equivalent empty list of the
// inverse encoding: all-set Sparse becomes Full with no unset bits, all-unset
// Full becomes empty Sparse. Mutating code never has to special-case the
// sentinel afterwards.
func (b *Bitset[U]) unsaturate() {
	if b.rep == Dense || !b.saturated {
		return
	}
	b.rep = b.rep.inverse()
	b.saturated = false
}

// settle restores the invariants after a mutation: a gap list covering the
// whole universe collapses into the sentinel, and the encoding is
// re-evaluated against the density thresholds.
func (b *Bitset[U]) settle(n int) {
	if b.rep == Dense {
		b.sampleDensity(n)
		return
	}
	if b.members.Len() == n {
		b.members.Reset()
		b.saturated = true
	}
	b.rebalance(n)
}

// rebalance converts a gap encoding whose stored count crossed a threshold.
func (b *Bitset[U]) rebalance(n int) {
	low, high := thresholds(n)
	c := b.storedCount(n)
	switch {
	case c > high:
		if b.rep == Sparse {
			b.makeFull(n)
		} else {
			b.makeSparse(n)
		}
	case c > low:
		b.makeDense(n)
	}
}

// sampleDensity re-counts a Dense set on every 32nd mutating call. Counting
// is O(N/64), so sampling keeps single-bit updates cheap.
func (b *Bitset[U]) sampleDensity(n int) {
	b.checks++
	if b.checks&densityCheckMask != densityCheckMask {
		return
	}
	low, high := thresholds(n)
	pop := int(b.dense.Count())
	switch {
	case pop < low:
		b.makeSparse(n)
	case pop > high:
		b.makeFull(n)
	}
}

// makeSparse rebuilds b as a list of its set bits.
func (b *Bitset[U]) makeSparse(n int) {
	var tmp Bitset[U]
	tmp.rep = Sparse
	out := gaps.NewBuilder(&tmp.members)

	switch b.rep {
	case Sparse:
		return
	case Full:
		if !b.saturated {
			b.members.Runs(n, func(start, end int) bool {
				out.AddRange(start, end)
				return true
			})
		}
	case Dense:
		for i, ok := b.dense.NextSet(0); ok && int(i) < n; i, ok = b.dense.NextSet(i + 1) {
			out.Add(int(i))
		}
	}

	if tmp.members.Len() == n {
		tmp.members.Reset()
		tmp.saturated = true
	}
	b.swap(&tmp)
}

// makeFull rebuilds b as a list of its unset bits.
func (b *Bitset[U]) makeFull(n int) {
	var tmp Bitset[U]
	tmp.rep = Full
	out := gaps.NewBuilder(&tmp.members)

	switch b.rep {
	case Full:
		return
	case Sparse:
		if !b.saturated {
			b.members.Runs(n, func(start, end int) bool {
				out.AddRange(start, end)
				return true
			})
		}
	case Dense:
		for i, ok := b.dense.NextClear(0); ok && int(i) < n; i, ok = b.dense.NextClear(i + 1) {
			out.Add(int(i))
		}
	}

	if tmp.members.Len() == n {
		tmp.members.Reset()
		tmp.saturated = true
	}
	b.swap(&tmp)
}

// makeDense rebuilds b as an N-bit array.
func (b *Bitset[U]) makeDense(n int) {
	if b.rep == Dense {
		return
	}
	var tmp Bitset[U]
	tmp.rep = Dense
	tmp.dense = newDense(n)

	switch b.rep {
	case Sparse:
		if b.saturated {
			tmp.dense.FlipRange(0, uint(n))
			break
		}
		b.members.ForEach(func(p int) bool {
			tmp.dense.Set(uint(p))
			return true
		})
	case Full:
		if b.saturated {
			break
		}
		tmp.dense.FlipRange(0, uint(n))
		b.members.ForEach(func(p int) bool {
			tmp.dense.Clear(uint(p))
			return true
		})
	}
	b.swap(&tmp)
}
