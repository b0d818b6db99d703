package gapset

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gapset/internal/gaps"
)

type binaryOp uint8

const (
	opAnd binaryOp = iota
	opOr
	opXor
	opAndNot
)

func (op binaryOp) eval(x, y bool) bool {
	switch op {
	case opAnd:
		return x && y
	case opOr:
		return x || y
	case opXor:
		return x != y
	default:
		return x && !y
	}
}

// operand is a read-only view of one side of a binary operation. A gap
// encoded set is a list plus a complement flag: the set bits are the list
// itself (complement false) or every position not in it (complement true).
// The sentinel states are viewed as an empty list of the inverse polarity.
type operand struct {
	list       *gaps.List
	complement bool
	dense      *bitset.BitSet
}

func (b *Bitset[U]) view(empty *gaps.List) operand {
	switch b.rep {
	case Sparse:
		if b.saturated {
			return operand{list: empty, complement: true}
		}
		return operand{list: &b.members}
	case Full:
		if b.saturated {
			return operand{list: empty}
		}
		return operand{list: &b.members, complement: true}
	default:
		return operand{dense: b.dense}
	}
}

// And keeps only the bits also set in o.
func (b *Bitset[U]) And(o *Bitset[U]) *Bitset[U] { return b.combine(o, opAnd) }

// Or sets every bit set in o.
func (b *Bitset[U]) Or(o *Bitset[U]) *Bitset[U] { return b.combine(o, opOr) }

// Xor toggles every bit set in o.
func (b *Bitset[U]) Xor(o *Bitset[U]) *Bitset[U] { return b.combine(o, opXor) }

// AndNot clears every bit set in o.
func (b *Bitset[U]) AndNot(o *Bitset[U]) *Bitset[U] { return b.combine(o, opAndNot) }

// Intersection returns b AND o as a new set.
func (b *Bitset[U]) Intersection(o *Bitset[U]) *Bitset[U] { return b.Clone().And(o) }

// Union returns b OR o as a new set.
func (b *Bitset[U]) Union(o *Bitset[U]) *Bitset[U] { return b.Clone().Or(o) }

// SymmetricDifference returns b XOR o as a new set.
func (b *Bitset[U]) SymmetricDifference(o *Bitset[U]) *Bitset[U] { return b.Clone().Xor(o) }

// Difference returns b AND NOT o as a new set.
func (b *Bitset[U]) Difference(o *Bitset[U]) *Bitset[U] { return b.Clone().AndNot(o) }

// Complement returns NOT b as a new set.
func (b *Bitset[U]) Complement() *Bitset[U] { return b.Clone().FlipAll() }

// And returns a AND b.
func And[U Universe](a, b *Bitset[U]) *Bitset[U] { return a.Intersection(b) }

// Or returns a OR b.
func Or[U Universe](a, b *Bitset[U]) *Bitset[U] { return a.Union(b) }

// Xor returns a XOR b.
func Xor[U Universe](a, b *Bitset[U]) *Bitset[U] { return a.SymmetricDifference(b) }

// combine replaces b with op(b, o). o may be b itself.
func (b *Bitset[U]) combine(o *Bitset[U], op binaryOp) *Bitset[U] {
	n := universeBits[U]()
	if b.rep == Dense && o.rep == Dense {
		denseOps[op](b.dense, o.dense)
		b.sampleDensity(n)
		return b
	}

	var (
		empty gaps.List
		out   Bitset[U]
	)
	x, y := b.view(&empty), o.view(&empty)
	switch {
	case x.dense == nil && y.dense == nil:
		combineLists(&out.members, x, y, op, &out.rep)
	case x.dense != nil:
		out.rep, out.dense = combineMixed(&out.members, x.dense, y, n, func(d, l bool) bool {
			return op.eval(d, l)
		})
	default:
		out.rep, out.dense = combineMixed(&out.members, y.dense, x, n, func(d, l bool) bool {
			return op.eval(l, d)
		})
	}
	b.swap(&out)
	b.settle(n)
	return b
}

// combineLists merges two gap lists. The result polarity is what op yields
// at positions absent from both lists; only positions present in at least one
// list can deviate from it, so a single merge pass builds the result.
func combineLists(dst *gaps.List, x, y operand, op binaryOp, rep *Representation) {
	rc := op.eval(x.complement, y.complement)
	gaps.Merge(dst, x.list, y.list, func(inX, inY bool) bool {
		return op.eval(inX != x.complement, inY != y.complement) != rc
	})
	if rc {
		*rep = Full
	} else {
		*rep = Sparse
	}
}

// combineMixed evaluates f(dense bit, list bit) for a Dense operand d and a
// gap encoded operand l. Outside the list the list bit is constant, so the
// result there is either a constant or d itself (possibly negated). A
// constant background yields a gap list built from the list positions alone;
// otherwise d is copied and the list positions are patched.
func combineMixed(dst *gaps.List, d *bitset.BitSet, l operand, n int, f func(d, l bool) bool) (Representation, *bitset.BitSet) {
	outside0, outside1 := f(false, l.complement), f(true, l.complement)
	inside0, inside1 := f(false, !l.complement), f(true, !l.complement)
	inside := func(p int) bool {
		if d.Test(uint(p)) {
			return inside1
		}
		return inside0
	}

	if outside0 == outside1 {
		out := gaps.NewBuilder(dst)
		l.list.ForEach(func(p int) bool {
			if inside(p) != outside0 {
				out.Add(p)
			}
			return true
		})
		if outside0 {
			return Full, nil
		}
		return Sparse, nil
	}

	res := d.Clone()
	if outside0 {
		res.FlipRange(0, uint(n))
	}
	l.list.ForEach(func(p int) bool {
		res.SetTo(uint(p), inside(p))
		return true
	})
	return Dense, res
}
