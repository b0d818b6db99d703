package gapset

import (
	"github.com/bits-and-blooms/bitset"
)

const wordBits = 64

// wordsFor returns the number of 64-bit words holding n bits.
func wordsFor(n int) int { return (n + wordBits - 1) / wordBits }

// newDense returns an all-zero n-bit array.
func newDense(n int) *bitset.BitSet { return bitset.New(uint(n)) }

// tailMask returns the bits of the last word that lie past n.
func tailMask(n int) uint64 {
	if r := n % wordBits; r != 0 {
		return ^uint64(0) << uint(r)
	}
	return 0
}

// denseWord returns word i of d, treating missing words as zero.
func denseWord(d *bitset.BitSet, i int) uint64 {
	w := d.Words()
	if i < len(w) {
		return w[i]
	}
	return 0
}

// denseOps are the word-wise in-place combinators of bits-and-blooms that
// back each binary operation when both operands are Dense.
var denseOps = [...]func(dst, src *bitset.BitSet){
	opAnd:    (*bitset.BitSet).InPlaceIntersection,
	opOr:     (*bitset.BitSet).InPlaceUnion,
	opXor:    (*bitset.BitSet).InPlaceSymmetricDifference,
	opAndNot: (*bitset.BitSet).InPlaceDifference,
}

// shiftDenseLeft moves every bit of d up by k and truncates at n.
func shiftDenseLeft(d *bitset.BitSet, k, n int) *bitset.BitSet {
	d.ShiftLeft(uint(k))
	return d.Shrink(uint(n - 1))
}

// denseEqual compares the first n bits of a and b word by word.
func denseEqual(a, b *bitset.BitSet, n int) bool {
	for i := range wordsFor(n) {
		if denseWord(a, i) != denseWord(b, i) {
			return false
		}
	}
	return true
}
