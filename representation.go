package gapset

import "fmt"

// Representation identifies the physical encoding a Bitset currently uses.
// The numeric values double as the tag byte of the binary encoding.
type Representation uint8

const (
	// Sparse stores the gaps between consecutive set bits.
	Sparse Representation = 0
	// Full stores the gaps between consecutive unset bits.
	Full Representation = 1
	// Dense stores one bit per position.
	Dense Representation = 2
)

func (r Representation) String() string {
	switch r {
	case Sparse:
		return "sparse"
	case Full:
		return "full"
	case Dense:
		return "dense"
	default:
		return fmt.Sprintf("Representation(%d)", uint8(r))
	}
}

func (r Representation) valid() bool { return r <= Dense }

// inverse returns the gap encoding that stores the complement.
func (r Representation) inverse() Representation {
	switch r {
	case Sparse:
		return Full
	case Full:
		return Sparse
	default:
		panic(fmt.Sprintf("gapset: no inverse for %v", r))
	}
}
