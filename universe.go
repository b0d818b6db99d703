package gapset

import "fmt"

// MaxBits is the largest supported universe. Gaps and stored counts are
// 16-bit, and a count must be able to represent the universe size itself.
const MaxBits = 1<<16 - 1

// gapWidth is the byte width of one stored gap. It feeds the density
// thresholds: a gap list costs gapWidth bytes per element while a dense
// array costs N/8 bytes in total.
const gapWidth = 2

// Universe fixes the number of addressable positions of a Bitset.
//
// Implementations are zero-size marker types whose Bits method returns a
// constant in [1, MaxBits]:
//
//	type U300 struct{}
//
//	func (U300) Bits() int { return 300 }
//
//	var b gapset.Bitset[U300]
type Universe interface {
	Bits() int
}

// Predefined universes.
type (
	U8     struct{}
	U16    struct{}
	U32    struct{}
	U64    struct{}
	U128   struct{}
	U256   struct{}
	U512   struct{}
	U1024  struct{}
	U2048  struct{}
	U4096  struct{}
	U8192  struct{}
	U16384 struct{}
	U65535 struct{}
)

func (U8) Bits() int     { return 8 }
func (U16) Bits() int    { return 16 }
func (U32) Bits() int    { return 32 }
func (U64) Bits() int    { return 64 }
func (U128) Bits() int   { return 128 }
func (U256) Bits() int   { return 256 }
func (U512) Bits() int   { return 512 }
func (U1024) Bits() int  { return 1024 }
func (U2048) Bits() int  { return 2048 }
func (U4096) Bits() int  { return 4096 }
func (U8192) Bits() int  { return 8192 }
func (U16384) Bits() int { return 16384 }
func (U65535) Bits() int { return 65535 }

// universeBits returns N for U and panics on an unsupported universe.
func universeBits[U Universe]() int {
	var u U
	n := u.Bits()
	if n < 1 || n > MaxBits {
		panic(fmt.Sprintf("gapset: universe %T has %d bits, want 1..%d", u, n, MaxBits))
	}
	return n
}

// thresholds returns the stored-element counts at which the selector leaves a
// gap encoding. low is the break-even point against a dense array.
func thresholds(n int) (low, high int) {
	low = (n / 8) / gapWidth
	return low, n - low
}
