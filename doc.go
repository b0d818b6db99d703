// Package gapset provides a space-adaptive bitset over a fixed universe.
//
// A Bitset[U] holds positions in [0, N), where N is fixed at compile time by
// the universe type U. Internally a set uses whichever of three encodings is
// cheapest for its current density and converts between them as it mutates:
//
//   - Sparse stores the gaps between consecutive set bits.
//   - Full stores the gaps between consecutive unset bits.
//   - Dense stores one bit per position.
//
// The encoding never changes what the set means. Equal, Count, String and
// every other observer behave exactly as on an ordinary bitset.
//
// # Quick Start
//
//	var a gapset.Bitset[gapset.U1024]
//	a.Set(3).Set(500)
//
//	b := gapset.Of[gapset.U1024](3, 4, 5)
//	a.And(b)              // a = {3}
//	c := a.Complement()   // 1023 bits set, stored as one Full gap
//	c.ShiftLeft(10)
//
// Custom universes are zero-size types with a Bits method:
//
//	type U300 struct{}
//
//	func (U300) Bits() int { return 300 }
//
// # Encoding
//
// WriteTo and ReadFrom use a compact binary form that records the
// representation, so a decoded set has the same physical state as the saved
// one. The persist subpackage frames many sets into a checksummed and
// optionally compressed file.
//
// # Concurrency
//
// Bitset has no internal synchronization. Concurrent reads are safe;
// mutation requires external locking. Distinct sets are independent.
package gapset
