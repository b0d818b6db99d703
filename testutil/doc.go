// Package testutil provides testing utilities for gapset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for bit positions and Model, a
// plain []bool bitset used as the reference in differential tests.
//
// # Random Positions
//
//	rng := testutil.NewRNG(seed)
//	ps := rng.Positions(4096, 0.01) // ~1% of [0, 4096), sorted
//	mask := rng.Clusters(4096, 8, 64) // 8 runs of up to 64 set bits
//
// # Reference Model
//
//	m := testutil.NewModel(4096)
//	m.Set(7)
//	m.ShiftLeft(3)
//	m.Positions() // [10]
package testutil
