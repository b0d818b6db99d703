// Package gaps implements gap-encoded sorted position lists.
//
// A List stores an increasing sequence of positions p0 < p1 < ... as run
// lengths: entry i holds the number of positions strictly between p(i-1) and
// p(i), with the first entry counting from position 0. The absolute position
// of element i is therefore sum(gaps[0..i]) + i.
//
// The same list type backs both the "mostly empty" encoding (the list holds
// the set bits) and the "mostly full" encoding (the list holds the unset
// bits). Nothing in this package knows which one a caller uses; the
// universe size n is passed to the operations that need it.
//
// Every operation except Contains is O(Len) or better. Merge combines two
// lists in a single lockstep pass.
package gaps
