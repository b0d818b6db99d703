package gaps

import "fmt"

// Builder appends strictly increasing positions to a list in O(1) each.
type Builder struct {
	l    *List
	next int // smallest position the next Add may use
}

// NewBuilder resets l and returns a builder that appends to it.
func NewBuilder(l *List) Builder {
	l.Reset()
	return Builder{l: l}
}

// Add appends p, which must be greater than every position added so far.
func (b *Builder) Add(p int) {
	if p < b.next {
		panic(fmt.Sprintf("gaps: builder position %d not increasing (next %d)", p, b.next))
	}
	b.l.buf.Append(uint16(p - b.next))
	b.next = p + 1
}

// AddRange appends every position in [start, end).
func (b *Builder) AddRange(start, end int) {
	if start >= end {
		return
	}
	b.Add(start)
	for p := start + 1; p < end; p++ {
		b.l.buf.Append(0)
	}
	b.next = end
}

// Cursor walks the positions of a list one at a time.
type Cursor struct {
	gaps []uint16
	i    int
	pos  int
}

// NewCursor returns a cursor positioned before the first element of l.
// The list must not be modified while the cursor is in use.
func NewCursor(l *List) Cursor {
	return Cursor{gaps: l.buf.Slice(), pos: -1}
}

// Next advances to the next position. It returns false when exhausted.
func (c *Cursor) Next() (int, bool) {
	if c.i >= len(c.gaps) {
		return 0, false
	}
	c.pos += int(c.gaps[c.i]) + 1
	c.i++
	return c.pos, true
}

// Merge walks a and b in lockstep and appends to dst every position p that is
// in at least one of them and for which keep(p in a, p in b) is true.
// dst may not alias a or b.
func Merge(dst, a, b *List, keep func(inA, inB bool) bool) {
	if dst == a || dst == b {
		panic("gaps: merge destination aliases an operand")
	}
	out := NewBuilder(dst)
	ca, cb := NewCursor(a), NewCursor(b)
	pa, okA := ca.Next()
	pb, okB := cb.Next()

	for okA || okB {
		switch {
		case okA && (!okB || pa < pb):
			if keep(true, false) {
				out.Add(pa)
			}
			pa, okA = ca.Next()
		case okB && (!okA || pb < pa):
			if keep(false, true) {
				out.Add(pb)
			}
			pb, okB = cb.Next()
		default: // pa == pb
			if keep(true, true) {
				out.Add(pa)
			}
			pa, okA = ca.Next()
			pb, okB = cb.Next()
		}
	}
}

// Disjoint reports whether a and b share no position.
func Disjoint(a, b *List) bool {
	ca, cb := NewCursor(a), NewCursor(b)
	pa, okA := ca.Next()
	pb, okB := cb.Next()
	for okA && okB {
		switch {
		case pa < pb:
			pa, okA = ca.Next()
		case pb < pa:
			pb, okB = cb.Next()
		default:
			return false
		}
	}
	return true
}
