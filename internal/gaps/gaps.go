package gaps

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hupe1980/gapset/internal/gapbuf"
)

// ErrOutOfUniverse is returned by Validate when a list reaches past the universe.
var ErrOutOfUniverse = errors.New("gap list exceeds universe")

// List is a gap-encoded list of increasing positions.
// The zero value is an empty list.
type List struct {
	buf gapbuf.Buffer
}

// Len returns the number of positions in the list.
func (l *List) Len() int { return l.buf.Len() }

// Gaps returns the raw gap entries. The slice aliases the list.
func (l *List) Gaps() []uint16 { return l.buf.Slice() }

// HeapBytes returns the heap memory held by the list.
func (l *List) HeapBytes() int { return l.buf.HeapBytes() }

// Reset empties the list.
func (l *List) Reset() { l.buf.Reset() }

// CopyFrom replaces l with a deep copy of src.
func (l *List) CopyFrom(src *List) { l.buf.CopyFrom(&src.buf) }

// Clone returns a deep copy of l.
func (l *List) Clone() List { return List{buf: l.buf.Clone()} }

// Equal reports whether both lists hold the same positions.
func (l *List) Equal(o *List) bool { return l.buf.Equal(&o.buf) }

// SetGaps replaces the contents with raw gap values.
func (l *List) SetGaps(gaps []uint16) {
	l.buf.Resize(len(gaps))
	copy(l.buf.Slice(), gaps)
}

// Contains reports whether p is in the list.
func (l *List) Contains(p int) bool {
	pos := 0
	for _, g := range l.buf.Slice() {
		pos += int(g)
		if pos == p {
			return true
		}
		if pos > p {
			return false
		}
		pos++
	}
	return false
}

// Insert adds p. It returns false if p was already present.
func (l *List) Insert(p int) bool {
	s := l.buf.Slice()
	base := 0 // first position after the previous element
	for i, g := range s {
		elem := base + int(g)
		if p == elem {
			return false
		}
		if p < elem {
			// p splits the run in front of elem.
			s[i] = uint16(elem - p - 1)
			l.buf.Insert(i, uint16(p-base))
			return true
		}
		base = elem + 1
	}
	if p < base {
		panic(fmt.Sprintf("gaps: insert position %d behind list end %d", p, base))
	}
	l.buf.Append(uint16(p - base))
	return true
}

// Remove deletes p. It returns false if p was not present.
func (l *List) Remove(p int) bool {
	s := l.buf.Slice()
	base := 0
	for i, g := range s {
		elem := base + int(g)
		if elem == p {
			if i+1 < len(s) {
				s[i+1] += g + 1
			}
			l.buf.Delete(i)
			return true
		}
		if elem > p {
			return false
		}
		base = elem + 1
	}
	return false
}

// ForEach calls fn for every position in increasing order until fn returns false.
func (l *List) ForEach(fn func(p int) bool) {
	pos := 0
	for _, g := range l.buf.Slice() {
		pos += int(g)
		if !fn(pos) {
			return
		}
		pos++
	}
}

// All returns an iterator over the positions in increasing order.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		l.ForEach(yield)
	}
}

// Runs calls fn for every maximal half-open run [start, end) of positions in
// [0, n) that are NOT in the list, in increasing order, until fn returns false.
func (l *List) Runs(n int, fn func(start, end int) bool) {
	base := 0
	for _, g := range l.buf.Slice() {
		elem := base + int(g)
		if g > 0 && !fn(base, elem) {
			return
		}
		base = elem + 1
	}
	if base < n {
		fn(base, n)
	}
}

// Last returns the largest position, or -1 for an empty list.
func (l *List) Last() int {
	pos := -1
	for _, g := range l.buf.Slice() {
		pos += int(g) + 1
	}
	return pos
}

// Validate checks that every position lies in [0, n).
func (l *List) Validate(n int) error {
	if l.Len() > n {
		return fmt.Errorf("%w: %d entries for universe %d", ErrOutOfUniverse, l.Len(), n)
	}
	if last := l.Last(); last >= n {
		return fmt.Errorf("%w: position %d for universe %d", ErrOutOfUniverse, last, n)
	}
	return nil
}

// ShiftUp moves every position up by k and drops those reaching n or beyond.
// With fill set, the vacated positions [0, k) are added to the list.
func (l *List) ShiftUp(k, n int, fill bool) {
	if k <= 0 {
		return
	}
	if k >= n {
		l.Reset()
		if fill {
			l.fillFront(n)
		}
		return
	}

	s := l.buf.Slice()
	if len(s) > 0 {
		pos := int(s[0]) + k
		keep := 0
		for pos < n {
			keep++
			if keep == len(s) {
				break
			}
			pos += int(s[keep]) + 1
		}
		l.buf.Truncate(keep)
		// Relative to a filled run ending at k-1 the first gap is unchanged.
		if keep > 0 && !fill {
			l.buf.SetAt(0, uint16(int(s[0])+k))
		}
	}
	if fill {
		l.fillFront(k)
	}
}

// fillFront prepends the positions [0, k) to a list whose first element is
// already expressed relative to position k-1.
func (l *List) fillFront(k int) {
	old := l.buf.Len()
	l.buf.Resize(old + k)
	s := l.buf.Slice()
	copy(s[k:], s[:old])
	for i := 0; i < k; i++ {
		s[i] = 0
	}
}

// ShiftDown moves every position down by k and drops those falling below 0.
// With fill set, the vacated positions [n-k, n) are added to the list.
func (l *List) ShiftDown(k, n int, fill bool) {
	if k <= 0 {
		return
	}
	if k >= n {
		l.Reset()
		if fill {
			l.fillBack(0, n)
		}
		return
	}

	s := l.buf.Slice()
	drop := 0
	rest := k
	for drop < len(s) {
		g := int(s[drop])
		if g >= rest {
			s[drop] = uint16(g - rest)
			break
		}
		rest -= g + 1
		drop++
	}
	l.buf.DeleteFront(drop)

	if fill {
		l.fillBack(n-k, n)
	}
}

// fillBack appends the positions [from, n). Every existing position must be
// below from.
func (l *List) fillBack(from, n int) {
	last := l.Last()
	if last >= from {
		panic(fmt.Sprintf("gaps: fill from %d overlaps position %d", from, last))
	}
	if from >= n {
		return
	}
	l.buf.Append(uint16(from - last - 1))
	for p := from + 1; p < n; p++ {
		l.buf.Append(0)
	}
}
