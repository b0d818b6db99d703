package gapbuf

// InlineCap is the number of entries stored without a heap allocation.
const InlineCap = 4

// minHeapCap is the smallest heap allocation made when spilling.
const minHeapCap = 8

// Buffer is a small-size-optimized growable []uint16.
type Buffer struct {
	inline [InlineCap]uint16
	heap   []uint16 // nil while the contents fit inline
	length int
}

// Len returns the number of entries.
func (b *Buffer) Len() int { return b.length }

// Cap returns the number of entries the buffer can hold without growing.
func (b *Buffer) Cap() int {
	if b.heap != nil {
		return cap(b.heap)
	}
	return InlineCap
}

// OnHeap reports whether the contents live in a heap allocation.
func (b *Buffer) OnHeap() bool { return b.heap != nil }

// HeapBytes returns the size of the heap allocation in bytes.
func (b *Buffer) HeapBytes() int {
	return cap(b.heap) * 2
}

// Slice returns the live entries. The slice aliases the buffer and is only
// valid until the next mutating call.
func (b *Buffer) Slice() []uint16 {
	if b.heap != nil {
		return b.heap[:b.length]
	}
	return b.inline[:b.length]
}

// At returns entry i.
func (b *Buffer) At(i int) uint16 {
	if i < 0 || i >= b.length {
		panic("gapbuf: index out of range")
	}
	if b.heap != nil {
		return b.heap[i]
	}
	return b.inline[i]
}

// SetAt overwrites entry i.
func (b *Buffer) SetAt(i int, v uint16) {
	if i < 0 || i >= b.length {
		panic("gapbuf: index out of range")
	}
	if b.heap != nil {
		b.heap[i] = v
		return
	}
	b.inline[i] = v
}

// Grow ensures room for n more entries.
func (b *Buffer) Grow(n int) {
	need := b.length + n
	if need <= b.Cap() {
		return
	}

	newCap := b.Cap() * 2
	if newCap < minHeapCap {
		newCap = minHeapCap
	}
	if newCap < need {
		newCap = need
	}

	next := make([]uint16, b.length, newCap)
	copy(next, b.Slice())
	b.heap = next
}

// Resize sets the length to n. New entries are zero.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		panic("gapbuf: negative length")
	}
	if n > b.length {
		b.Grow(n - b.length)
	}
	old := b.length
	b.length = n
	if b.heap != nil {
		b.heap = b.heap[:n]
	}
	s := b.Slice()
	for i := old; i < n; i++ {
		s[i] = 0
	}
}

// Append adds v at the end.
func (b *Buffer) Append(v uint16) {
	b.Grow(1)
	b.length++
	if b.heap != nil {
		b.heap = b.heap[:b.length]
		b.heap[b.length-1] = v
		return
	}
	b.inline[b.length-1] = v
}

// Insert places v at index i, shifting the tail up by one.
func (b *Buffer) Insert(i int, v uint16) {
	if i < 0 || i > b.length {
		panic("gapbuf: insert index out of range")
	}
	b.Grow(1)
	b.length++
	if b.heap != nil {
		b.heap = b.heap[:b.length]
	}
	s := b.Slice()
	copy(s[i+1:], s[i:b.length-1])
	s[i] = v
}

// Delete removes entry i, shifting the tail down by one.
func (b *Buffer) Delete(i int) {
	if i < 0 || i >= b.length {
		panic("gapbuf: delete index out of range")
	}
	s := b.Slice()
	copy(s[i:], s[i+1:])
	b.Truncate(b.length - 1)
}

// DeleteFront removes the first n entries.
func (b *Buffer) DeleteFront(n int) {
	if n <= 0 {
		return
	}
	if n >= b.length {
		b.Truncate(0)
		return
	}
	s := b.Slice()
	copy(s, s[n:])
	b.Truncate(b.length - n)
}

// Truncate shortens the buffer to n entries. The allocation is kept.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.length {
		panic("gapbuf: truncate length out of range")
	}
	b.length = n
	if b.heap != nil {
		b.heap = b.heap[:n]
	}
}

// Reset empties the buffer, keeping any heap allocation.
func (b *Buffer) Reset() { b.Truncate(0) }

// CopyFrom replaces the contents with a deep copy of src.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b == src {
		return
	}
	b.Truncate(0)
	b.Grow(src.length)
	b.length = src.length
	if b.heap != nil {
		b.heap = b.heap[:b.length]
	}
	copy(b.Slice(), src.Slice())
}

// Clone returns a deep copy. The copy is inline when the contents fit.
func (b *Buffer) Clone() Buffer {
	var c Buffer
	c.CopyFrom(b)
	return c
}

// Equal reports whether both buffers hold the same entries.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.length != o.length {
		return false
	}
	x, y := b.Slice(), o.Slice()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
