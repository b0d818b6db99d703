package testutil

import (
	"strings"
)

// Model is a straightforward n-bit bitset over []bool. It defines the
// expected results of differential tests.
type Model struct {
	bits []bool
}

// NewModel returns an empty model of n bits.
func NewModel(n int) *Model {
	return &Model{bits: make([]bool, n)}
}

// ModelOf returns a model of n bits holding positions.
func ModelOf(n int, positions ...int) *Model {
	m := NewModel(n)
	for _, p := range positions {
		m.bits[p] = true
	}
	return m
}

// ModelFromMask returns a model holding a copy of mask.
func ModelFromMask(mask []bool) *Model {
	return &Model{bits: append([]bool(nil), mask...)}
}

// Size returns the number of bits.
func (m *Model) Size() int { return len(m.bits) }

// Test reports whether bit p is set.
func (m *Model) Test(p int) bool { return m.bits[p] }

// SetTo sets bit p to v.
func (m *Model) SetTo(p int, v bool) { m.bits[p] = v }

// Flip toggles bit p.
func (m *Model) Flip(p int) { m.bits[p] = !m.bits[p] }

// FlipAll complements every bit.
func (m *Model) FlipAll() {
	for i := range m.bits {
		m.bits[i] = !m.bits[i]
	}
}

// Fill sets every bit to v.
func (m *Model) Fill(v bool) {
	for i := range m.bits {
		m.bits[i] = v
	}
}

// Count returns the number of set bits.
func (m *Model) Count() int {
	c := 0
	for _, b := range m.bits {
		if b {
			c++
		}
	}
	return c
}

// Clone returns a copy of m.
func (m *Model) Clone() *Model { return ModelFromMask(m.bits) }

// Equal reports whether both models hold the same bits.
func (m *Model) Equal(o *Model) bool {
	if len(m.bits) != len(o.bits) {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// And keeps the bits also set in o.
func (m *Model) And(o *Model) { m.apply(o, func(x, y bool) bool { return x && y }) }

// Or sets the bits set in o.
func (m *Model) Or(o *Model) { m.apply(o, func(x, y bool) bool { return x || y }) }

// Xor toggles the bits set in o.
func (m *Model) Xor(o *Model) { m.apply(o, func(x, y bool) bool { return x != y }) }

// AndNot clears the bits set in o.
func (m *Model) AndNot(o *Model) { m.apply(o, func(x, y bool) bool { return x && !y }) }

func (m *Model) apply(o *Model, f func(x, y bool) bool) {
	for i := range m.bits {
		m.bits[i] = f(m.bits[i], o.bits[i])
	}
}

// ShiftLeft moves bit p to p+k, dropping bits that leave the universe.
func (m *Model) ShiftLeft(k int) {
	n := len(m.bits)
	for p := n - 1; p >= 0; p-- {
		m.bits[p] = p-k >= 0 && m.bits[p-k]
	}
}

// ShiftRight moves bit p to p-k, dropping bits that fall below zero.
func (m *Model) ShiftRight(k int) {
	n := len(m.bits)
	for p := range n {
		m.bits[p] = p+k < n && m.bits[p+k]
	}
}

// Positions returns the set positions in increasing order.
func (m *Model) Positions() []int {
	out := []int{}
	for p, b := range m.bits {
		if b {
			out = append(out, p)
		}
	}
	return out
}

// String renders the bits highest position first.
func (m *Model) String() string {
	var sb strings.Builder
	sb.Grow(len(m.bits))
	for p := len(m.bits) - 1; p >= 0; p-- {
		if m.bits[p] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
