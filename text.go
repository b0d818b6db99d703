package gapset

import "fmt"

// String renders the set as N '0'/'1' characters, highest position first.
func (b *Bitset[U]) String() string {
	n := universeBits[U]()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '0'
	}
	for p := range b.All() {
		buf[n-1-p] = '1'
	}
	return string(buf)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (b *Bitset[U]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts what Parse
// accepts; on error b is left empty.
func (b *Bitset[U]) UnmarshalText(text []byte) error {
	out, err := parse[U](text)
	if err != nil {
		b.ClearAll()
		return err
	}
	b.swap(out)
	return nil
}

// Parse builds a set from a string of '0' and '1' characters, highest
// position first. A string shorter than N sets the low positions only; an
// empty or longer string, or any other character, yields ErrSyntax.
func Parse[U Universe](s string) (*Bitset[U], error) {
	return parse[U]([]byte(s))
}

func parse[U Universe](text []byte) (*Bitset[U], error) {
	n := universeBits[U]()
	if len(text) == 0 || len(text) > n {
		return nil, fmt.Errorf("%w: length %d, want 1..%d", ErrSyntax, len(text), n)
	}
	count := 0
	for i, c := range text {
		switch c {
		case '1':
			count++
		case '0':
		default:
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrSyntax, c, i)
		}
	}
	last := len(text) - 1
	return build[U](n, count, func(yield func(int) bool) {
		for i := last; i >= 0; i-- {
			if text[i] == '1' && !yield(last-i) {
				return
			}
		}
	}), nil
}
