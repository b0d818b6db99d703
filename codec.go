package gapset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gapset/internal/conv"
)

// headerSize is the tag byte plus the little-endian uint16 count.
const headerSize = 3

// encodedCount is the count field of the encoding: the stored element count
// for Sparse/Full (N for the sentinels) and the population count for Dense.
func (b *Bitset[U]) encodedCount(n int) int {
	if b.rep == Dense {
		return int(b.dense.Count())
	}
	return b.storedCount(n)
}

// EncodedSize returns the number of bytes WriteTo will produce.
func (b *Bitset[U]) EncodedSize() int {
	n := universeBits[U]()
	count := b.encodedCount(n)
	switch {
	case count == 0 || count == n:
		return headerSize
	case b.rep == Dense:
		return headerSize + wordsFor(n)*8
	default:
		return headerSize + count*gapWidth
	}
}

// MaxEncodedSize returns the largest EncodedSize of any set of universe U.
func MaxEncodedSize[U Universe]() int {
	n := universeBits[U]()
	return headerSize + max((n-1)*gapWidth, wordsFor(n)*8)
}

// AppendBinary appends the binary encoding of b to dst.
//
// The layout is the representation tag (1 byte), the count (uint16 little
// endian) and, when 0 < count < N, the payload: count uint16 gaps for
// Sparse/Full or ceil(N/64) uint64 words for Dense.
func (b *Bitset[U]) AppendBinary(dst []byte) ([]byte, error) {
	n := universeBits[U]()
	count := b.encodedCount(n)
	c16, err := conv.IntToUint16(count)
	if err != nil {
		return dst, fmt.Errorf("gapset: encode: %w", err)
	}

	dst = append(dst, byte(b.rep))
	dst = binary.LittleEndian.AppendUint16(dst, c16)
	if count == 0 || count == n {
		return dst, nil
	}

	if b.rep == Dense {
		for i := range wordsFor(n) {
			dst = binary.LittleEndian.AppendUint64(dst, denseWord(b.dense, i))
		}
		return dst, nil
	}
	for _, g := range b.members.Gaps() {
		dst = binary.LittleEndian.AppendUint16(dst, g)
	}
	return dst, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Bitset[U]) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, b.EncodedSize()))
}

// WriteTo writes the binary encoding of b to w.
func (b *Bitset[U]) WriteTo(w io.Writer) (int64, error) {
	buf, err := b.MarshalBinary()
	if err != nil {
		return 0, err
	}
	m, err := w.Write(buf)
	if err != nil {
		return int64(m), fmt.Errorf("gapset: write: %w", err)
	}
	if m != len(buf) {
		return int64(m), io.ErrShortWrite
	}
	return int64(m), nil
}

// ReadFrom replaces b with one encoding read from r. It reads exactly the
// bytes of that encoding and restores the saved representation.
//
// A short read returns ErrTruncated, an invalid encoding ErrCorrupt. On any
// error b is left empty.
func (b *Bitset[U]) ReadFrom(r io.Reader) (int64, error) {
	var out Bitset[U]
	read, err := out.decode(r, universeBits[U]())
	if err != nil {
		b.ClearAll()
		return read, err
	}
	b.swap(&out)
	return read, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Trailing bytes are
// rejected with ErrCorrupt.
func (b *Bitset[U]) UnmarshalBinary(data []byte) error {
	read, err := b.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if extra := len(data) - int(read); extra != 0 {
		b.ClearAll()
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, extra)
	}
	return nil
}

func (b *Bitset[U]) decode(r io.Reader, n int) (int64, error) {
	var hdr [headerSize]byte
	m, err := io.ReadFull(r, hdr[:])
	read := int64(m)
	if err != nil {
		return read, truncated(err)
	}

	rep := Representation(hdr[0])
	if !rep.valid() {
		return read, fmt.Errorf("%w: representation tag %d", ErrCorrupt, hdr[0])
	}
	count := int(binary.LittleEndian.Uint16(hdr[1:]))
	if count > n {
		return read, fmt.Errorf("%w: count %d exceeds universe %d", ErrCorrupt, count, n)
	}
	b.rep = rep

	if rep == Dense {
		m, err := b.decodeDense(r, n, count)
		return read + m, err
	}

	switch count {
	case 0:
		return read, nil
	case n:
		b.saturated = true
		return read, nil
	}

	payload := make([]byte, count*gapWidth)
	m, err = io.ReadFull(r, payload)
	read += int64(m)
	if err != nil {
		return read, truncated(err)
	}
	gs := make([]uint16, count)
	for i := range gs {
		gs[i] = binary.LittleEndian.Uint16(payload[i*gapWidth:])
	}
	b.members.SetGaps(gs)
	if err := b.members.Validate(n); err != nil {
		return read, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return read, nil
}

func (b *Bitset[U]) decodeDense(r io.Reader, n, count int) (int64, error) {
	b.dense = newDense(n)
	switch count {
	case 0:
		return 0, nil
	case n:
		b.dense.FlipRange(0, uint(n))
		return 0, nil
	}

	nw := wordsFor(n)
	payload := make([]byte, nw*8)
	m, err := io.ReadFull(r, payload)
	if err != nil {
		return int64(m), truncated(err)
	}
	words := make([]uint64, nw)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(payload[i*8:])
	}
	if words[nw-1]&tailMask(n) != 0 {
		return int64(m), fmt.Errorf("%w: bits set past universe %d", ErrCorrupt, n)
	}
	b.dense = bitset.FromWithLength(uint(n), words)
	if pop := int(b.dense.Count()); pop != count {
		return int64(m), fmt.Errorf("%w: population %d, header says %d", ErrCorrupt, pop, count)
	}
	return int64(m), nil
}
