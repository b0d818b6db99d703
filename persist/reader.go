package persist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/hupe1980/gapset"
	"github.com/hupe1980/gapset/internal/conv"
	"github.com/hupe1980/gapset/internal/hash"
)

// Reader reads bitsets of universe U from a stream.
// A Reader is not safe for concurrent use.
type Reader[U gapset.Universe] struct {
	br          *bufio.Reader
	opts        Options
	log         *gapset.Logger
	compression Compression
	maxRecord   int
	index       int
	raw         []byte
	payload     []byte
	err         error // sticky
}

// NewReader reads and validates the stream header from r.
// It returns ErrUniverseMismatch if the stream was written for another universe.
func NewReader[U gapset.Universe](r io.Reader, optFns ...func(*Options)) (*Reader[U], error) {
	return newReader[U](r, buildOptions(optFns))
}

func newReader[U gapset.Universe](r io.Reader, opts Options) (*Reader[U], error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	n := gapset.New[U]().Size()
	if h.Universe != n {
		return nil, fmt.Errorf("%w: stream has %d bits, reader %d", ErrUniverseMismatch, h.Universe, n)
	}
	return &Reader[U]{
		br:          br,
		opts:        opts,
		log:         opts.Logger.WithUniverse(n),
		compression: h.Compression,
		maxRecord:   gapset.MaxEncodedSize[U](),
	}, nil
}

// Compression returns the compression recorded in the stream header.
func (r *Reader[U]) Compression() Compression { return r.compression }

// Next decodes the next set of the stream into dst. It returns io.EOF at a
// clean end of stream. Decoding failures are *RecordError values wrapping
// gapset.ErrTruncated, gapset.ErrCorrupt or ErrChecksumMismatch; after one
// every further call returns the same error.
func (r *Reader[U]) Next(dst *gapset.Bitset[U]) error {
	if r.err != nil {
		return r.err
	}
	start := time.Now()
	stored, err := r.readRecord(dst)
	if errors.Is(err, io.EOF) {
		r.err = io.EOF
		return io.EOF
	}
	r.opts.Metrics.RecordRead(stored, time.Since(start), err)
	if err != nil {
		dst.ClearAll()
		r.log.LogCorruption(r.index, err)
		r.err = &RecordError{Index: r.index, Err: err}
		return r.err
	}
	r.index++
	return nil
}

func (r *Reader[U]) readRecord(dst *gapset.Bitset[U]) (int, error) {
	var hdr [recordHeaderSize]byte
	if _, err := io.ReadFull(r.br, hdr[:]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, readErr(err)
	}
	rh := parseRecordHeader(hdr[:])

	rawLen, err := conv.Uint32ToInt(rh.Raw)
	if err != nil || rawLen > r.maxRecord {
		return 0, fmt.Errorf("%w: record length %d", gapset.ErrCorrupt, rh.Raw)
	}
	storedLen := rawLen
	if rh.Stored != 0 {
		if r.compression == CompressionNone {
			return 0, fmt.Errorf("%w: compressed record in an uncompressed stream", gapset.ErrCorrupt)
		}
		if rh.Stored >= rh.Raw {
			return 0, fmt.Errorf("%w: stored length %d not below raw length %d", gapset.ErrCorrupt, rh.Stored, rh.Raw)
		}
		storedLen = int(rh.Stored)
	}

	r.payload = grow(r.payload, storedLen)
	if _, err := io.ReadFull(r.br, r.payload); err != nil {
		return 0, readErr(err)
	}

	raw := r.payload
	if rh.Stored != 0 {
		r.raw = grow(r.raw, rawLen)
		raw, err = decompress(r.compression, r.payload, r.raw)
		if err != nil {
			return storedLen, fmt.Errorf("%w: %w", gapset.ErrCorrupt, err)
		}
	}

	if r.opts.VerifyChecksums {
		if sum := hash.CRC32C(raw); sum != rh.CRC {
			return storedLen, fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, sum, rh.CRC)
		}
	}
	if err := dst.UnmarshalBinary(raw); err != nil {
		return storedLen, err
	}
	return storedLen, nil
}

// All returns an iterator over the remaining sets of the stream. Iteration
// stops after the first error, which is yielded with a nil set.
func (r *Reader[U]) All() iter.Seq2[*gapset.Bitset[U], error] {
	return func(yield func(*gapset.Bitset[U], error) bool) {
		for {
			b := gapset.New[U]()
			err := r.Next(b)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// Records returns the number of sets read so far.
func (r *Reader[U]) Records() int { return r.index }

func readErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return gapset.ErrTruncated
	}
	return fmt.Errorf("persist: read: %w", err)
}

func grow(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
