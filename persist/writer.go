package persist

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/gapset"
	"github.com/hupe1980/gapset/internal/conv"
	"github.com/hupe1980/gapset/internal/hash"
)

// Stats describes what a Writer has produced so far.
type Stats struct {
	Records     int
	RawBytes    int64 // encoded sets before compression
	StoredBytes int64 // record payloads as written
	Compressed  int   // records stored compressed
}

// Writer appends bitsets of universe U to a stream.
// A Writer is not safe for concurrent use.
type Writer[U gapset.Universe] struct {
	bw    *bufio.Writer
	opts  Options
	log   *gapset.Logger
	comp  compressor
	raw   []byte
	rec   []byte
	stats Stats
	err   error // sticky
}

// NewWriter writes a stream header to w and returns a Writer for it.
// Call Flush once all sets are written.
func NewWriter[U gapset.Universe](w io.Writer, optFns ...func(*Options)) (*Writer[U], error) {
	return newWriter[U](w, buildOptions(optFns))
}

func newWriter[U gapset.Universe](w io.Writer, opts Options) (*Writer[U], error) {
	if !opts.Compression.valid() {
		return nil, fmt.Errorf("persist: unknown compression %d", opts.Compression)
	}
	n := gapset.New[U]().Size()
	wr := &Writer[U]{
		bw:   bufio.NewWriter(w),
		opts: opts,
		log:  opts.Logger.WithUniverse(n),
		comp: newCompressor(opts.Compression, opts.ZstdLevel),
	}

	h := header{Version: formatVersion, Universe: n, Compression: opts.Compression}
	if _, err := wr.bw.Write(h.append(make([]byte, 0, headerSize))); err != nil {
		return nil, fmt.Errorf("persist: write header: %w", err)
	}
	return wr, nil
}

// Write appends one set to the stream.
func (w *Writer[U]) Write(b *gapset.Bitset[U]) error {
	if w.err != nil {
		return w.err
	}
	start := time.Now()
	stored, err := w.writeRecord(b)
	w.opts.Metrics.RecordWrite(len(w.raw), stored, time.Since(start), err)
	if err != nil {
		w.err = err
		return err
	}
	w.log.LogRecord(w.stats.Records, b.Representation(), len(w.raw), stored)
	w.stats.Records++
	return nil
}

func (w *Writer[U]) writeRecord(b *gapset.Bitset[U]) (int, error) {
	raw, err := b.AppendBinary(w.raw[:0])
	if err != nil {
		return 0, fmt.Errorf("persist: encode record %d: %w", w.stats.Records, err)
	}
	w.raw = raw

	compressed, err := w.comp.compress(raw)
	if err != nil {
		return 0, fmt.Errorf("persist: compress record %d: %w", w.stats.Records, err)
	}

	rawLen, err := conv.IntToUint32(len(raw))
	if err != nil {
		return 0, err
	}
	storedLen, err := conv.IntToUint32(len(compressed))
	if err != nil {
		return 0, err
	}
	rh := recordHeader{Raw: rawLen, Stored: storedLen, CRC: hash.CRC32C(raw)}

	payload := raw
	if compressed != nil {
		payload = compressed
		w.stats.Compressed++
	}
	w.rec = rh.append(w.rec[:0])
	if _, err := w.bw.Write(w.rec); err != nil {
		return 0, fmt.Errorf("persist: write record %d: %w", w.stats.Records, err)
	}
	if _, err := w.bw.Write(payload); err != nil {
		return 0, fmt.Errorf("persist: write record %d: %w", w.stats.Records, err)
	}
	w.stats.RawBytes += int64(len(raw))
	w.stats.StoredBytes += int64(len(payload))
	return len(payload), nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer[U]) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = fmt.Errorf("persist: flush: %w", err)
		return w.err
	}
	return nil
}

// Stats returns the statistics of the records written so far.
func (w *Writer[U]) Stats() Stats { return w.stats }

// Size returns the number of stream bytes produced so far, header included.
func (w *Writer[U]) Size() int64 {
	return headerSize + int64(w.stats.Records)*recordHeaderSize + w.stats.StoredBytes
}
