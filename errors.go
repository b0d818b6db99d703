package gapset

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncated is returned when an encoding ends before it is complete.
	// It wraps io.ErrUnexpectedEOF.
	ErrTruncated = fmt.Errorf("gapset: truncated encoding: %w", io.ErrUnexpectedEOF)

	// ErrCorrupt is returned when an encoding is complete but not valid for
	// the universe it is decoded into.
	ErrCorrupt = errors.New("gapset: corrupt encoding")

	// ErrSyntax is returned when a bit string contains characters other than
	// '0' and '1' or does not fit the universe.
	ErrSyntax = errors.New("gapset: invalid bit string")
)

// RangeError reports a position outside the universe.
//
// Bit-addressed methods such as Set and Test panic with a *RangeError, the way
// indexing a Go array out of bounds panics. Checked entry points such as At
// return it instead.
type RangeError struct {
	Pos  int
	Size int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gapset: position %d out of range [0, %d)", e.Pos, e.Size)
}

// truncated maps a short read onto ErrTruncated and keeps other I/O errors.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return fmt.Errorf("gapset: read: %w", err)
}
