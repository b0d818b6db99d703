package persist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gapset"
)

var (
	// ErrInvalidMagic is returned when a stream does not start with the
	// gapset magic bytes.
	ErrInvalidMagic = fmt.Errorf("persist: invalid magic: %w", gapset.ErrCorrupt)

	// ErrUnsupportedVersion is returned for a stream written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("persist: unsupported format version")

	// ErrUniverseMismatch is returned when a stream holds sets of a different
	// universe than the reader was instantiated with.
	ErrUniverseMismatch = errors.New("persist: universe mismatch")

	// ErrChecksumMismatch is returned when a record fails its CRC32C check.
	ErrChecksumMismatch = fmt.Errorf("persist: checksum mismatch: %w", gapset.ErrCorrupt)
)

// RecordError reports a failure while decoding one record of a stream.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("persist: record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
