package persist

import (
	"os"

	"github.com/hupe1980/gapset"
)

// Options contains configuration for writers and readers.
type Options struct {
	// Compression selects the record compression of written streams.
	// Readers take the algorithm from the stream header instead.
	Compression Compression

	// ZstdLevel sets the zstd compression level (1-22).
	// Default (3) provides good balance. Higher = better compression but slower.
	ZstdLevel int

	// VerifyChecksums makes readers check the CRC32C of every record.
	VerifyChecksums bool

	// Logger receives save/load events. Nil discards them.
	Logger *gapset.Logger

	// Metrics receives per-record write and read measurements. Nil disables them.
	Metrics gapset.MetricsCollector

	// FileMode is the permission of files created by SaveFile.
	FileMode os.FileMode
}

// DefaultOptions returns default persist options.
var DefaultOptions = Options{
	Compression:     CompressionNone,
	ZstdLevel:       3, // zstd default level
	VerifyChecksums: true,
	FileMode:        0o600,
}

// WithCompression sets the record compression.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) { o.Compression = c }
}

// WithZstdLevel sets the zstd compression level.
func WithZstdLevel(level int) func(*Options) {
	return func(o *Options) { o.ZstdLevel = level }
}

// WithoutChecksumVerification skips the CRC32C check on read.
func WithoutChecksumVerification() func(*Options) {
	return func(o *Options) { o.VerifyChecksums = false }
}

// WithLogger sets the logger.
func WithLogger(l *gapset.Logger) func(*Options) {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m gapset.MetricsCollector) func(*Options) {
	return func(o *Options) { o.Metrics = m }
}

// WithFileMode sets the permission of created files.
func WithFileMode(mode os.FileMode) func(*Options) {
	return func(o *Options) { o.FileMode = mode }
}

func buildOptions(optFns []func(*Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = gapset.NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = gapset.NoopMetricsCollector{}
	}
	return opts
}
