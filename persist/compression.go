package persist

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the record compression algorithm of a stream.
type Compression uint8

const (
	// CompressionNone stores records uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

func (c Compression) valid() bool { return c <= CompressionZSTD }

// maxRatio is the largest compressed/raw ratio worth storing compressed.
const maxRatio = 0.9

var errSizeMismatch = errors.New("decompressed size mismatch")

// ZSTD encoder pools per speed level, decoder pool shared.
var (
	zstdEncoderPools [zstd.SpeedBestCompression + 1]sync.Pool
	zstdDecoderPool  sync.Pool
)

func getZstdEncoder(level zstd.EncoderLevel) *zstd.Encoder {
	if v := zstdEncoderPools[level].Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	return enc
}

func putZstdEncoder(level zstd.EncoderLevel, enc *zstd.Encoder) {
	zstdEncoderPools[level].Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compressor compresses records for one stream.
type compressor struct {
	kind  Compression
	level zstd.EncoderLevel
	buf   []byte
}

func newCompressor(kind Compression, zstdLevel int) compressor {
	return compressor{kind: kind, level: zstd.EncoderLevelFromZstd(zstdLevel)}
}

// compress returns the compressed form of data, or nil if compression is
// disabled or does not pay off. The result aliases an internal buffer.
func (c *compressor) compress(data []byte) ([]byte, error) {
	if c.kind == CompressionNone || len(data) == 0 {
		return nil, nil
	}

	var out []byte
	switch c.kind {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		if cap(c.buf) < bound {
			c.buf = make([]byte, bound)
		}
		n, err := lz4.CompressBlock(data, c.buf[:bound], nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		out = c.buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		enc := getZstdEncoder(c.level)
		out = enc.EncodeAll(data, c.buf[:0])
		putZstdEncoder(c.level, enc)
		c.buf = out
	default:
		return nil, fmt.Errorf("unknown compression %d", c.kind)
	}

	// If compression doesn't help (ratio > 0.9), store uncompressed
	if len(out) == 0 || float64(len(out)) > float64(len(data))*maxRatio {
		return nil, nil
	}
	return out, nil
}

// decompress expands data into dst, which must have the uncompressed length.
func decompress(kind Compression, data, dst []byte) ([]byte, error) {
	switch kind {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if n != len(dst) {
			return nil, errSizeMismatch
		}
		return dst, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(data, dst[:0])
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(decoded) != len(dst) {
			return nil, errSizeMismatch
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("compressed record in a %v stream", kind)
	}
}
