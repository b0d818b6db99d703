package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/gapset"
)

var magic = [4]byte{'G', 'S', 'E', 'T'}

const (
	formatVersion    = uint16(1)
	headerSize       = 16
	recordHeaderSize = 12
)

type header struct {
	Version     uint16
	Universe    int
	Compression Compression
}

func (h header) append(dst []byte) []byte {
	dst = append(dst, magic[:]...)
	dst = binary.LittleEndian.AppendUint16(dst, h.Version)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.Universe))
	dst = append(dst, byte(h.Compression))
	var reserved [7]byte
	return append(dst, reserved[:]...)
}

func readHeader(r io.Reader) (header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return header{}, fmt.Errorf("persist: header: %w", gapset.ErrTruncated)
		}
		return header{}, fmt.Errorf("persist: read header: %w", err)
	}
	if [4]byte(buf[:4]) != magic {
		return header{}, ErrInvalidMagic
	}

	h := header{
		Version:     binary.LittleEndian.Uint16(buf[4:6]),
		Universe:    int(binary.LittleEndian.Uint16(buf[6:8])),
		Compression: Compression(buf[8]),
	}
	// buf[9:16] reserved
	if h.Version != formatVersion {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.valid() {
		return header{}, fmt.Errorf("persist: header: %w: compression %d", gapset.ErrCorrupt, h.Compression)
	}
	return h, nil
}

type recordHeader struct {
	Raw    uint32
	Stored uint32 // 0 means uncompressed
	CRC    uint32
}

func (h recordHeader) append(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, h.Raw)
	dst = binary.LittleEndian.AppendUint32(dst, h.Stored)
	return binary.LittleEndian.AppendUint32(dst, h.CRC)
}

func parseRecordHeader(buf []byte) recordHeader {
	return recordHeader{
		Raw:    binary.LittleEndian.Uint32(buf[0:4]),
		Stored: binary.LittleEndian.Uint32(buf[4:8]),
		CRC:    binary.LittleEndian.Uint32(buf[8:12]),
	}
}
