// Package persist stores collections of gapset bitsets in a framed,
// checksummed and optionally compressed stream.
//
// A stream starts with a 16-byte header:
//
//	magic "GSET" | version uint16 | universe bits uint16 | compression uint8 | 7 reserved
//
// followed by one record per set:
//
//	uncompressed uint32 | stored uint32 | crc32c uint32 | data
//
// data is the gapset binary encoding of the set, compressed with the stream's
// algorithm unless stored is zero. The checksum covers the uncompressed
// encoding. All integers are little endian.
//
// # Usage
//
//	err := persist.SaveFile(nil, "masks.gset", sets, persist.WithCompression(persist.CompressionZSTD))
//	...
//	sets, err := persist.LoadFile[gapset.U4096](nil, "masks.gset")
//
// A nil FileSystem means the local file system. SaveFile writes to a
// temporary file and renames it into place after a sync, so a failed save
// never leaves a partial file under the final name.
package persist
