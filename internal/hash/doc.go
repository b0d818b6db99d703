// Package hash provides the checksum used by gapset file formats.
//
// All record checksums use CRC32-Castagnoli (CRC32C), which Go's crc32
// package computes with hardware instructions when available (SSE4.2 on
// x86, the CRC extension on ARM). Records are checksummed in one shot:
//
//	checksum := hash.CRC32C(data)
package hash
