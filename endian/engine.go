// Package endian provides byte order utilities for snapshot serialization.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine, so header fields can be both read in place and
// appended to a growing buffer through one value. Snapshots default to
// little-endian; big-endian exists for interoperability with snapshots
// produced on big-endian hosts.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so an engine is
// always stateless, immutable and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the snapshot default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Native returns the host's byte order, probed through a fixed 16-bit value.
func Native() EndianEngine {
	var i uint16 = 0x0100

	// For a little-endian host the low byte (0x00) sits at the lowest address.
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
