package snapshot

import (
	"github.com/ykonstant1/esiv/endian"
	"github.com/ykonstant1/esiv/errs"
	"github.com/ykonstant1/esiv/format"
)

// Snapshot layout: a 32-byte fixed header followed by the table payload,
// compressed per the header's compression type.
//
//	byte 0-1:   options (always little-endian): bit 0 endianness of the
//	            remaining fields (0 = little), bits 1-3 reserved, bits 4-15
//	            magic number 0xE51
//	byte 2:     compression type
//	byte 3:     reserved, must be zero
//	byte 4-11:  sieved bound, a multiple of 30
//	byte 12-19: xxHash64 of the raw (uncompressed) table
//	byte 20-23: payload byte count after compression
//	byte 24-31: reserved, must be zero
const (
	// HeaderSize is the fixed byte length of a snapshot header.
	HeaderSize = 32

	// EndiannessMask selects the endianness bit (bit 0) of the options field.
	EndiannessMask = 0x0001
	// ReservedOptionsMask selects the reserved option bits (bits 1-3).
	ReservedOptionsMask = 0x000E
	// MagicNumberMask selects the magic number bits (bits 4-15).
	MagicNumberMask = 0xFFF0

	// MagicSnapshotV1 is the version 1 magic number for sieve table snapshots.
	MagicSnapshotV1 = 0xE510
)

// Header is the fixed-size header at the start of a snapshot.
type Header struct {
	// Options is a packed field: endianness bit, reserved bits, magic number.
	Options uint16

	// Compression identifies the payload codec.
	Compression format.CompressionType

	// Bound is the sieved bound of the stored table, a multiple of 30.
	Bound uint64

	// Checksum is the xxHash64 digest of the uncompressed table.
	Checksum uint64

	// PayloadLength is the compressed payload byte count.
	PayloadLength uint32
}

// NewHeader creates a Header with the v1 magic, little-endian byte order and
// the given compression type. Bound, Checksum and PayloadLength are filled by
// the encoder.
func NewHeader(compression format.CompressionType) Header {
	return Header{
		Options:     MagicSnapshotV1,
		Compression: compression,
	}
}

// IsBigEndian reports whether the header's multi-byte fields use big-endian
// byte order.
func (h Header) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// SetBigEndian marks the header's multi-byte fields as big-endian.
func (h *Header) SetBigEndian() {
	h.Options |= EndiannessMask
}

// SetLittleEndian marks the header's multi-byte fields as little-endian.
func (h *Header) SetLittleEndian() {
	h.Options &^= EndiannessMask
}

// GetEndianEngine returns the engine matching the header's endianness bit.
func (h Header) GetEndianEngine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number, reserved bits, compression type and bound
// alignment.
func (h Header) Validate() error {
	if h.Options&MagicNumberMask != MagicSnapshotV1 {
		return errs.ErrInvalidMagic
	}
	if h.Options&ReservedOptionsMask != 0 {
		return errs.ErrReservedBits
	}
	if !h.Compression.IsValid() {
		return errs.ErrInvalidCompression
	}
	if h.Bound%30 != 0 {
		return errs.ErrBoundNotAligned
	}

	return nil
}

// Bytes serializes the header into a fresh 32-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	// The options field is always little-endian so readers can pick the
	// engine before decoding anything else.
	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = byte(h.Compression)
	// b[3] reserved, stays zero

	engine := h.GetEndianEngine()
	engine.PutUint64(b[4:12], h.Bound)
	engine.PutUint64(b[12:20], h.Checksum)
	engine.PutUint32(b[20:24], h.PayloadLength)
	// b[24:32] reserved, stays zero

	return b
}

// Parse fills the header from the first 32 bytes of data and validates it.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is shorter than HeaderSize,
//     errs.ErrReservedBits if reserved bytes are nonzero, or any Validate error
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Compression = format.CompressionType(data[2])
	if data[3] != 0 {
		return errs.ErrReservedBits
	}

	engine := h.GetEndianEngine()
	h.Bound = engine.Uint64(data[4:12])
	h.Checksum = engine.Uint64(data[12:20])
	h.PayloadLength = engine.Uint32(data[20:24])

	for _, b := range data[24:HeaderSize] {
		if b != 0 {
			return errs.ErrReservedBits
		}
	}

	return h.Validate()
}
