// Package errs defines the sentinel errors shared across the esiv packages.
//
// The sieve itself has no failure paths; every error here belongs to the
// snapshot surface, where untrusted bytes are parsed. Callers match with
// errors.Is, and call sites add context with fmt.Errorf("...: %w", err).
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates snapshot data shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagic indicates the header magic bits do not identify an esiv snapshot.
	ErrInvalidMagic = errors.New("invalid snapshot magic number")

	// ErrReservedBits indicates reserved header bytes or option bits are nonzero.
	ErrReservedBits = errors.New("reserved snapshot header bits are set")

	// ErrInvalidCompression indicates an unknown compression type in the header.
	ErrInvalidCompression = errors.New("invalid snapshot compression type")

	// ErrPayloadSizeMismatch indicates the payload length recorded in the header
	// disagrees with the bytes actually present.
	ErrPayloadSizeMismatch = errors.New("snapshot payload length mismatch")

	// ErrChecksumMismatch indicates the decompressed table failed checksum
	// verification against the header digest.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrBoundNotAligned indicates a table bound that is not a multiple of 30.
	ErrBoundNotAligned = errors.New("table bound is not a multiple of 30")

	// ErrTableSizeMismatch indicates a candidate buffer whose length disagrees
	// with the declared bound.
	ErrTableSizeMismatch = errors.New("table size does not match bound")
)
