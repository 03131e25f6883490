// Package snapshot serializes finished sieve tables to a compact binary form.
//
// Sieving a large bound is pure CPU work; a snapshot trades that work for a
// little disk. The candidate table is stored behind a fixed header carrying a
// magic number, the sieved bound, the payload compression type and an
// xxHash64 checksum of the raw table, so a loaded snapshot either
// reconstructs the exact table or fails loudly.
//
// # Basic Usage
//
// Writing:
//
//	t := sieve.New(10_000_000)
//	data, err := snapshot.Encode(t, snapshot.WithCompression(format.CompressionS2))
//
// Reading:
//
//	t, err := snapshot.Decode(data)
//	primes := t.Primes(t.Bound())
package snapshot

import (
	"fmt"
	"io"

	"github.com/ykonstant1/esiv/compress"
	"github.com/ykonstant1/esiv/errs"
	"github.com/ykonstant1/esiv/format"
	"github.com/ykonstant1/esiv/internal/hash"
	"github.com/ykonstant1/esiv/internal/options"
	"github.com/ykonstant1/esiv/internal/pool"
	"github.com/ykonstant1/esiv/sieve"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncoderOption configures snapshot encoding.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		cfg.compression = compression

		return nil
	})
}

// WithLittleEndian stores multi-byte header fields little-endian, the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian stores multi-byte header fields big-endian. It rarely needs
// to be used unless interoperability with big-endian consumers is required.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// encode compresses the table and builds the finished header.
func encode(t *sieve.Table, opts []EncoderOption) (Header, []byte, error) {
	cfg := &encoderConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return Header{}, nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "snapshot payload")
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := codec.Compress(t.Bits())
	if err != nil {
		return Header{}, nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	header := NewHeader(cfg.compression)
	if cfg.bigEndian {
		header.SetBigEndian()
	}
	header.Bound = t.Bound()
	header.Checksum = hash.Checksum(t.Bits())
	header.PayloadLength = uint32(len(payload)) //nolint:gosec

	return header, payload, nil
}

// Encode serializes the table into a fresh byte slice.
func Encode(t *sieve.Table, opts ...EncoderOption) ([]byte, error) {
	header, payload, err := encode(t, opts)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// EncodeTo serializes the table and writes it to w, assembling the snapshot
// in a pooled buffer so repeated writes do not allocate.
//
// Returns:
//   - int64: Bytes written
//   - error: Encoding or write error
func EncodeTo(t *sieve.Table, w io.Writer, opts ...EncoderOption) (int64, error) {
	header, payload, err := encode(t, opts)
	if err != nil {
		return 0, err
	}

	bb := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(bb)

	bb.Grow(HeaderSize + len(payload))
	_, _ = bb.Write(header.Bytes())
	_, _ = bb.Write(payload)

	return bb.WriteTo(w)
}

// Decode reconstructs a sieve table from snapshot data.
//
// Every structural field is validated and the decompressed table is verified
// against the stored checksum before a Table is handed back.
//
// Returns:
//   - *sieve.Table: The reconstructed table
//   - error: Header validation errors, errs.ErrPayloadSizeMismatch,
//     decompression failures, or errs.ErrChecksumMismatch
func Decode(data []byte) (*sieve.Table, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) != uint64(header.PayloadLength) {
		return nil, errs.ErrPayloadSizeMismatch
	}

	codec, err := compress.CreateCodec(header.Compression, "snapshot payload")
	if err != nil {
		return nil, err
	}

	bits, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot payload: %w", err)
	}

	if hash.Checksum(bits) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return sieve.FromBits(header.Bound, bits)
}

// ReadHeader parses just the header of snapshot data, without touching the
// payload. Diagnostic tools use it to report on a snapshot cheaply.
func ReadHeader(data []byte) (Header, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return Header{}, err
	}

	return header, nil
}
