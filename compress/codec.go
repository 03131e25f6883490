// Package compress provides the payload codecs of the snapshot format.
//
// A finished sieve table is a run-heavy bit buffer (long stretches of mostly
// cleared bytes at the high end, denser bytes at the low end), which every
// supported algorithm shrinks well. Zstd favors ratio, S2 and LZ4 favor
// speed, and None stores the table verbatim for debugging or when the caller
// compresses at a different layer.
package compress

import (
	"fmt"

	"github.com/ykonstant1/esiv/format"
)

// Compressor compresses a raw table payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified. Internal buffers may be reused.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a raw table payload from its compressed form.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor. It returns an error if the data is corrupted or was
	// compressed with an incompatible algorithm.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified. Internal buffers may be reused.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Snapshot encode and decode paths share one
// codec per compression type.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
