package compress

// NoOpCompressor stores the table payload verbatim.
//
// Useful when inspecting snapshots with a hex dump, when benchmarking the
// snapshot machinery without codec cost, or when an outer layer already
// compresses.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-op compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice unchanged, without copying. The returned
// slice shares memory with the input; callers must not mutate one while
// holding the other.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged, without copying. The returned
// slice shares memory with the input; callers must not mutate one while
// holding the other.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
