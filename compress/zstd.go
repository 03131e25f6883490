package compress

// ZstdCompressor compresses table payloads with Zstandard, the best-ratio
// codec of the set. It is the right choice for snapshots written once and
// kept around: archival prime tables, warm-start caches shipped with a
// deployment, or snapshots sent over constrained links.
//
// Builds with cgo enabled use the gozstd bindings; pure-Go builds fall back
// to klauspost/compress with pooled encoders and decoders.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
