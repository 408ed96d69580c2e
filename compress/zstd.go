package compress

// ZstdCodec compresses dataset payloads with Zstandard. It offers the best
// ratio of the available codecs and is the default for archived datasets.
//
// Two implementations exist behind build tags: the cgo build uses
// valyala/gozstd (libzstd bindings), while pure-Go builds fall back to
// klauspost/compress/zstd. Both produce standard zstd frames and are
// interchangeable on disk.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
