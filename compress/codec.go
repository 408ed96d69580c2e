package compress

import (
	"fmt"

	"github.com/arloliu/linefit/format"
)

// Compressor compresses a complete dataset payload.
type Compressor interface {
	// Compress compresses the input and returns a newly allocated result.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. It returns an error when the input is corrupted or was written
// by an incompatible codec.
type Decompressor interface {
	// Decompress decompresses the input and returns a newly allocated result.
	// The input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that handle them with
// shared state.
type Codec interface {
	Compressor
	Decompressor
}

// ForType returns the codec registered for the given compression type.
func ForType(typ format.CompressionType) (Codec, error) {
	switch typ {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unknown compression type: %d", typ)
	}
}
