// Package format defines the shared enumerations used by the dataset and
// compress packages: the on-disk representation of a sample set and the
// compression applied to it.
package format

import (
	"path/filepath"
	"strings"
)

type (
	DataFormat      uint8
	CompressionType uint8
)

const (
	FormatAuto DataFormat = 0x0 // FormatAuto detects the format from the content.
	FormatText DataFormat = 0x1 // FormatText is two sequence lines (x then y).
	FormatJSON DataFormat = 0x2 // FormatJSON is a {"x": [...], "y": [...]} object.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f DataFormat) String() string {
	switch f {
	case FormatAuto:
		return "Auto"
	case FormatText:
		return "Text"
	case FormatJSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionFromExtension maps a file name to the compression implied by its
// extension. Unrecognized extensions map to CompressionNone.
func CompressionFromExtension(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
