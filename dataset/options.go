package dataset

import (
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/internal/options"
)

// FileConfig holds the resolved format and compression for one file
// operation.
type FileConfig struct {
	Format      format.DataFormat
	Compression format.CompressionType
}

// fileConfigForPath returns the default config for a path: auto-detected
// content format, compression from the file extension.
func fileConfigForPath(path string) FileConfig {
	return FileConfig{
		Format:      format.FormatAuto,
		Compression: format.CompressionFromExtension(path),
	}
}

// FileOption is a functional option for Load and Save.
type FileOption = options.Option[*FileConfig]

// WithFormat forces the content format instead of auto-detecting. For Save,
// FormatAuto means FormatText.
func WithFormat(f format.DataFormat) FileOption {
	return options.NoError(func(cfg *FileConfig) {
		cfg.Format = f
	})
}

// WithCompression overrides the compression implied by the file extension.
func WithCompression(c format.CompressionType) FileOption {
	return options.NoError(func(cfg *FileConfig) {
		cfg.Compression = c
	})
}
