package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/linefit/compress"
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/internal/options"
)

// jsonDataset is the on-disk JSON representation: {"x": [...], "y": [...]}.
type jsonDataset struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Load reads a dataset file.
//
// The payload is decompressed according to the file extension (.zst, .s2,
// .lz4; anything else is read as-is) unless WithCompression overrides it.
// The content format is then auto-detected: a payload whose first non-space
// byte is '{' is parsed as the JSON object form, anything else as text with
// one sequence per line, x first and y second. WithFormat skips detection.
//
// Parameters:
//   - path: Path to the dataset file
//   - opts: Optional format/compression overrides
//
// Returns:
//   - Dataset: The loaded dataset, not yet validated for length parity
//   - error: Read, decompression or parse error if any
//
// Example:
//
//	ds, err := dataset.Load("observations.txt.zst")
//	if err != nil {
//	    return err
//	}
//	if err := ds.Validate(); err != nil {
//	    return err
//	}
func Load(path string, opts ...FileOption) (Dataset, error) {
	cfg := fileConfigForPath(path)
	if err := options.Apply(&cfg, opts...); err != nil {
		return Dataset{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read dataset file: %w", err)
	}

	codec, err := compress.ForType(cfg.Compression)
	if err != nil {
		return Dataset{}, err
	}
	payload, err := codec.Decompress(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to decompress %s: %w", path, err)
	}

	ds, err := decode(payload, cfg.Format)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return ds, nil
}

// Save writes a dataset file, compressing according to the file extension
// unless WithCompression overrides it. The content format defaults to text;
// WithFormat(format.FormatJSON) selects the JSON object form.
func Save(path string, ds Dataset, opts ...FileOption) error {
	cfg := fileConfigForPath(path)
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	payload, err := encode(ds, cfg.Format)
	if err != nil {
		return err
	}

	codec, err := compress.ForType(cfg.Compression)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("failed to compress dataset: %w", err)
	}

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}

	return nil
}

// decode parses a decompressed payload in the given (or detected) format.
func decode(payload []byte, f format.DataFormat) (Dataset, error) {
	if f == format.FormatAuto {
		f = detectFormat(payload)
	}

	switch f {
	case format.FormatJSON:
		return decodeJSON(payload)
	case format.FormatText:
		return decodeText(payload)
	default:
		return Dataset{}, fmt.Errorf("unknown data format: %d", f)
	}
}

// detectFormat sniffs the content: a leading '{' means the JSON object form.
func detectFormat(payload []byte) format.DataFormat {
	trimmed := strings.TrimSpace(string(payload))
	if strings.HasPrefix(trimmed, "{") {
		return format.FormatJSON
	}

	return format.FormatText
}

func decodeJSON(payload []byte) (Dataset, error) {
	var jd jsonDataset
	if err := json.Unmarshal(payload, &jd); err != nil {
		return Dataset{}, fmt.Errorf("invalid JSON dataset: %w", err)
	}

	return Dataset{X: jd.X, Y: jd.Y}, nil
}

func decodeText(payload []byte) (Dataset, error) {
	var sequences [][]float64
	for _, line := range strings.Split(string(payload), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		seq, err := ParseSequence(line)
		if err != nil {
			return Dataset{}, err
		}
		sequences = append(sequences, seq)
	}

	switch len(sequences) {
	case 0:
		return Dataset{X: []float64{}, Y: []float64{}}, nil
	case 2:
		return Dataset{X: sequences[0], Y: sequences[1]}, nil
	default:
		return Dataset{}, errors.New("text dataset must contain exactly two sequence lines (x then y)")
	}
}

func encode(ds Dataset, f format.DataFormat) ([]byte, error) {
	switch f {
	case format.FormatJSON:
		payload, err := json.Marshal(jsonDataset{X: ds.X, Y: ds.Y})
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON dataset: %w", err)
		}

		return payload, nil
	case format.FormatAuto, format.FormatText:
		var b strings.Builder
		writeSequenceLine(&b, ds.X)
		writeSequenceLine(&b, ds.Y)

		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unknown data format: %d", f)
	}
}

// writeSequenceLine renders one sequence as a space-separated line using the
// shortest representation that round-trips exactly.
func writeSequenceLine(b *strings.Builder, seq []float64) {
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte('\n')
}
