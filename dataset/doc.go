// Package dataset handles getting paired observations into memory: parsing
// numeric sequences from text, loading and saving dataset files (optionally
// compressed), and fingerprinting sample sets for provenance.
//
// A Dataset is two ordered float64 sequences paired by index. The package
// enforces nothing about their lengths; length parity is checked by Validate
// (or by fit.Fit) so that parsing and validation stay separate concerns.
//
// # Parsing
//
// ParseSequence accepts comma- or whitespace-separated real numbers:
//
//	xs, err := dataset.ParseSequence("1, 2 3")
//	// xs == []float64{1, 2, 3}
//
// Empty or whitespace-only input yields an empty sequence, not an error. A
// malformed token yields a *ParseError carrying the offending input and the
// underlying cause.
//
// # Files
//
// Load reads a dataset file, transparently decompressing by extension
// (.zst, .s2, .lz4) and auto-detecting the content format: a JSON object
// {"x": [...], "y": [...]} or plain text with one sequence per line (x first,
// then y). Save writes the same formats, compressing by extension.
package dataset
