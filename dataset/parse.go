package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a numeric token that failed to parse, retaining the
// source string it came from and the underlying strconv cause.
type ParseError struct {
	// Input is the full source string being parsed.
	Input string
	// Token is the token that failed to parse.
	Token string
	// Err is the underlying parse error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q in input %q: %v", e.Token, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseSequence parses a string of comma- or whitespace-separated real
// numbers into an ordered sequence.
//
// The input is trimmed first; an empty or whitespace-only string is an empty
// sequence, not an error. Commas are treated as separators interchangeably
// with whitespace, so "1, 2 3" and "1 2,3" both parse to [1 2 3]. Tokens are
// parsed as float64 with optional sign and exponent.
//
// Returns:
//   - []float64: The parsed sequence, in input order
//   - error: A *ParseError for the first malformed token; no partial result
//     is returned alongside it
func ParseSequence(text string) ([]float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []float64{}, nil
	}

	tokens := strings.Fields(strings.ReplaceAll(trimmed, ",", " "))
	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &ParseError{Input: text, Token: token, Err: err}
		}
		values = append(values, v)
	}

	return values, nil
}
