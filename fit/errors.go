package fit

import "errors"

var (
	// ErrLengthMismatch indicates the x and y sequences differ in length.
	ErrLengthMismatch = errors.New("x and y sequences differ in length")
	// ErrInsufficientData indicates fewer than two observations were supplied.
	ErrInsufficientData = errors.New("at least two observations are required")
	// ErrDegenerateInput indicates zero variance in x (all x values identical),
	// which leaves the slope undefined.
	ErrDegenerateInput = errors.New("zero variance in x, slope undefined")
)
