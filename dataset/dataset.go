package dataset

import (
	"fmt"

	"github.com/arloliu/linefit/fit"
	"github.com/arloliu/linefit/internal/hash"
)

// Dataset holds two ordered sequences of observations paired by index:
// (X[i], Y[i]) is one observation. Order is significant only for display;
// fitting is order-independent.
type Dataset struct {
	X []float64
	Y []float64
}

// New creates a Dataset from the given sequences. No validation is performed;
// call Validate before fitting when the sequences come from external input.
func New(x, y []float64) Dataset {
	return Dataset{X: x, Y: y}
}

// Example returns the reference dataset used by the CLI when no input is
// supplied: x = [1 2 3 4 5], y = [14 13 9 5 2].
func Example() Dataset {
	return Dataset{
		X: []float64{1, 2, 3, 4, 5},
		Y: []float64{14, 13, 9, 5, 2},
	}
}

// Len returns the number of observations, which is only meaningful when the
// dataset validates.
func (d Dataset) Len() int {
	return len(d.X)
}

// Validate checks length parity between the sequences. It reports
// fit.ErrLengthMismatch so callers can treat pre-fit validation and fit
// failures uniformly with errors.Is.
func (d Dataset) Validate() error {
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", fit.ErrLengthMismatch, len(d.X), len(d.Y))
	}

	return nil
}

// Fingerprint returns the xxHash64 content fingerprint of the dataset.
//
// The fingerprint covers the exact bit patterns of both sequences in order,
// so it is stable across calls, sensitive to observation order, and
// distinguishes which sequence a value belongs to.
func (d Dataset) Fingerprint() uint64 {
	return hash.Sequences(d.X, d.Y)
}

// String returns a short description of the dataset.
func (d Dataset) String() string {
	return fmt.Sprintf("Dataset{n: %d, fingerprint: %016x}", d.Len(), d.Fingerprint())
}
