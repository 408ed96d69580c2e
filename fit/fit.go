package fit

import "fmt"

// Fit computes the least-squares line y = a·x + b minimizing the sum of
// squared vertical distances Σ(y[i] − (a·x[i]+b))².
//
// The algorithm is the closed-form mean-centered solution: after computing
// x̄ and ȳ, a single pass accumulates num = Σ(x[i]−x̄)(y[i]−ȳ) and
// den = Σ(x[i]−x̄)², then a = num/den and b = ȳ − a·x̄. Arithmetic is plain
// float64 throughout; overflow and NaN propagate naturally.
//
// The zero-variance precondition is an exact comparison against 0.0, not an
// epsilon check. Near-degenerate x data therefore produces a very large but
// finite slope rather than ErrDegenerateInput.
//
// Parameters:
//   - x: Independent variable observations
//   - y: Dependent variable observations, paired with x by index
//
// Returns:
//   - Line: The fitted line
//   - error: ErrLengthMismatch, ErrInsufficientData or ErrDegenerateInput
//     (wrapped with context) when a precondition fails
func Fit(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Line{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(x))
	}

	meanX := mean(x)
	meanY := mean(y)

	var num, den float64
	for i := range x {
		dx := x[i] - meanX
		num += dx * (y[i] - meanY)
		den += dx * dx
	}

	if den == 0.0 {
		return Line{}, fmt.Errorf("%w: all %d x values equal %g", ErrDegenerateInput, len(x), x[0])
	}

	slope := num / den

	return Line{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

// Predict returns a·xs[i] + b for every element of xs, in order.
//
// This is the free-function form of Line.Predict for callers that carry the
// coefficients rather than a Line value. It accepts any x sequence,
// independent of the data the coefficients were fitted from.
func Predict(a, b float64, xs []float64) []float64 {
	return Line{Slope: a, Intercept: b}.Predict(xs)
}

// Residuals returns y[i] − (a·x[i]+b) for each observation, in order.
//
// Both sequences must have the same length; like Predict this is a pure
// function with no failure modes, so mismatched input is the caller's bug and
// will panic on index.
func Residuals(x, y []float64, a, b float64) []float64 {
	res := make([]float64, len(x))
	for i := range x {
		res[i] = y[i] - (a*x[i] + b)
	}

	return res
}

// Analyze fits a line to (x, y) and scores it in one call.
//
// Parameters:
//   - x: Independent variable observations
//   - y: Dependent variable observations, paired with x by index
//
// Returns:
//   - *Result: Fitted line with R², RMSE and observation count
//   - error: The same failure modes as Fit
func Analyze(x, y []float64) (*Result, error) {
	line, err := Fit(x, y)
	if err != nil {
		return nil, err
	}

	return &Result{
		Line:     line,
		RSquared: RSquared(x, y, line.Slope, line.Intercept),
		RMSE:     RMSE(x, y, line.Slope, line.Intercept),
		N:        len(x),
	}, nil
}
