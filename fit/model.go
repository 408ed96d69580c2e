package fit

import "fmt"

// Line represents a fitted straight line y = Slope·x + Intercept.
//
// A Line is an immutable value produced by Fit. It carries no reference to the
// data it was fitted from; predictions may be generated for any x sequence,
// not just the original one.
type Line struct {
	// Slope is the coefficient a in y = a·x + b.
	Slope float64
	// Intercept is the constant b in y = a·x + b.
	Intercept float64
}

// PredictAt returns the fitted value Slope·x + Intercept for a single x.
func (l Line) PredictAt(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Predict returns the fitted values for every element of xs, in order.
//
// The result has the same length as xs. There are no failure modes; the
// computation is exactly Slope*xs[i] + Intercept per element.
func (l Line) Predict(xs []float64) []float64 {
	preds := make([]float64, len(xs))
	for i, x := range xs {
		preds[i] = l.PredictAt(x)
	}

	return preds
}

// Coefficients returns the line coefficients as [slope, intercept].
func (l Line) Coefficients() []float64 {
	return []float64{l.Slope, l.Intercept}
}

// Formula returns a human-readable representation of the fitted equation,
// with both coefficients formatted to six decimal places.
func (l Line) Formula() string {
	return fmt.Sprintf("y = %.6f*x + %.6f", l.Slope, l.Intercept)
}

// String returns a string representation of the line.
func (l Line) String() string {
	return fmt.Sprintf("Line{Slope: %.6f, Intercept: %.6f}", l.Slope, l.Intercept)
}

// Result represents the complete outcome of fitting and scoring one sample
// set: the fitted line together with its goodness-of-fit metrics.
//
// Fields:
//   - Line: The fitted line (slope and intercept)
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error (lower is better)
//   - N: Number of observations the line was fitted from
type Result struct {
	// Line is the fitted line.
	Line Line
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error of the residuals.
	RMSE float64
	// N is the number of observations.
	N int
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{%s, R²: %.6f, RMSE: %.6f, N: %d}",
		r.Line.Formula(), r.RSquared, r.RMSE, r.N)
}
