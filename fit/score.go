package fit

import "math"

// RSquared calculates the coefficient of determination (R²) of the line
// y = a·x + b against the observations (x, y).
//
// R² measures the proportion of variance in y that is explained by the fitted
// line: 1.0 is a perfect fit, 0.0 is no better than predicting the mean.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squared residuals Σ(y[i] − pred[i])²
//   - SS_tot: Total sum of squares Σ(y[i] − ȳ)²
//
// Edge cases are deterministic rather than errors: an empty y returns 0.0,
// and when SS_tot is exactly 0.0 (all y identical) the result is 1.0 if
// SS_res is also exactly 0.0, else 0.0. Division by zero never occurs.
func RSquared(x, y []float64, a, b float64) float64 {
	if len(y) == 0 {
		return 0
	}

	meanY := mean(y)
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range y {
		dy := y[i] - meanY
		ssTot += dy * dy
		residual := y[i] - (a*x[i] + b)
		ssRes += residual * residual
	}

	if ssTot == 0.0 {
		if ssRes == 0.0 {
			return 1.0
		}

		return 0.0
	}

	return 1.0 - (ssRes / ssTot)
}

// RMSE calculates the root mean square error of the line y = a·x + b against
// the observations (x, y).
//
// RMSE is the standard deviation of the residuals, in the same units as y.
// An empty sample set yields 0.
func RMSE(x, y []float64, a, b float64) float64 {
	if len(y) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range y {
		diff := y[i] - (a*x[i] + b)
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(y)))
}

// mean calculates the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
