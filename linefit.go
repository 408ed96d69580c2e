// Package linefit fits a straight line y = a·x + b to paired numeric
// observations by ordinary least squares, scores the fit, and formats the
// result.
//
// The heavy lifting lives in the subpackages:
//
//   - fit: the fitting engine (Fit, Predict, RSquared, RMSE, Residuals)
//   - dataset: sequence parsing, dataset files, fingerprints
//   - report: deterministic text rendering of fit results
//   - plot: optional ASCII visualization
//   - compress: codecs behind compressed dataset files
//
// # Basic Usage
//
// Parse two sequences and fit them:
//
//	x, _ := linefit.ParseSequence("1 2 3 4 5")
//	y, _ := linefit.ParseSequence("14, 13, 9, 5, 2")
//
//	line, err := linefit.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line.Formula())
//	fmt.Printf("R² = %.6f\n", linefit.RSquared(x, y, line.Slope, line.Intercept))
//
// Or render the full report in one call:
//
//	fmt.Print(linefit.Report(x, y, line.Slope, line.Intercept))
//
// This package only re-exports the most common entry points; use the
// subpackages directly for datasets, options and visualization.
package linefit

import (
	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/fit"
	"github.com/arloliu/linefit/report"
)

// ParseSequence parses comma- or whitespace-separated real numbers.
// See dataset.ParseSequence.
func ParseSequence(text string) ([]float64, error) {
	return dataset.ParseSequence(text)
}

// Fit computes the least-squares line for the paired observations (x, y).
// See fit.Fit.
func Fit(x, y []float64) (fit.Line, error) {
	return fit.Fit(x, y)
}

// Predict returns a·xs[i] + b for every element of xs. See fit.Predict.
func Predict(a, b float64, xs []float64) []float64 {
	return fit.Predict(a, b, xs)
}

// RSquared computes the coefficient of determination of the line y = a·x + b
// against the observations. See fit.RSquared.
func RSquared(x, y []float64, a, b float64) float64 {
	return fit.RSquared(x, y, a, b)
}

// Report renders the standard fit report: fitted equation, R², and the
// per-observation residual table. See report.Render.
func Report(x, y []float64, a, b float64) string {
	return report.Render(x, y, a, b)
}
