// Package report renders fit results as deterministic, column-aligned text.
//
// Rendering is pure formatting: no decision logic, no I/O. Identical input
// always produces byte-identical output.
package report

import (
	"fmt"
	"strings"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/fit"
)

// Render produces the standard fit report for the observations (x, y) and
// the line y = a·x + b: a header with the fitted equation and R² (six decimal
// places each), then one table row per observation showing x, y, the
// predicted value and the residual, each to three decimal places in
// right-aligned columns.
func Render(x, y []float64, a, b float64) string {
	line := fit.Line{Slope: a, Intercept: b}
	preds := line.Predict(x)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Fitted line: %s\n", line.Formula())
	fmt.Fprintf(&sb, "R-squared:   %.6f\n", fit.RSquared(x, y, a, b))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%10s %10s %10s %10s\n", "x", "y", "predicted", "residual")
	for i := range x {
		fmt.Fprintf(&sb, "%10.3f %10.3f %10.3f %10.3f\n", x[i], y[i], preds[i], y[i]-preds[i])
	}

	return sb.String()
}

// RenderResult renders the standard report for a dataset plus a footer with
// the observation count, RMSE and the dataset content fingerprint.
func RenderResult(ds dataset.Dataset, result *fit.Result) string {
	var sb strings.Builder
	sb.WriteString(Render(ds.X, ds.Y, result.Line.Slope, result.Line.Intercept))
	fmt.Fprintf(&sb, "\nobservations: %d  rmse: %.6f  fingerprint: %016x\n",
		result.N, result.RMSE, ds.Fingerprint())

	return sb.String()
}
