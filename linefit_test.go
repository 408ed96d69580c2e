package linefit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit"
)

// End-to-end flow through the root wrappers: parse, fit, predict, score,
// report.
func TestLinefit_EndToEnd(t *testing.T) {
	x, err := linefit.ParseSequence("1 2 3 4 5")
	require.NoError(t, err)
	y, err := linefit.ParseSequence("14, 13, 9, 5, 2")
	require.NoError(t, err)

	line, err := linefit.Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, -3.2, line.Slope, 1e-12)
	assert.InDelta(t, 18.2, line.Intercept, 1e-12)

	preds := linefit.Predict(line.Slope, line.Intercept, x)
	require.Len(t, preds, len(x))
	assert.InDelta(t, 15.0, preds[0], 1e-12)

	r2 := linefit.RSquared(x, y, line.Slope, line.Intercept)
	assert.Greater(t, r2, 0.9)
	assert.Less(t, r2, 1.0)

	out := linefit.Report(x, y, line.Slope, line.Intercept)
	assert.Contains(t, out, "Fitted line: y = -3.200000*x + 18.200000")
	assert.Contains(t, out, "R-squared:   0.973384")
}
