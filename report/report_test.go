package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/fit"
)

func TestRender(t *testing.T) {
	ds := dataset.Example()

	got := Render(ds.X, ds.Y, -3.2, 18.2)

	want := strings.Join([]string{
		"Fitted line: y = -3.200000*x + 18.200000",
		"R-squared:   0.973384",
		"",
		"         x          y  predicted   residual",
		"     1.000     14.000     15.000     -1.000",
		"     2.000     13.000     11.800      1.200",
		"     3.000      9.000      8.600      0.400",
		"     4.000      5.000      5.400     -0.400",
		"     5.000      2.000      2.200     -0.200",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_Deterministic(t *testing.T) {
	ds := dataset.Example()
	first := Render(ds.X, ds.Y, -3.2, 18.2)
	second := Render(ds.X, ds.Y, -3.2, 18.2)
	assert.Equal(t, first, second)
}

func TestRender_EmptyObservations(t *testing.T) {
	got := Render(nil, nil, 1, 2)
	assert.Contains(t, got, "Fitted line: y = 1.000000*x + 2.000000")
	assert.Contains(t, got, "R-squared:   0.000000")
	// Header row present, no data rows after it.
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, "         x          y  predicted   residual", lines[len(lines)-1])
}

func TestRenderResult(t *testing.T) {
	ds := dataset.Example()
	result, err := fit.Analyze(ds.X, ds.Y)
	require.NoError(t, err)

	got := RenderResult(ds, result)
	assert.Contains(t, got, "Fitted line: y = -3.200000*x + 18.200000")
	assert.Contains(t, got, "observations: 5")
	assert.Contains(t, got, "rmse: 0.748331")
	assert.Contains(t, got, "fingerprint: ")
}
