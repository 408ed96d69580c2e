package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/fit"
)

func TestRender(t *testing.T) {
	ds := dataset.Example()
	line, err := fit.Fit(ds.X, ds.Y)
	require.NoError(t, err)

	chart, err := Render(ds.X, ds.Y, line.Predict(ds.X))
	require.NoError(t, err)
	assert.NotEmpty(t, chart)
	assert.Contains(t, chart, "observed vs fitted")
}

func TestRender_Options(t *testing.T) {
	ds := dataset.Example()
	preds := fit.Predict(-3.2, 18.2, ds.X)

	chart, err := Render(ds.X, ds.Y, preds, WithHeight(5), WithWidth(40), WithCaption("demo"))
	require.NoError(t, err)
	assert.Contains(t, chart, "demo")
}

func TestRender_Unavailable(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		_, err := Render(nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Render([]float64{1, 2}, []float64{1, 2}, []float64{1})
		require.Error(t, err)
	})
}
