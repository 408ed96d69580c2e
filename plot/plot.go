// Package plot renders an ASCII chart of observed and fitted values.
//
// This is the optional visualization collaborator around the fitting engine.
// It is best-effort: callers that receive an error are expected to degrade to
// a plain "plot unavailable" notice rather than fail the run.
package plot

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/arloliu/linefit/internal/options"
)

// Config holds chart rendering settings.
type Config struct {
	Height  int
	Width   int
	Caption string
}

func defaultConfig() Config {
	return Config{
		Height:  10,
		Caption: "observed vs fitted",
	}
}

// Option is a functional option for Render.
type Option = options.Option[*Config]

// WithHeight sets the chart height in rows.
func WithHeight(h int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Height = h
	})
}

// WithWidth sets the chart width in columns (0 lets the chart size itself).
func WithWidth(w int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Width = w
	})
}

// WithCaption sets the chart caption.
func WithCaption(caption string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Caption = caption
	})
}

// Render draws the observed y values and the fitted predictions as two
// series on one ASCII chart. Both series are plotted against observation
// index; x is only used to validate that the inputs describe the same
// observations.
//
// Returns an error when there is nothing to draw or the series disagree in
// length. Callers should treat any error as "visualization unavailable".
func Render(x, y, predictions []float64, opts ...Option) (string, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return "", err
	}

	if len(y) == 0 {
		return "", errors.New("nothing to plot")
	}
	if len(x) != len(y) || len(predictions) != len(y) {
		return "", fmt.Errorf("series length mismatch: len(x)=%d, len(y)=%d, len(predictions)=%d",
			len(x), len(y), len(predictions))
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(cfg.Height),
		asciigraph.Caption(cfg.Caption),
	}
	if cfg.Width > 0 {
		graphOpts = append(graphOpts, asciigraph.Width(cfg.Width))
	}

	return asciigraph.PlotMany([][]float64{y, predictions}, graphOpts...), nil
}
