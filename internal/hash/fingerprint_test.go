package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequences(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}

	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, Sequences(x, y), Sequences(x, y))
	})

	t.Run("order sensitive", func(t *testing.T) {
		assert.NotEqual(t, Sequences(x, y), Sequences(y, x))
		assert.NotEqual(t, Sequences([]float64{1, 2}), Sequences([]float64{2, 1}))
	})

	t.Run("length prefix disambiguates boundaries", func(t *testing.T) {
		assert.NotEqual(t,
			Sequences([]float64{1}, []float64{2}),
			Sequences([]float64{1, 2}, nil))
	})

	t.Run("value sensitive", func(t *testing.T) {
		assert.NotEqual(t, Sequences([]float64{1.0}), Sequences([]float64{1.0000001}))
	})
}

func BenchmarkSequences(b *testing.B) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = float64(i) * 0.5
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sequences(x, x)
	}
}
