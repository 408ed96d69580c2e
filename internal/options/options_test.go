package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func withValue(v int) Option[*testConfig] {
	return func(c *testConfig) error {
		if v < 0 {
			return errors.New("value cannot be negative")
		}
		c.value = v

		return nil
	}
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withValue(10), withName("first"), withName("second"))
		require.NoError(t, err)
		require.Equal(t, 10, cfg.value)
		require.Equal(t, "second", cfg.name)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withValue(5), withValue(-1), withName("unreached"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "value cannot be negative")
		require.Equal(t, 5, cfg.value)
		require.Empty(t, cfg.name)
	})

	t.Run("empty option list", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Zero(t, *cfg)
	})
}
