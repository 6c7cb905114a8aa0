package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value   int
	name    string
	enabled bool
}

func (tc *testConfig) setValue(v int) error {
	if v < 0 {
		return errors.New("value cannot be negative")
	}
	tc.value = v

	return nil
}

func TestNew(t *testing.T) {
	t.Run("applies and returns nil", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(c *testConfig) error {
			return c.setValue(42)
		})

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 42, cfg.value)
	})

	t.Run("propagates errors", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(c *testConfig) error {
			return c.setValue(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "value cannot be negative")
	})
}

func TestNoError(t *testing.T) {
	cfg := &testConfig{}
	opt := NoError(func(c *testConfig) {
		c.name = "test"
		c.enabled = true
	})

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "test", cfg.name)
	require.True(t, cfg.enabled)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg,
			New(func(c *testConfig) error { return c.setValue(10) }),
			NoError(func(c *testConfig) { c.name = "ordered" }),
			NoError(func(c *testConfig) { c.enabled = true }),
		)

		require.NoError(t, err)
		require.Equal(t, 10, cfg.value)
		require.Equal(t, "ordered", cfg.name)
		require.True(t, cfg.enabled)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg,
			New(func(c *testConfig) error { return c.setValue(5) }),
			New(func(c *testConfig) error { return c.setValue(-1) }),
			NoError(func(c *testConfig) { c.name = "should not be set" }),
		)

		require.Error(t, err)
		require.Equal(t, 5, cfg.value, "first option applied")
		require.Empty(t, cfg.name, "options after the failure must not run")
	})

	t.Run("empty options slice is a no-op", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, testConfig{}, *cfg)
	})
}
