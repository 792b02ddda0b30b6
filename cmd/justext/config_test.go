package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/justext"
	main "github.com/fwojciec/justext/cmd/justext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "justext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults with file values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "lengthLow: 50\nmaxLinkDensity: 0.4\n")

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.LengthLow)
		assert.InDelta(t, 0.4, cfg.MaxLinkDensity, 1e-9)
		assert.Equal(t, justext.DefaultLengthHigh, cfg.LengthHigh)
		assert.Equal(t, justext.DefaultMaxHeadingDistance, cfg.MaxHeadingDistance)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, justext.ENOTFOUND, justext.ErrorCode(err))
	})

	t.Run("returns invalid for malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "lengthLow: [not a number\n")

		_, err := main.LoadConfig(path)

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})

	t.Run("validates thresholds", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "lengthLow: 300\nlengthHigh: 100\n")

		_, err := main.LoadConfig(path)

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})
}

func TestThresholdFlags_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults without file or flags", func(t *testing.T) {
		t.Parallel()

		flags := &main.ThresholdFlags{}

		cfg, err := flags.Resolve()

		require.NoError(t, err)
		assert.Equal(t, justext.DefaultConfig(), cfg)
	})

	t.Run("flags override file values", func(t *testing.T) {
		t.Parallel()

		lengthLow := 20
		headingDistance := 0
		flags := &main.ThresholdFlags{
			Config:             writeConfig(t, "lengthLow: 50\nlengthHigh: 150\n"),
			LengthLow:          &lengthLow,
			MaxHeadingDistance: &headingDistance,
		}

		cfg, err := flags.Resolve()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.LengthLow)
		assert.Equal(t, 150, cfg.LengthHigh)
		assert.Equal(t, 0, cfg.MaxHeadingDistance)
	})

	t.Run("rejects overrides that break ordering", func(t *testing.T) {
		t.Parallel()

		low := 0.5
		flags := &main.ThresholdFlags{StopwordsLow: &low}

		_, err := flags.Resolve()

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})
}
