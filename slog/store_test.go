package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/mock"
	jslog "github.com/fwojciec/justext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingContainerStore(t *testing.T) {
	t.Parallel()

	t.Run("logs saved container", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var saved *justext.QueryResultContainer
		inner := &mock.ContainerStore{
			SaveFn: func(_ context.Context, c *justext.QueryResultContainer) error {
				saved = c
				return nil
			},
		}
		c := &justext.QueryResultContainer{QID: "1004", RankedResults: []*justext.RankedResult{{Rank: 1}}}

		err := jslog.NewLoggingContainerStore(inner, logger).Save(context.Background(), c)

		require.NoError(t, err)
		assert.Same(t, c, saved)
		output := buf.String()
		assert.Contains(t, output, "save container")
		assert.Contains(t, output, "qid=1004")
		assert.Contains(t, output, "results=1")
	})

	t.Run("logs commit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContainerStore{CommitFn: func() error { return nil }}

		require.NoError(t, jslog.NewLoggingContainerStore(inner, logger).Commit())

		assert.Contains(t, buf.String(), "commit containers")
	})

	t.Run("logs abort as warning with error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContainerStore{AbortFn: func() error { return errors.New("busy") }}

		err := jslog.NewLoggingContainerStore(inner, logger).Abort()

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=busy")
	})
}
