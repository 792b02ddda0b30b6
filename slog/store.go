package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Ensure LoggingContainerStore implements justext.ContainerStore.
var _ justext.ContainerStore = (*LoggingContainerStore)(nil)

// LoggingContainerStore wraps a ContainerStore with logging.
type LoggingContainerStore struct {
	next   justext.ContainerStore
	logger *slog.Logger
}

// NewLoggingContainerStore creates a new LoggingContainerStore.
func NewLoggingContainerStore(next justext.ContainerStore, logger *slog.Logger) *LoggingContainerStore {
	return &LoggingContainerStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingContainerStore) Save(ctx context.Context, c *justext.QueryResultContainer) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save container",
			"qid", c.QID,
			"results", len(c.RankedResults),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, c)
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingContainerStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit containers", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingContainerStore) Abort() (err error) {
	defer func(begin time.Time) {
		s.logger.Warn("abort containers", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Abort()
}
