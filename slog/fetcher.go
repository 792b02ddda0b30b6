// Package slog provides logging decorators for justext services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/justext"
)

var _ justext.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page download of the wrapped Fetcher.
// Failed downloads are logged at warn level with their error code.
type LoggingFetcher struct {
	next   justext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next justext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"host", hostOf(rawURL),
			"url", rawURL,
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Warn("fetch failed", append(attrs, "code", justext.ErrorCode(err), "err", err)...)
			return
		}
		f.logger.Info("fetch", append(attrs, "bytes", len(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

func (f *LoggingFetcher) Close() error {
	if err := f.next.Close(); err != nil {
		f.logger.Warn("close fetcher", "err", err)
		return err
	}
	return nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "-"
	}
	return u.Host
}
