package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Ensure LoggingExtractor implements justext.Extractor.
var _ justext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   justext.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor for the named engine.
func NewLoggingExtractor(next justext.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract delegates to the wrapped extractor and logs block counts.
func (e *LoggingExtractor) Extract(html string) (result *justext.ExtractResult, err error) {
	defer func(begin time.Time) {
		var blocks, retained, bytes int
		if result != nil {
			blocks = len(result.Blocks)
			retained = result.Retained()
			bytes = len(result.ContentHTML)
		}
		e.logger.Debug("extract",
			"engine", e.engine,
			"blocks", blocks,
			"retained", retained,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
