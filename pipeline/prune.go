package pipeline

import (
	"context"

	"github.com/fwojciec/justext"
)

// Ensure PruneStage implements Stage at compile time.
var _ Stage = (*PruneStage)(nil)

// DefaultCropSize is the number of results kept per query when cropping:
// 100 ranked results minus at most 7 empty documents in any query.
const DefaultCropSize = 93

// PruneStage removes ranked results without plain text.
type PruneStage struct {
	// Crop keeps at most CropSize results after pruning.
	Crop bool

	// CropSize defaults to DefaultCropSize when zero.
	CropSize int
}

// Name returns "prune".
func (s *PruneStage) Name() string {
	return "prune"
}

// Process drops empty results of c, preserving rank order.
func (s *PruneStage) Process(ctx context.Context, c *justext.QueryResultContainer) (Stats, error) {
	stats := Stats{Documents: len(c.RankedResults)}

	kept := c.NonEmptyResults()
	stats.Empty = len(c.RankedResults) - len(kept)

	if s.Crop {
		size := s.CropSize
		if size <= 0 {
			size = DefaultCropSize
		}
		if len(kept) > size {
			kept = kept[:size]
		}
	}

	stats.Removed = len(c.RankedResults) - len(kept)
	c.RankedResults = kept
	return stats, nil
}
