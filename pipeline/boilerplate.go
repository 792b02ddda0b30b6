package pipeline

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/justext"
)

// Ensure BoilerplateStage implements Stage at compile time.
var _ Stage = (*BoilerplateStage)(nil)

// SeenFilter reports whether a key was seen before, recording it.
type SeenFilter interface {
	Seen(key string) bool
}

// BoilerplateStage replaces the plain text of every ranked result with the
// minimal HTML extracted from its original HTML.
type BoilerplateStage struct {
	Extractor justext.Extractor

	// Engine names the extractor in the cleaned-document index.
	Engine string

	// KeepOriginalHTML retains OriginalHTML after cleaning.
	KeepOriginalHTML bool

	// Documents, if set, records every cleaned document.
	Documents justext.CleanedDocumentService

	// Seen, if set, counts cleaned documents whose content repeats
	// anywhere in the corpus.
	Seen SeenFilter
}

// Name returns "boilerplate".
func (s *BoilerplateStage) Name() string {
	return "boilerplate"
}

// Process cleans each ranked result of c.
// Results without original HTML are left as they are.
func (s *BoilerplateStage) Process(ctx context.Context, c *justext.QueryResultContainer) (Stats, error) {
	var stats Stats

	for _, r := range c.RankedResults {
		stats.Documents++

		// Some crawl records are corrupted and carry no HTML.
		if r.OriginalHTML == "" {
			stats.Empty++
			continue
		}

		extracted, err := s.Extractor.Extract(r.OriginalHTML)
		if err != nil {
			stats.Failed++
			continue
		}

		r.PlainText = extracted.ContentHTML
		if r.PlainText == "" {
			stats.Empty++
			continue
		}
		stats.Cleaned++

		hash := ComputeHash(r.PlainText)
		if s.Seen != nil && s.Seen.Seen(hash) {
			stats.Duplicates++
		}

		if s.Documents != nil {
			doc := &justext.CleanedDocument{
				QueryID:     c.QID,
				ClueWebID:   r.ClueWebID,
				Rank:        r.Rank,
				Engine:      s.Engine,
				Content:     r.PlainText,
				ContentHash: hash,
				Length:      utf8.RuneCountInString(extracted.Text),
				Blocks:      len(extracted.Blocks),
				Retained:    extracted.Retained(),
			}
			if err := s.Documents.CreateCleanedDocument(ctx, doc); err != nil {
				return stats, fmt.Errorf("record %s: %w", r.ClueWebID, err)
			}
		}
	}

	if !s.KeepOriginalHTML {
		for _, r := range c.RankedResults {
			r.OriginalHTML = ""
		}
	}

	return stats, nil
}
