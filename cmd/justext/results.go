package main

import (
	"fmt"

	"github.com/fwojciec/justext"
)

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	filter := justext.CleanedDocumentFilter{Limit: c.Limit}
	if c.Query != "" {
		filter.QueryID = &c.Query
	}
	if c.Engine != "" {
		filter.Engine = &c.Engine
	}

	docs, err := deps.Documents.FindCleanedDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No cleaned documents found. Use 'justext clean --index' to record some.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %3d  %s  %s  %d chars  %d/%d blocks\n",
			d.QueryID, d.Rank, d.ClueWebID, d.Engine, d.Length, d.Retained, d.Blocks)
	}

	return nil
}
