package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/bloom"
	"github.com/fwojciec/justext/fs"
	"github.com/fwojciec/justext/pipeline"
	jslog "github.com/fwojciec/justext/slog"
)

// Bloom filter sizing for duplicate detection across a corpus.
const (
	expectedDocuments = 100000
	duplicateFPRate   = 0.001
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	extractor, err := newExtractor(deps, c.Engine, c.Lang, &c.ThresholdFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	stage := &pipeline.BoilerplateStage{
		Extractor:        extractor,
		Engine:           c.Engine,
		KeepOriginalHTML: c.KeepOriginal,
		Seen:             bloom.NewFilter(expectedDocuments, duplicateFPRate),
	}
	if c.Index {
		stage.Documents = deps.Documents
	}

	return runPipeline(deps, c.Input, c.Output, c.Concurrency, stage)
}

// runPipeline applies stages to every container of input and writes the
// results to output.
func runPipeline(deps *Dependencies, input, output string, concurrency int, stages ...pipeline.Stage) error {
	output = filepath.Clean(output)

	var store justext.ContainerStore = fs.NewStore(filepath.Dir(output), filepath.Base(output), deps.Codec)
	if deps.Verbose && deps.Logger != nil {
		store = jslog.NewLoggingContainerStore(store, deps.Logger)
	}

	runner := &pipeline.Runner{
		Source:      fs.NewSource(input, deps.Codec),
		Store:       store,
		Stages:      stages,
		Concurrency: concurrency,
	}

	stats, err := runner.Run(deps.Ctx, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, pipeline.FormatStats(*stats))
	return nil
}

// progressPrinter renders pipeline progress on a single stderr line.
func progressPrinter(deps *Dependencies) pipeline.ProgressFunc {
	return func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Processing %d containers\n", e.Total)
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", e.Completed, e.Total, pipeline.TruncateName(e.Name, 40))
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "\rfailed %s: %v\n", e.Name, e.Error)
		case pipeline.ProgressFinished:
			// Clear progress line
			fmt.Fprintf(deps.Stderr, "\r%80s\r", "")
		}
	}
}
