package main

import (
	"github.com/fwojciec/justext/pipeline"
)

// Run executes the prune command.
func (c *PruneCmd) Run(deps *Dependencies) error {
	stage := &pipeline.PruneStage{
		Crop:     c.Crop,
		CropSize: c.CropSize,
	}
	return runPipeline(deps, c.Input, c.Output, c.Concurrency, stage)
}
