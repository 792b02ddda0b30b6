// Package pipeline runs container-to-container cleaning stages over a corpus
// of query-result containers.
package pipeline

import (
	"context"
	"fmt"

	"github.com/fwojciec/justext"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of containers processed in parallel
// when Runner.Concurrency is not set.
const DefaultConcurrency = 4

// Stage transforms one container in place.
type Stage interface {
	// Name identifies the stage in logs and errors.
	Name() string

	// Process transforms c and reports what it did.
	// Per-document failures are counted in Stats, not returned.
	Process(ctx context.Context, c *justext.QueryResultContainer) (Stats, error)
}

// Stats summarizes the work done by stages.
type Stats struct {
	Containers int
	Documents  int
	Cleaned    int
	Empty      int
	Failed     int
	Removed    int
	Duplicates int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Containers += o.Containers
	s.Documents += o.Documents
	s.Cleaned += o.Cleaned
	s.Empty += o.Empty
	s.Failed += o.Failed
	s.Removed += o.Removed
	s.Duplicates += o.Duplicates
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Stats     Stats
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Runner reads every container from Source, applies Stages in order and
// saves the result to Store. The store is committed only if every
// container succeeds.
type Runner struct {
	Source      justext.ContainerSource
	Store       justext.ContainerStore
	Stages      []Stage
	Concurrency int
}

// containerResult holds the outcome of processing a single container.
type containerResult struct {
	name  string
	stats Stats
	err   error
}

// Run processes all containers. The progress callback, if provided,
// receives events as containers complete.
func (r *Runner) Run(ctx context.Context, progress ProgressFunc) (_ *Stats, err error) {
	defer func() {
		if err != nil {
			_ = r.Store.Abort()
		}
	}()

	names, err := r.Source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(names)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan containerResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, name := range names {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				result := r.processContainer(gctx, name)
				resultCh <- result
				return result.err
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var (
		stats     Stats
		completed int
		firstErr  error
	)
	for result := range resultCh {
		completed++
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Name:      result.name,
					Error:     result.err,
				})
			}
			continue
		}

		stats.Add(result.stats)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Name:      result.name,
				Stats:     result.stats,
			})
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit output: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
			Stats:     stats,
		})
	}

	return &stats, nil
}

// processContainer reads, transforms and saves a single container.
func (r *Runner) processContainer(ctx context.Context, name string) containerResult {
	result := containerResult{name: name}

	c, err := r.Source.Read(ctx, name)
	if err != nil {
		result.err = fmt.Errorf("read %s: %w", name, err)
		return result
	}

	result.stats.Containers = 1
	for _, stage := range r.Stages {
		stats, err := stage.Process(ctx, c)
		if err != nil {
			result.err = fmt.Errorf("%s %s: %w", stage.Name(), name, err)
			return result
		}
		result.stats.Add(stats)
	}

	if err := r.Store.Save(ctx, c); err != nil {
		result.err = fmt.Errorf("save %s: %w", name, err)
		return result
	}

	return result
}
