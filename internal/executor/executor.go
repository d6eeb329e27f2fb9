// Package executor runs independent generation jobs concurrently.
//
// Artifacts share nothing but the read-only bucket, and each one stages to its
// own file, so jobs need no coordination beyond a worker limit. The first job
// to fail cancels the rest.
package executor

import (
	"context"
	"fmt"

	"github.com/cianwilson/TerraFERMA/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of generation work, usually producing one file.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Executor runs jobs on a bounded number of workers.
type Executor struct {
	workers int
}

// New returns an Executor running at most workers jobs at a time. A value
// below one means one.
func New(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers}
}

// Execute runs every job and waits for all of them. It returns the first
// error, annotated with the failing job's name.
func (e *Executor) Execute(ctx context.Context, jobs []Job) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting.", "jobs", len(jobs), "workers", e.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jobCtx, jobLogger := ctxlog.With(gctx, "job", job.Name)
			jobLogger.Debug("Job started.")
			if err := job.Run(jobCtx); err != nil {
				jobLogger.Error("Job failed.", "error", err)
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			jobLogger.Debug("Job finished.")
			return nil
		})
	}

	return g.Wait()
}
