package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/cianwilson/TerraFERMA/internal/codegen"
	"github.com/cianwilson/TerraFERMA/internal/ctxlog"
	"github.com/cianwilson/TerraFERMA/internal/executor"
	"github.com/cianwilson/TerraFERMA/internal/registry"
	"github.com/cianwilson/TerraFERMA/internal/report"
	"github.com/cianwilson/TerraFERMA/internal/writer"
)

// artifacts are the dispatch sources generated for every bucket, in the order
// their jobs are scheduled.
var artifacts = []*codegen.Artifact{
	codegen.SystemFunctionals,
	codegen.SystemSolvers,
	codegen.Visualization,
	codegen.SystemExpressions,
}

// Run loads the options, validates their symbols and, unless only a check
// was requested, generates every source file.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.", "options", a.config.OptionsPath)

	b, err := a.loader.Load(ctx, a.config.OptionsPath)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}
	a.logger.Debug("Options loaded.", "meshes", len(b.Meshes), "systems", len(b.Systems))

	if err := a.validate(b); err != nil {
		return err
	}
	if a.config.CheckOnly {
		a.logger.Info("Check only, no files generated.")
		return nil
	}

	rep, err := a.generate(ctx, b)
	if err != nil {
		return err
	}

	if a.config.ReportPath != "" {
		if err := a.writeReport(ctx, rep); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// validate logs every symbol violation of b and returns the aggregate error.
func (a *App) validate(b *bucket.Bucket) error {
	result := registry.Check(b)
	for _, msg := range result.Diagnostics() {
		a.logger.Error(msg)
	}
	if err := result.Err(); err != nil {
		return err
	}
	a.logger.Info("UFL symbols validated.", "symbols", len(result.Symbols))
	return nil
}

// generate runs one job per generated file and collects their outcomes.
func (a *App) generate(ctx context.Context, b *bucket.Bucket) (*report.Report, error) {
	w := writer.New(a.fs, a.config.OutputDir)
	rep := report.New(b)
	var mu sync.Mutex

	commit := func(ctx context.Context, doc *codegen.Document) error {
		outcome, err := w.Commit(ctx, doc.Filename, doc.String())
		if err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Info("Generated file committed.", "file", doc.Filename, "outcome", outcome.String())
		mu.Lock()
		rep.Record(doc.Filename, outcome.String())
		mu.Unlock()
		return nil
	}

	var jobs []executor.Job
	for _, art := range artifacts {
		art := art
		jobs = append(jobs, executor.Job{
			Name: art.Filename,
			Run: func(ctx context.Context) error {
				res := art.Build(b)
				for _, d := range res.Duplicates {
					ctxlog.FromContext(ctx).Warn("Duplicate dispatch key, only the first branch is reachable.",
						"function", d.Function, "key", d.Key)
				}
				return commit(ctx, res.Document)
			},
		})
	}
	for _, mesh := range b.Meshes {
		doc := codegen.VisualizationUFL(b, mesh)
		jobs = append(jobs, executor.Job{
			Name: doc.Filename,
			Run:  func(ctx context.Context) error { return commit(ctx, doc) },
		})
	}

	headers := make(map[string]bool)
	for _, sys := range b.Systems {
		for _, expr := range sys.CppExpressions() {
			doc := codegen.ExpressionHeader(expr)
			if headers[doc.Filename] {
				a.logger.Warn("Duplicate C++ expression, header generated once.", "file", doc.Filename)
				continue
			}
			headers[doc.Filename] = true
			jobs = append(jobs, executor.Job{
				Name: doc.Filename,
				Run:  func(ctx context.Context) error { return commit(ctx, doc) },
			})
		}
	}

	a.logger.Info("Generating sources.", "files", len(jobs), "output_dir", a.config.OutputDir)
	if err := executor.New(a.config.WorkerCount).Execute(ctx, jobs); err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	return rep, nil
}

func (a *App) writeReport(ctx context.Context, rep *report.Report) error {
	data, err := rep.Marshal()
	if err != nil {
		return err
	}
	w := writer.New(a.fs, filepath.Dir(a.config.ReportPath))
	outcome, err := w.Commit(ctx, filepath.Base(a.config.ReportPath), string(data))
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Info("Report committed.", "file", a.config.ReportPath, "outcome", outcome.String())
	return nil
}
