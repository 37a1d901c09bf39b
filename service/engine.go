package service

import (
	"context"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ludo-technologies/jsvet/domain"
	"github.com/ludo-technologies/jsvet/internal/parser"
	"github.com/ludo-technologies/jsvet/internal/result"
)

// DefaultEngineTimeout bounds a single analysis phase
const DefaultEngineTimeout = 5 * time.Minute

// Engine runs the registered rules over source files and records findings
// into the collector. Files are analyzed in parallel; the collector is the
// single sink all workers write to.
//
// A file that cannot be read or parsed is recorded as a hard analysis
// error and skipped; it does not abort the run.
type Engine struct {
	collector *result.Collector
	progress  domain.ProgressManager
	jobs      int
	timeout   time.Duration
}

// NewEngine creates an engine writing into the given collector
func NewEngine(collector *result.Collector) *Engine {
	return &Engine{
		collector: collector,
		jobs:      runtime.NumCPU(),
		timeout:   DefaultEngineTimeout,
	}
}

// NewEngineWithProgress creates an engine with progress reporting
func NewEngineWithProgress(collector *result.Collector, pm domain.ProgressManager, jobs int) *Engine {
	e := NewEngine(collector)
	e.progress = pm
	if jobs > 0 {
		e.jobs = jobs
	}
	return e
}

// Run analyzes the given files with the given rules
func (e *Engine) Run(ctx context.Context, files []string, rules []domain.Rule) error {
	if len(files) == 0 {
		return nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if e.progress != nil {
		task = e.progress.StartTask("Linting files", len(files))
	}
	defer task.Complete()

	g, gCtx := errgroup.WithContext(timeoutCtx)
	g.SetLimit(e.jobs)

	for _, file := range files {
		file := file
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			e.lintFile(file, rules)
			task.Increment(1)
			return nil
		})
	}

	return g.Wait()
}

// lintFile analyzes one file and records its findings
func (e *Engine) lintFile(path string, rules []domain.Rule) {
	source, err := os.ReadFile(path)
	if err != nil {
		e.collector.RecordError()
		return
	}

	ast, err := parser.ParseForLanguage(path, source)
	if err != nil {
		e.collector.RecordError()
		return
	}

	file := &domain.SourceFile{
		Path:   path,
		Source: source,
		AST:    ast,
	}

	for _, rule := range rules {
		for _, v := range rule.Apply(file) {
			e.collector.Record(v)
		}
	}
}
