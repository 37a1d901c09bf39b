// Package result implements the violation collector and the read-only
// result views built from it after analysis completes.
package result

import (
	"sync"

	"github.com/ludo-technologies/jsvet/domain"
)

// Collector is the single sink that accumulates violations and hard errors
// during the analysis phase. It is created once per run, written to only
// while the analysis engine executes, and frozen by BuildResults.
//
// Record and RecordError are safe for concurrent use; the analysis engine
// parallelizes across files and all workers share one Collector.
type Collector struct {
	mu         sync.Mutex
	violations []domain.Violation
	errorCount int
	frozen     bool
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends a violation to the log, preserving insertion order
func (c *Collector) Record(v domain.Violation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return
	}
	c.violations = append(c.violations, v)
}

// RecordError marks that a hard analysis error occurred, independent of
// any violation content
func (c *Collector) RecordError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return
	}
	c.errorCount++
}

// ErrorCount returns the number of hard analysis errors recorded so far
func (c *Collector) ErrorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorCount
}

// BuildResults freezes the collector and returns the results view. When
// deduplicate is true the unique view is returned, otherwise the raw view.
// It must be called exactly once, after the analysis phase has completed;
// later appends are ignored.
func (c *Collector) BuildResults(deduplicate bool) domain.Results {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true

	hasErrors := c.errorCount > 0
	if deduplicate {
		return newUniqueResults(c.violations, hasErrors)
	}
	return newRawResults(c.violations, hasErrors)
}
