package result

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/ludo-technologies/jsvet/domain"
)

func makeViolation(rule, file string, line int) domain.Violation {
	return domain.Violation{
		RuleID:   rule,
		Priority: domain.PriorityMedium,
		Location: domain.SourceLocation{FilePath: file, StartLine: line, StartColumn: 1},
		Message:  "test violation",
	}
}

func TestCollector_RawResults(t *testing.T) {
	c := NewCollector()
	v := makeViolation("no-eval", "a.js", 1)

	c.Record(v)
	c.Record(v)
	c.Record(makeViolation("no-eval", "a.js", 2))

	results := c.BuildResults(false)
	if results.NumberOfViolations() != 3 {
		t.Errorf("Expected 3 violations in raw view, got %d", results.NumberOfViolations())
	}
}

func TestCollector_UniqueResults(t *testing.T) {
	c := NewCollector()
	v := makeViolation("no-eval", "a.js", 1)

	c.Record(v)
	c.Record(v)
	c.Record(makeViolation("no-eval", "a.js", 2))

	results := c.BuildResults(true)
	if results.NumberOfViolations() != 2 {
		t.Errorf("Expected 2 violations in unique view, got %d", results.NumberOfViolations())
	}
}

func TestCollector_UniquePreservesFirstSeenOrder(t *testing.T) {
	c := NewCollector()
	first := makeViolation("no-with", "a.js", 1)
	second := makeViolation("no-eval", "b.js", 5)

	c.Record(first)
	c.Record(second)
	c.Record(first)

	results := c.BuildResults(true)
	all := results.AllViolations()
	if len(all) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(all))
	}
	if all[0].Key() != first.Key() || all[1].Key() != second.Key() {
		t.Error("Unique view should preserve first-seen order")
	}
}

func TestCollector_PriorityCounts(t *testing.T) {
	c := NewCollector()
	for i, p := range []int{domain.PriorityHigh, domain.PriorityHigh, domain.PriorityLow} {
		v := makeViolation("rule", "a.js", i+1)
		v.Priority = p
		c.Record(v)
	}

	results := c.BuildResults(false)
	if got := results.NumberOfViolationsWithPriority(domain.PriorityHigh); got != 2 {
		t.Errorf("Expected 2 P1 violations, got %d", got)
	}
	if got := results.NumberOfViolationsWithPriority(domain.PriorityMedium); got != 0 {
		t.Errorf("Expected 0 P2 violations, got %d", got)
	}
	if got := results.NumberOfViolationsWithPriority(domain.PriorityLow); got != 1 {
		t.Errorf("Expected 1 P3 violation, got %d", got)
	}
}

func TestCollector_HasErrors(t *testing.T) {
	c := NewCollector()
	if c.BuildResults(false).HasErrors() {
		t.Error("Expected no errors on a fresh collector")
	}

	c2 := NewCollector()
	c2.RecordError()
	if c2.ErrorCount() != 1 {
		t.Errorf("Expected error count 1, got %d", c2.ErrorCount())
	}
	if !c2.BuildResults(false).HasErrors() {
		t.Error("Expected HasErrors after RecordError")
	}
}

func TestCollector_FrozenAfterBuild(t *testing.T) {
	c := NewCollector()
	c.Record(makeViolation("no-eval", "a.js", 1))

	results := c.BuildResults(false)
	c.Record(makeViolation("no-eval", "a.js", 2))

	if results.NumberOfViolations() != 1 {
		t.Errorf("Results snapshot changed after build: %d", results.NumberOfViolations())
	}
	// Later builds must not see records attempted after freezing either
	if got := c.BuildResults(false).NumberOfViolations(); got != 1 {
		t.Errorf("Expected collector frozen after build, got %d violations", got)
	}
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				file := fmt.Sprintf("file%d.js", worker)
				c.Record(makeViolation("no-eval", file, j))
			}
		}(i)
	}
	wg.Wait()

	results := c.BuildResults(false)
	if results.NumberOfViolations() != 800 {
		t.Errorf("Expected 800 violations, got %d", results.NumberOfViolations())
	}
}

func TestCollector_DedupIdempotent(t *testing.T) {
	c := NewCollector()
	c.Record(makeViolation("no-eval", "a.js", 1))
	c.Record(makeViolation("no-with", "b.js", 3))
	c.Record(makeViolation("no-eval", "a.js", 1))
	c.Record(makeViolation("no-eval", "a.js", 2))

	unique := c.BuildResults(true).AllViolations()

	// Deduplicating an already-unique sequence must change nothing
	seen := make(map[any]struct{}, len(unique))
	again := make([]domain.Violation, 0, len(unique))
	for _, v := range unique {
		if _, ok := seen[v.Key()]; ok {
			continue
		}
		seen[v.Key()] = struct{}{}
		again = append(again, v)
	}

	if !reflect.DeepEqual(unique, again) {
		t.Errorf("Expected unique view to be a fixed point of deduplication:\n%v\nvs\n%v", unique, again)
	}
}
