package result

import "github.com/ludo-technologies/jsvet/domain"

// baseResults holds the snapshot shared by both view variants
type baseResults struct {
	violations []domain.Violation
	byPriority map[int]int
	hasErrors  bool
}

func newBaseResults(violations []domain.Violation, hasErrors bool) baseResults {
	byPriority := make(map[int]int)
	for _, v := range violations {
		byPriority[v.Priority]++
	}
	return baseResults{
		violations: violations,
		byPriority: byPriority,
		hasErrors:  hasErrors,
	}
}

// NumberOfViolations returns the total violation count
func (r baseResults) NumberOfViolations() int {
	return len(r.violations)
}

// NumberOfViolationsWithPriority returns the count at the given priority
func (r baseResults) NumberOfViolationsWithPriority(priority int) int {
	return r.byPriority[priority]
}

// AllViolations returns the violations in order
func (r baseResults) AllViolations() []domain.Violation {
	return r.violations
}

// HasErrors reports whether any hard analysis error was recorded
func (r baseResults) HasErrors() bool {
	return r.hasErrors
}

// rawResults exposes the log verbatim, duplicates included
type rawResults struct {
	baseResults
}

func newRawResults(violations []domain.Violation, hasErrors bool) domain.Results {
	snapshot := make([]domain.Violation, len(violations))
	copy(snapshot, violations)
	return rawResults{newBaseResults(snapshot, hasErrors)}
}

// uniqueResults exposes a deduplicated projection of the log: one entry per
// distinct identity key, first-seen instance wins, first-seen order preserved
type uniqueResults struct {
	baseResults
}

func newUniqueResults(violations []domain.Violation, hasErrors bool) domain.Results {
	seen := make(map[any]struct{}, len(violations))
	unique := make([]domain.Violation, 0, len(violations))
	for _, v := range violations {
		key := v.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, v)
	}
	return uniqueResults{newBaseResults(unique, hasErrors)}
}
