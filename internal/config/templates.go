package config

import "fmt"

// Strictness selects a threshold preset for generated configurations
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// thresholdPreset returns the per-priority ceilings for a strictness level
func thresholdPreset(s Strictness) (maxP1, maxP2, maxP3 int) {
	switch s {
	case StrictnessRelaxed:
		return 5, 30, -1
	case StrictnessStrict:
		return 0, 0, 5
	default:
		return DefaultMaxPriority1, DefaultMaxPriority2, DefaultMaxPriority3
	}
}

// MinimalTemplate generates a minimal configuration file content
func MinimalTemplate(strictness Strictness) string {
	maxP1, maxP2, maxP3 := thresholdPreset(strictness)
	return fmt.Sprintf(`# jsvet configuration
# Strictness: %s

rules:
  paths:
    - builtin

reporters:
  names:
    - text

thresholds:
  max_p1: %d
  max_p2: %d
  max_p3: %d
`, strictness, maxP1, maxP2, maxP3)
}

// FullTemplate generates a fully documented configuration file content
func FullTemplate(strictness Strictness) string {
	maxP1, maxP2, maxP3 := thresholdPreset(strictness)
	return fmt.Sprintf(`# jsvet configuration
# Strictness: %s

# Rule loading. The reserved path "builtin" loads the compiled-in rule
# set; additional entries are plugin artifacts loaded in order.
rules:
  paths:
    - builtin

# Report formats to emit, in output order. Available built-in formats:
# text, json, xml, yaml, html.
reporters:
  names:
    - text
  # Additional reporter plugin artifacts:
  # paths:
  #   - ./reporters/custom.so
  # Report path template. The extension is replaced by each reporter's
  # format name; leave empty to write reports to stdout.
  # output_path: reports/jsvet.txt

# Per-priority violation ceilings. The run fails when a count strictly
# exceeds its ceiling. A negative value disables the ceiling.
thresholds:
  max_p1: %d
  max_p2: %d
  max_p3: %d

results:
  # Keep duplicate findings instead of deduplicating them
  allow_duplicated_violations: false

analysis:
  include_patterns:
    - "**/*.js"
    - "**/*.ts"
    - "**/*.jsx"
    - "**/*.tsx"
    - "**/*.mjs"
    - "**/*.cjs"
    - "**/*.mts"
    - "**/*.cts"
  exclude_patterns:
    - node_modules
    - vendor
    - dist
    - build
    - coverage
    - .git
    - "*.min.js"
    - "*.bundle.js"
  recursive: true

performance:
  # Number of files analyzed concurrently; 0 uses one worker per CPU
  jobs: 0
`, strictness, maxP1, maxP2, maxP3)
}
