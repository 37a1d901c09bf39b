// Package config loads and validates the jsvet configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default per-priority violation ceilings. A negative ceiling means
// unlimited for that priority.
const (
	DefaultMaxPriority1 = 0
	DefaultMaxPriority2 = 10
	DefaultMaxPriority3 = 20
)

// BuiltinArtifactPath is the reserved plugin path for compiled-in rules
// and reporters
const BuiltinArtifactPath = "builtin"

// Config represents the main configuration structure
type Config struct {
	// Rules holds rule loading configuration
	Rules RulesConfig `json:"rules" mapstructure:"rules" yaml:"rules"`

	// Reporters holds reporter selection and output configuration
	Reporters ReportersConfig `json:"reporters" mapstructure:"reporters" yaml:"reporters"`

	// Thresholds holds the per-priority violation ceilings
	Thresholds ThresholdsConfig `json:"thresholds" mapstructure:"thresholds" yaml:"thresholds"`

	// Results holds result view configuration
	Results ResultsConfig `json:"results" mapstructure:"results" yaml:"results"`

	// Analysis holds general analysis configuration
	Analysis AnalysisConfig `json:"analysis,omitempty" mapstructure:"analysis" yaml:"analysis"`

	// Performance holds concurrency configuration
	Performance PerformanceConfig `json:"performance,omitempty" mapstructure:"performance" yaml:"performance"`
}

// RulesConfig holds configuration for rule loading
type RulesConfig struct {
	// Paths are the rule plugin artifacts to load, in order. The reserved
	// path "builtin" loads the compiled-in rule set.
	Paths []string `json:"paths" mapstructure:"paths" yaml:"paths"`
}

// ReportersConfig holds reporter selection and output configuration
type ReportersConfig struct {
	// Names are the report formats to emit, in output order
	Names []string `json:"names" mapstructure:"names" yaml:"names"`

	// Paths are additional reporter plugin artifacts to load
	Paths []string `json:"paths,omitempty" mapstructure:"paths" yaml:"paths,omitempty"`

	// OutputPath is the report path template; the extension is replaced
	// by each reporter's format name. Empty writes every report to stdout.
	OutputPath string `json:"output_path,omitempty" mapstructure:"output_path" yaml:"output_path,omitempty"`
}

// ThresholdsConfig holds the per-priority violation ceilings
type ThresholdsConfig struct {
	// MaxP1 is the ceiling for priority 1 violations; negative = unlimited
	MaxP1 int `json:"max_p1" mapstructure:"max_p1" yaml:"max_p1"`

	// MaxP2 is the ceiling for priority 2 violations; negative = unlimited
	MaxP2 int `json:"max_p2" mapstructure:"max_p2" yaml:"max_p2"`

	// MaxP3 is the ceiling for priority 3 violations; negative = unlimited
	MaxP3 int `json:"max_p3" mapstructure:"max_p3" yaml:"max_p3"`
}

// ResultsConfig holds result view configuration
type ResultsConfig struct {
	// AllowDuplicatedViolations keeps duplicate findings in the results
	// instead of deduplicating them
	AllowDuplicatedViolations bool `json:"allow_duplicated_violations" mapstructure:"allow_duplicated_violations" yaml:"allow_duplicated_violations"`
}

// AnalysisConfig holds general analysis configuration
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies gitignore-style patterns to exclude
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are analyzed recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`
}

// PerformanceConfig holds concurrency configuration
type PerformanceConfig struct {
	// Jobs is the number of files analyzed concurrently; 0 = one per CPU
	Jobs int `json:"jobs" mapstructure:"jobs" yaml:"jobs"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			Paths: []string{BuiltinArtifactPath},
		},
		Reporters: ReportersConfig{
			Names: []string{"text"},
		},
		Thresholds: ThresholdsConfig{
			MaxP1: DefaultMaxPriority1,
			MaxP2: DefaultMaxPriority2,
			MaxP3: DefaultMaxPriority3,
		},
		Results: ResultsConfig{
			AllowDuplicatedViolations: false,
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{
				"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx",
				"**/*.mjs", "**/*.cjs", "**/*.mts", "**/*.cts",
			},
			ExcludePatterns: []string{
				"node_modules",
				"vendor",
				"dist",
				"build",
				"coverage",
				".git",
				"*.min.js",
				"*.bundle.js",
			},
			Recursive: true,
		},
		Performance: PerformanceConfig{
			Jobs: 0,
		},
	}
}

// LoadConfig loads configuration from file or returns the default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context: when
// no config path is given, one is discovered by searching from the target
// upward, then the usual fallback locations.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per load avoids shared state between runs
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if len(c.Reporters.Names) == 0 {
		return fmt.Errorf("at least one reporter must be configured")
	}
	for _, name := range c.Reporters.Names {
		if name == "" {
			return fmt.Errorf("reporter names must not be empty")
		}
	}
	for _, path := range c.Rules.Paths {
		if path == "" {
			return fmt.Errorf("rule paths must not be empty")
		}
	}
	if c.Performance.Jobs < 0 {
		return fmt.Errorf("jobs cannot be negative, got %d", c.Performance.Jobs)
	}
	return nil
}

// searchConfigInDirectory searches for configuration files in one directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations. targetPath is the path being analyzed.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"jsvet.yaml",
		"jsvet.yml",
		".jsvet.yaml",
		".jsvet.yml",
		"jsvet.json",
		".jsvet.json",
	}

	// Search from the target directory upward
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "jsvet"), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", "jsvet"), candidates); config != "" {
			return config
		}
	}

	return ""
}
