package config

import (
	"fmt"

	"github.com/harrison/projcheck/internal/fileutil"
)

// ProjectExtension is the file extension that identifies project manifests.
// It is fixed for the lifetime of the process and not configurable.
const ProjectExtension = "vcproj"

// Report formats accepted by the --format flag
const (
	FormatText     = "text"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// ManifestPattern returns the glob that selects manifest files
func ManifestPattern() string {
	return "*." + ProjectExtension
}

// Config represents the options of a single check run
type Config struct {
	// Root is the directory tree to scan
	Root string

	// Patterns are the glob patterns matched against bare filenames, in order
	Patterns []string

	// ExcludeDirs are directory names pruned from both scans
	ExcludeDirs []string

	// Format selects the report renderer (text, yaml, markdown, html)
	Format string

	// OutputPath writes the report to a file instead of stdout when set
	OutputPath string

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string

	// NoColor disables colored diagnostics
	NoColor bool
}

// DefaultConfig returns a Config with default values and no root or patterns
func DefaultConfig() *Config {
	return &Config{
		Patterns:    []string{},
		ExcludeDirs: []string{},
		Format:      FormatText,
		LogLevel:    "warn",
	}
}

// FromArgs builds a Config from positional arguments.
// The first argument is the scan root; every following argument is a pattern.
func FromArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("scan root is required")
	}

	cfg := DefaultConfig()
	cfg.Root = args[0]
	cfg.Patterns = append(cfg.Patterns, args[1:]...)
	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(format *string, outputPath *string, excludeDirs []string, logLevel *string, noColor *bool) {
	if format != nil {
		c.Format = *format
	}
	if outputPath != nil {
		c.OutputPath = *outputPath
	}
	if len(excludeDirs) > 0 {
		c.ExcludeDirs = append(c.ExcludeDirs, excludeDirs...)
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("scan root cannot be empty")
	}

	validFormats := map[string]bool{
		FormatText:     true,
		FormatYAML:     true,
		FormatMarkdown: true,
		FormatHTML:     true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q, must be one of: text, yaml, markdown, html", c.Format)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return fileutil.ValidatePatterns(c.Patterns)
}
