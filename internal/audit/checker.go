// Package audit finds files on disk that no project manifest mentions.
package audit

import (
	"fmt"
	"time"

	"github.com/harrison/projcheck/internal/config"
	"github.com/harrison/projcheck/internal/fileutil"
	"github.com/harrison/projcheck/internal/models"
)

// Logger receives diagnostics from a check run
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
	LogCheckSummary(outcome models.Outcome, duration time.Duration)
}

// Checker runs the corpus build, the pattern scan and the detection in sequence
type Checker struct {
	scanner *fileutil.Scanner
	logger  Logger
}

// NewChecker creates a Checker over scanner. A nil logger is allowed.
func NewChecker(scanner *fileutil.Scanner, logger Logger) *Checker {
	return &Checker{
		scanner: scanner,
		logger:  logger,
	}
}

// Check scans for files matching patterns and reports those not referenced by
// any manifest. I/O failures are returned as errors and produce no outcome.
func (c *Checker) Check(patterns []string, excludeDirs []string) (models.Outcome, error) {
	start := time.Now()
	root := c.scanner.Root()

	c.debug(fmt.Sprintf("Building manifest corpus under %s", root))
	corpus, err := BuildCorpus(c.scanner, excludeDirs)
	if err != nil {
		return models.Outcome{}, err
	}
	c.debug(fmt.Sprintf("Loaded %d manifests (%d bytes)", len(corpus.Manifests), len(corpus.Text)))
	if c.logger != nil {
		for _, manifest := range corpus.Manifests {
			c.logger.LogTrace(fmt.Sprintf("Manifest: %s", manifest.Path))
		}
		if len(corpus.Manifests) == 0 {
			c.logger.LogWarn(fmt.Sprintf("No manifest files found under %s (%s); every matched file will be reported missing",
				root, config.ManifestPattern()))
		}
	}

	c.debug(fmt.Sprintf("Scanning %s for %v", root, patterns))
	matches, err := c.scanner.Scan(fileutil.ScanOptions{
		Patterns:    patterns,
		ExcludeDirs: excludeDirs,
	})
	if err != nil {
		return models.Outcome{}, fmt.Errorf("failed to scan for source files: %w", err)
	}

	outcome := Detect(matches, corpus.Text)
	outcome.Manifests = len(corpus.Manifests)

	if c.logger != nil {
		c.logger.LogCheckSummary(outcome, time.Since(start))
	}
	return outcome, nil
}

func (c *Checker) debug(message string) {
	if c.logger != nil {
		c.logger.LogDebug(message)
	}
}
