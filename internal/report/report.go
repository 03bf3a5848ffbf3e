// Package report renders check outcomes in the formats accepted by --format.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/projcheck/internal/config"
	"github.com/harrison/projcheck/internal/models"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Summary is the serializable view of a check run
type Summary struct {
	Root         string   `yaml:"root"`
	Patterns     []string `yaml:"patterns"`
	Manifests    int      `yaml:"manifests"`
	Scanned      int      `yaml:"scanned"`
	MissingCount int      `yaml:"missing_count"`
	Missing      []string `yaml:"missing"`
}

// NewSummary builds a Summary from a finished check
func NewSummary(root string, patterns []string, outcome models.Outcome) Summary {
	missing := make([]string, 0, len(outcome.Missing))
	for _, m := range outcome.Missing {
		missing = append(missing, m.Path)
	}
	if patterns == nil {
		patterns = []string{}
	}

	return Summary{
		Root:         root,
		Patterns:     patterns,
		Manifests:    outcome.Manifests,
		Scanned:      outcome.Scanned,
		MissingCount: len(missing),
		Missing:      missing,
	}
}

// WriteUsage prints the two-line usage text
func WriteUsage(w io.Writer, program string) error {
	_, err := fmt.Fprintf(w, "Usage: %s <root> [pattern ...]\nExample: %s Development/Src \"*.uc\"\n", program, program)
	return err
}

// Write renders summary to w in the given format
func Write(w io.Writer, format string, summary Summary) error {
	switch format {
	case config.FormatText, "":
		return writeText(w, summary)
	case config.FormatYAML:
		return writeYAML(w, summary)
	case config.FormatMarkdown:
		_, err := io.WriteString(w, markdown(summary))
		return err
	case config.FormatHTML:
		return writeHTML(w, summary)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// Render returns the report as bytes, for writing to a file
func Render(format string, summary Summary) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, summary); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeText prints one "MissingFile:" line per miss and the trailing count.
// A clean run prints nothing.
func writeText(w io.Writer, summary Summary) error {
	for _, path := range summary.Missing {
		if _, err := fmt.Fprintf(w, "MissingFile: %s\n", path); err != nil {
			return err
		}
	}
	if summary.MissingCount > 0 {
		if _, err := fmt.Fprintf(w, "Found %d missing files\n", summary.MissingCount); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, summary Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return enc.Close()
}

func markdown(summary Summary) string {
	var b strings.Builder

	b.WriteString("# Project manifest check\n\n")
	fmt.Fprintf(&b, "- Root: `%s`\n", summary.Root)
	fmt.Fprintf(&b, "- Patterns: %s\n", formatPatterns(summary.Patterns))
	fmt.Fprintf(&b, "- Manifests: %d\n", summary.Manifests)
	fmt.Fprintf(&b, "- Files scanned: %d\n", summary.Scanned)
	fmt.Fprintf(&b, "- Missing files: %d\n", summary.MissingCount)

	if summary.MissingCount == 0 {
		b.WriteString("\nAll matched files are referenced by a manifest.\n")
		return b.String()
	}

	b.WriteString("\n## Missing files\n\n")
	for _, path := range summary.Missing {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}
	return b.String()
}

func formatPatterns(patterns []string) string {
	if len(patterns) == 0 {
		return "(none)"
	}
	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = "`" + p + "`"
	}
	return strings.Join(quoted, ", ")
}

func writeHTML(w io.Writer, summary Summary) error {
	if err := goldmark.Convert([]byte(markdown(summary)), w); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}
