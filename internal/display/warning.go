package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
	Color      bool     // Render in yellow
}

// Display writes the formatted warning to out
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	yellow := color.New(color.FgYellow)
	if w.Color {
		yellow.EnableColor()
	} else {
		yellow.DisableColor()
	}
	fmt.Fprint(out, yellow.Sprint(b.String()))
}

// NoMatchesWarning builds the warning shown when no file under root matched
// any of the patterns
func NoMatchesWarning(root string, patterns []string, colored bool) Warning {
	return Warning{
		Title:      fmt.Sprintf("No files under %s matched the given patterns", root),
		Message:    fmt.Sprintf("Nothing was checked against the manifests (patterns: %s)", strings.Join(patterns, " ")),
		Suggestion: "Quote patterns such as \"*.uc\" so the shell does not expand them",
		Color:      colored,
	}
}
