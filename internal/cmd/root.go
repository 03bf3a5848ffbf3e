package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// programName is used in usage text
const programName = "projcheck"

// NewRootCommand creates and returns the root cobra command for projcheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " <root> [pattern ...]",
		Short: "Report source files that no project manifest references",
		Long: `projcheck scans a directory tree for files whose names match the given
glob patterns and reports every file whose name does not appear in any
*.vcproj manifest found under the same tree.

Manifests are treated as plain text: a file counts as referenced when its
name occurs anywhere in a manifest, ignoring case.

The exit code is the number of missing files (capped at 255), so the
command can gate a build step directly.

Examples:
  # Check UnrealScript classes against the project files
  projcheck Development/Src "*.uc"

  # Several patterns, skipping intermediate build output
  projcheck Development/Src "*.uc" "*.uci" --exclude-dir Intermediate

  # Write a YAML report for CI artifacts
  projcheck Development/Src "*.uc" --format yaml --output reports/projcheck.yaml`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		RunE:         checkCommand,
		SilenceUsage: true,
		// main prints errors; ExitError must stay silent
		SilenceErrors: true,
	}

	cmd.Flags().String("format", "text", "Report format: text, yaml, markdown, html")
	cmd.Flags().String("output", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringArray("exclude-dir", nil, "Directory name to skip while scanning (repeatable)")
	cmd.Flags().String("log-level", "warn", "Diagnostic verbosity on stderr: trace, debug, info, warn, error")
	cmd.Flags().Bool("no-color", false, "Disable colored diagnostics")

	return cmd
}
