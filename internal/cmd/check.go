package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/projcheck/internal/audit"
	"github.com/harrison/projcheck/internal/config"
	"github.com/harrison/projcheck/internal/display"
	"github.com/harrison/projcheck/internal/fileutil"
	"github.com/harrison/projcheck/internal/filelock"
	"github.com/harrison/projcheck/internal/logger"
	"github.com/harrison/projcheck/internal/models"
	"github.com/harrison/projcheck/internal/report"
	"github.com/spf13/cobra"
)

// checkCommand implements the root command logic
func checkCommand(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if len(args) > 0 {
		var err error
		cfg, err = configFromCommand(cmd, args)
		if err != nil {
			return err
		}
	}

	outcome, err := runCheck(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if code := outcome.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// configFromCommand resolves positional arguments and changed flags into a
// validated Config
func configFromCommand(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.FromArgs(args)
	if err != nil {
		return nil, err
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	outputFlag, _ := cmd.Flags().GetString("output")
	excludeDirs, _ := cmd.Flags().GetStringArray("exclude-dir")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	noColorFlag, _ := cmd.Flags().GetBool("no-color")

	// Build flag pointers for merge (only changed values)
	var formatPtr, outputPtr, logLevelPtr *string
	var noColorPtr *bool
	if cmd.Flags().Changed("format") {
		formatPtr = &formatFlag
	}
	if cmd.Flags().Changed("output") {
		outputPtr = &outputFlag
	}
	if cmd.Flags().Changed("log-level") {
		logLevelPtr = &logLevelFlag
	}
	if cmd.Flags().Changed("no-color") {
		noColorPtr = &noColorFlag
	}
	cfg.MergeWithFlags(formatPtr, outputPtr, excludeDirs, logLevelPtr, noColorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runCheck performs the check described by cfg and writes its outcome.
// A nil cfg means no arguments were given and yields the usage outcome
// without touching the filesystem.
func runCheck(cfg *config.Config, out io.Writer, errOut io.Writer) (models.Outcome, error) {
	if cfg == nil {
		outcome := models.UsageOutcome()
		return outcome, writeOutcome(outcome, nil, nil, out)
	}

	var log *logger.ConsoleLogger
	if cfg.NoColor {
		log = logger.NewConsoleLoggerWithColor(errOut, cfg.LogLevel, false)
	} else {
		log = logger.NewConsoleLogger(errOut, cfg.LogLevel)
	}

	checker := audit.NewChecker(fileutil.NewOSScanner(cfg.Root), log)
	outcome, err := checker.Check(cfg.Patterns, cfg.ExcludeDirs)
	if err != nil {
		return models.Outcome{}, err
	}

	if outcome.Scanned == 0 && len(cfg.Patterns) > 0 {
		warning := display.NoMatchesWarning(cfg.Root, cfg.Patterns, log.ColorEnabled())
		warning.Display(errOut)
	}

	if err := writeOutcome(outcome, cfg, log, out); err != nil {
		return models.Outcome{}, err
	}
	return outcome, nil
}

// writeOutcome renders outcome to out, or to cfg.OutputPath when set
func writeOutcome(outcome models.Outcome, cfg *config.Config, log *logger.ConsoleLogger, out io.Writer) error {
	switch outcome.Kind {
	case models.OutcomeUsage:
		return report.WriteUsage(out, programName)
	case models.OutcomeSuccess, models.OutcomeMissingFiles:
	default:
		return fmt.Errorf("unknown outcome %s", outcome.Kind)
	}

	summary := report.NewSummary(cfg.Root, cfg.Patterns, outcome)

	if cfg.OutputPath == "" {
		if err := report.Write(out, cfg.Format, summary); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	data, err := report.Render(cfg.Format, summary)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := filelock.LockAndWrite(cfg.OutputPath, data); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", cfg.OutputPath, err)
	}
	log.LogInfo(fmt.Sprintf("Report written to %s", cfg.OutputPath))

	return nil
}
