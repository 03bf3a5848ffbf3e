// Package logger provides console diagnostics for projcheck runs.
//
// Diagnostics go to stderr so that the report on stdout stays byte-for-byte
// stable. Messages are filtered by level and colored when the destination is
// a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/projcheck/internal/models"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger writes timestamped diagnostics to a writer.
// All output is prefixed with [HH:MM:SS] timestamps.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
// Color output is enabled when the writer is a terminal.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return NewConsoleLoggerWithColor(writer, logLevel, isTerminal(writer))
}

// NewConsoleLoggerWithColor creates a ConsoleLogger with explicit color control
func NewConsoleLoggerWithColor(writer io.Writer, logLevel string, useColor bool) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: useColor,
	}
}

// ColorEnabled reports whether diagnostics are written with ANSI colors
func (cl *ConsoleLogger) ColorEnabled() bool {
	return cl.colorOutput
}

// isTerminal reports whether w is a TTY that should receive colors.
// NO_COLOR (via color.NoColor) always wins.
func isTerminal(w io.Writer) bool {
	if w == nil || color.NoColor {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// shouldLog checks if a message at the given level should be logged
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message.
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	default:
		return level
	}
}

// LogCheckSummary logs the totals of a check run at INFO level.
// Format: "[HH:MM:SS] Checked <n> files against <m> manifests: <k> missing (<duration>)"
func (cl *ConsoleLogger) LogCheckSummary(outcome models.Outcome, duration time.Duration) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	missing := fmt.Sprintf("%d missing", outcome.Count())
	if cl.colorOutput {
		if outcome.Count() > 0 {
			missing = color.New(color.FgRed).Sprint(missing)
		} else {
			missing = color.New(color.FgGreen).Sprint(missing)
		}
	}

	message := fmt.Sprintf("[%s] Checked %d files against %d manifests: %s (%s)\n",
		timestamp(), outcome.Scanned, outcome.Manifests, missing, formatDuration(duration))
	cl.writer.Write([]byte(message))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS)
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}
}

// NoOpLogger discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}

// LogCheckSummary is a no-op implementation.
func (n *NoOpLogger) LogCheckSummary(outcome models.Outcome, duration time.Duration) {}
