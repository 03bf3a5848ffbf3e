package models

// OutcomeKind classifies how a check run ended
type OutcomeKind int

const (
	OutcomeUsage        OutcomeKind = iota // No arguments were given; usage was printed
	OutcomeSuccess                         // Every matched file is referenced by a manifest
	OutcomeMissingFiles                    // At least one matched file is unreferenced
)

// maxExitCode is the largest status a POSIX process can report without wrapping
const maxExitCode = 255

// String returns the lowercase name of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUsage:
		return "usage"
	case OutcomeSuccess:
		return "success"
	case OutcomeMissingFiles:
		return "missing_files"
	default:
		return "unknown"
	}
}

// Outcome is the result of a check run. The entry point translates it into
// console output and a process exit code.
type Outcome struct {
	Kind      OutcomeKind // How the run ended
	Missing   []FileMatch // Matched files not referenced by any manifest, in scan order
	Scanned   int         // Number of files matched by the user patterns
	Manifests int         // Number of manifest files folded into the corpus
}

// UsageOutcome returns the outcome for an invocation without arguments
func UsageOutcome() Outcome {
	return Outcome{Kind: OutcomeUsage}
}

// Count returns the number of missing files
func (o Outcome) Count() int {
	return len(o.Missing)
}

// ExitCode returns the process exit status for the outcome.
// Missing files map to their count, capped at 255 so that large counts never
// wrap around to a zero status.
func (o Outcome) ExitCode() int {
	if o.Kind != OutcomeMissingFiles {
		return 0
	}
	n := o.Count()
	if n > maxExitCode {
		return maxExitCode
	}
	return n
}
