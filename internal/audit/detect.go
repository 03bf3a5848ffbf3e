package audit

import (
	"strings"

	"github.com/harrison/projcheck/internal/models"
)

// Detect returns the files whose lowercased name does not occur in corpus.
// corpus must already be lowercased. Misses keep the order of matches.
func Detect(matches []models.FileMatch, corpus string) models.Outcome {
	outcome := models.Outcome{
		Kind:    models.OutcomeSuccess,
		Scanned: len(matches),
	}

	for _, match := range matches {
		if !strings.Contains(corpus, strings.ToLower(match.Name)) {
			outcome.Missing = append(outcome.Missing, match)
		}
	}

	if len(outcome.Missing) > 0 {
		outcome.Kind = models.OutcomeMissingFiles
	}
	return outcome
}
