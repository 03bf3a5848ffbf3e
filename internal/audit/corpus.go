package audit

import (
	"fmt"
	"strings"

	"github.com/harrison/projcheck/internal/config"
	"github.com/harrison/projcheck/internal/fileutil"
	"github.com/harrison/projcheck/internal/models"
)

// Corpus is the lowercased text of every manifest under the scan root
type Corpus struct {
	Text      string             // Concatenated manifest contents, lowercased
	Manifests []models.FileMatch // Manifests folded into Text, in scan order
}

// BuildCorpus reads every manifest (*.vcproj) under the scanner's root and
// joins their contents without separators. Any unreadable manifest fails the
// whole build; no partial corpus is returned.
func BuildCorpus(scanner *fileutil.Scanner, excludeDirs []string) (*Corpus, error) {
	manifests, err := scanner.Scan(fileutil.ScanOptions{
		Patterns:    []string{config.ManifestPattern()},
		ExcludeDirs: excludeDirs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find manifests: %w", err)
	}

	var b strings.Builder
	for _, manifest := range manifests {
		data, err := scanner.ReadFile(manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		b.Write(data)
	}

	return &Corpus{
		Text:      strings.ToLower(b.String()),
		Manifests: manifests,
	}, nil
}

