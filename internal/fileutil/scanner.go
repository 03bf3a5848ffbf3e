package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/harrison/projcheck/internal/models"
)

// walkRoot is the root of the billy filesystem, which is chrooted at the scan root
const walkRoot = string(filepath.Separator)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Patterns are glob patterns matched against bare filenames, tested in order
	Patterns []string
	// ExcludeDirs is a list of directory names to prune (e.g., ".git", "Intermediate")
	ExcludeDirs []string
}

// Scanner walks a directory tree through a billy filesystem rooted at that tree
type Scanner struct {
	fs   billy.Filesystem
	root string
}

// NewScanner creates a Scanner over fs, which must be rooted at root.
// Reported paths are root joined with the path relative to it.
func NewScanner(fs billy.Filesystem, root string) *Scanner {
	return &Scanner{
		fs:   fs,
		root: root,
	}
}

// NewOSScanner creates a Scanner over the OS filesystem at root
func NewOSScanner(root string) *Scanner {
	return NewScanner(osfs.New(root), root)
}

// Root returns the scan root as given by the caller
func (s *Scanner) Root() string {
	return s.root
}

// Scan recursively collects every file whose bare name matches one of the
// patterns. Patterns are tested in order and the first match wins, so a file
// is reported at most once. Matches are returned in traversal order.
// Any traversal error aborts the scan.
func (s *Scanner) Scan(opts ScanOptions) ([]models.FileMatch, error) {
	info, err := s.fs.Stat(walkRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", s.root)
	}

	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	matches := make([]models.FileMatch, 0)

	err = util.Walk(s.fs, walkRoot, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", s.displayPath(path), err)
		}

		if path == walkRoot {
			return nil
		}

		if fi.IsDir() {
			if excludeMap[fi.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		name := fi.Name()
		if MatchAny(opts.Patterns, name) {
			matches = append(matches, models.FileMatch{
				Name: name,
				Path: s.displayPath(path),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return matches, nil
}

// ReadFile reads the whole content of a file previously returned by Scan
func (s *Scanner) ReadFile(match models.FileMatch) ([]byte, error) {
	rel, err := filepath.Rel(s.root, match.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", match.Path, err)
	}

	data, err := util.ReadFile(s.fs, filepath.Join(walkRoot, rel))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", match.Path, err)
	}
	return data, nil
}

// displayPath maps a path inside the chrooted filesystem back onto the scan root
func (s *Scanner) displayPath(path string) string {
	rel := strings.TrimPrefix(path, walkRoot)
	return filepath.Join(s.root, rel)
}

// MatchAny reports whether name matches at least one of the glob patterns
func MatchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ValidatePatterns returns an error naming the first malformed pattern
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid pattern %q", pattern)
		}
	}
	return nil
}
