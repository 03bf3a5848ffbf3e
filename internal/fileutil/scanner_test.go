package fileutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/harrison/projcheck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMemTree builds an in-memory tree from relative paths
func newMemTree(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/", 0755))
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, filepath.Join("/", name), []byte(content), 0644))
	}
	return fs
}

func names(matches []models.FileMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Name)
	}
	sort.Strings(out)
	return out
}

func TestScan(t *testing.T) {
	// Test tree:
	//   Engine.vcproj
	//   Classes/Actor.uc
	//   Classes/Pawn.uc
	//   Classes/Globals.uci
	//   Classes/Inc/Deep.uc
	//   .hidden/Hidden.uc
	//   Intermediate/Stale.uc
	//   Readme.txt
	files := map[string]string{
		"Engine.vcproj":         "<VisualStudioProject/>",
		"Classes/Actor.uc":      "class Actor;",
		"Classes/Pawn.uc":       "class Pawn extends Actor;",
		"Classes/Globals.uci":   "`define X",
		"Classes/Inc/Deep.uc":   "class Deep;",
		".hidden/Hidden.uc":     "class Hidden;",
		"Intermediate/Stale.uc": "class Stale;",
		"Readme.txt":            "docs",
	}

	tests := []struct {
		name      string
		opts      ScanOptions
		wantNames []string
	}{
		{
			name:      "single pattern recurses into every directory",
			opts:      ScanOptions{Patterns: []string{"*.uc"}},
			wantNames: []string{"Actor.uc", "Deep.uc", "Hidden.uc", "Pawn.uc", "Stale.uc"},
		},
		{
			name:      "multiple patterns",
			opts:      ScanOptions{Patterns: []string{"*.uc", "*.uci"}},
			wantNames: []string{"Actor.uc", "Deep.uc", "Globals.uci", "Hidden.uc", "Pawn.uc", "Stale.uc"},
		},
		{
			name:      "overlapping patterns report a file once",
			opts:      ScanOptions{Patterns: []string{"*.uc", "A*", "*.uc"}},
			wantNames: []string{"Actor.uc", "Deep.uc", "Hidden.uc", "Pawn.uc", "Stale.uc"},
		},
		{
			name:      "manifest pattern",
			opts:      ScanOptions{Patterns: []string{"*.vcproj"}},
			wantNames: []string{"Engine.vcproj"},
		},
		{
			name:      "zero patterns yield nothing",
			opts:      ScanOptions{},
			wantNames: []string{},
		},
		{
			name:      "matching is case sensitive",
			opts:      ScanOptions{Patterns: []string{"*.UC"}},
			wantNames: []string{},
		},
		{
			name:      "character class and brace patterns",
			opts:      ScanOptions{Patterns: []string{"[AP]*.{uc,uci}"}},
			wantNames: []string{"Actor.uc", "Pawn.uc"},
		},
		{
			name:      "excluded directories are pruned",
			opts:      ScanOptions{Patterns: []string{"*.uc"}, ExcludeDirs: []string{"Intermediate", ".hidden"}},
			wantNames: []string{"Actor.uc", "Deep.uc", "Pawn.uc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewScanner(newMemTree(t, files), "Src")

			matches, err := scanner.Scan(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, names(matches))

			for _, m := range matches {
				assert.True(t, MatchAny(tt.opts.Patterns, m.Name), "%s should match a pattern", m.Name)
				assert.Equal(t, m.Name, filepath.Base(m.Path))
			}
		})
	}
}

func TestScanPathsJoinRoot(t *testing.T) {
	fs := newMemTree(t, map[string]string{
		"Classes/Actor.uc": "",
		"Top.uc":           "",
	})

	matches, err := NewScanner(fs, "Development/Src").Scan(ScanOptions{Patterns: []string{"*.uc"}})
	require.NoError(t, err)

	// util.Walk visits directory entries in lexical order
	require.Len(t, matches, 2)
	assert.Equal(t, models.FileMatch{Name: "Actor.uc", Path: filepath.Join("Development/Src", "Classes", "Actor.uc")}, matches[0])
	assert.Equal(t, models.FileMatch{Name: "Top.uc", Path: filepath.Join("Development/Src", "Top.uc")}, matches[1])
}

func TestScanIsRepeatable(t *testing.T) {
	fs := newMemTree(t, map[string]string{
		"b/Two.uc":   "",
		"a/One.uc":   "",
		"c/d/Tri.uc": "",
	})
	scanner := NewScanner(fs, "root")
	opts := ScanOptions{Patterns: []string{"*.uc"}}

	first, err := scanner.Scan(opts)
	require.NoError(t, err)
	second, err := scanner.Scan(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScanOSFilesystem(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"Classes/Actor.uc", "Classes/Sub/Pawn.uc", "Core.vcproj"} {
		path := filepath.Join(tmpDir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content "+f), 0644))
	}

	scanner := NewOSScanner(tmpDir)
	assert.Equal(t, tmpDir, scanner.Root())

	matches, err := scanner.Scan(ScanOptions{Patterns: []string{"*.uc"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Actor.uc", "Pawn.uc"}, names(matches))

	for _, m := range matches {
		_, statErr := os.Stat(m.Path)
		assert.NoError(t, statErr, "reported path should exist on disk: %s", m.Path)
	}

	manifests, err := scanner.Scan(ScanOptions{Patterns: []string{"*.vcproj"}})
	require.NoError(t, err)
	require.Len(t, manifests, 1)

	data, err := scanner.ReadFile(manifests[0])
	require.NoError(t, err)
	assert.Equal(t, "content Core.vcproj", string(data))
}

func TestScanMissingRoot(t *testing.T) {
	scanner := NewOSScanner(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := scanner.Scan(ScanOptions{Patterns: []string{"*.uc"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access directory")
}

func TestScanRootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "Actor.uc")
	require.NoError(t, os.WriteFile(filePath, []byte("class Actor;"), 0644))

	_, err := NewOSScanner(filePath).Scan(ScanOptions{Patterns: []string{"*.uc"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestScanUnreadableDirectoryIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	locked := filepath.Join(tmpDir, "Locked")
	require.NoError(t, os.MkdirAll(locked, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "Secret.uc"), []byte(""), 0644))
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	_, err := NewOSScanner(tmpDir).Scan(ScanOptions{Patterns: []string{"*.uc"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to walk directory")
}

func TestReadFileMissing(t *testing.T) {
	scanner := NewScanner(newMemTree(t, map[string]string{"a.uc": ""}), "root")

	_, err := scanner.ReadFile(models.FileMatch{Name: "gone.vcproj", Path: filepath.Join("root", "gone.vcproj")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestMatchAny(t *testing.T) {
	tests := []struct {
		patterns []string
		name     string
		want     bool
	}{
		{[]string{"*.uc"}, "Actor.uc", true},
		{[]string{"*.uc"}, "Actor.uci", false},
		{[]string{"*.uci", "*.uc"}, "Actor.uc", true},
		{[]string{"?ctor.uc"}, "Actor.uc", true},
		{[]string{}, "Actor.uc", false},
		{[]string{"[abc"}, "a", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchAny(tt.patterns, tt.name), "MatchAny(%v, %q)", tt.patterns, tt.name)
	}
}

// TestMatchAnyGlobDialect pins the doublestar dialect used for bare names
func TestMatchAnyGlobDialect(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		file    string
		want    bool
	}{
		{name: "backslash escapes next rune", pattern: `a\b.uc`, file: "ab.uc", want: true},
		{name: "backslash is not literal", pattern: `a\b.uc`, file: `a\b.uc`, want: false},
		{name: "escaped backslash is literal", pattern: `a\\b.uc`, file: `a\b.uc`, want: true},
		{name: "case sensitive", pattern: "*.UC", file: "Actor.uc", want: false},
		{name: "character class", pattern: "[AP]*.uc", file: "Pawn.uc", want: true},
		{name: "alternation", pattern: "*.{uc,uci}", file: "Globals.uci", want: true},
		{name: "unclosed class never matches", pattern: "[abc", file: "[abc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchAny([]string{tt.pattern}, tt.file))
		})
	}
}

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, ValidatePatterns([]string{"*.uc", "*.{uc,uci}", "Actor?.uc"}))
	assert.NoError(t, ValidatePatterns(nil))

	err := ValidatePatterns([]string{"*.uc", "[abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"[abc"`)
}
