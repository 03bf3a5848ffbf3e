// Package fileutil provides the recursive pattern scan used by projcheck.
//
// A Scanner walks a directory tree through a go-billy filesystem that is
// rooted at the scan root. Production code uses the OS filesystem
// (NewOSScanner); tests use an in-memory memfs tree.
//
// # Matching
//
// Every non-directory entry is tested against the caller's glob patterns in
// order, using doublestar semantics on the bare filename ("*.uc", "?ctor.uc",
// "*.{uc,uci}"). The first matching pattern wins, so a file is reported at
// most once no matter how many patterns it matches. Matching is case
// sensitive. An empty pattern list matches nothing.
//
// # Traversal
//
// All subdirectories are visited, including hidden ones, unless their name is
// listed in ScanOptions.ExcludeDirs. Directory symlinks are not followed.
// Matches are returned in traversal order, which is lexical per directory.
//
// # Errors
//
// Scanning is not error tolerant: the first unreadable directory or a
// missing root aborts the scan and the error is returned to the caller.
//
// # Usage
//
//	scanner := fileutil.NewOSScanner("Development/Src")
//	matches, err := scanner.Scan(fileutil.ScanOptions{
//	    Patterns: []string{"*.uc"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, m := range matches {
//	    fmt.Println(m.Name, m.Path)
//	}
package fileutil
