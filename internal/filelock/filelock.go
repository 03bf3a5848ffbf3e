// Package filelock writes report files atomically under an advisory lock so
// that parallel CI steps writing the same report path never interleave.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// FileLock wraps a flock file lock for coordinating access to a report file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires an exclusive lock, blocking until it is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite writes data to path through a uniquely named temp file in the
// same directory followed by a rename. Readers never observe a partial file
// and the previous content survives any failure.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		committed = true
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	committed = true

	return nil
}

// LockAndWrite acquires "<path>.lock", writes data atomically and releases
// the lock. The lock file is left in place so every writer locks the same inode.
func LockAndWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	lockPath := path + ".lock"
	lock := NewFileLock(lockPath)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data)
}
