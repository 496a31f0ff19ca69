// Package pathutil locates the rendezvous state directories and formats paths
// for error messages.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the name of the per-user and per-project state directory.
const DirName = ".rendezvous"

// GlobalPath returns the path to the global .rendezvous directory.
// On Unix: ~/.rendezvous
// On Windows: %USERPROFILE%\.rendezvous
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// LocalPath returns the path to the .rendezvous directory for the given project root.
func LocalPath(projectRoot string) string {
	return filepath.Join(projectRoot, DirName)
}

// DefaultLogDir returns ~/.rendezvous/logs.
func DefaultLogDir() (string, error) {
	global, err := GlobalPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(global, "logs"), nil
}

// FindProjectRoot walks up from start looking for a directory that contains
// a .rendezvous directory. If none is found, the absolute form of start is returned.
func FindProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", RedactPath(start), err)
	}

	dir := abs
	for {
		info, err := os.Stat(filepath.Join(dir, DirName))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// EnsureDir creates dir and any missing parents with owner-only permissions.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", RedactPath(dir), err)
	}
	return nil
}

// RedactPath reduces a full path to .../<parent>/<basename> for safe error messages.
// For example, "/home/user/.rendezvous/config.yaml" becomes ".../.rendezvous/config.yaml".
func RedactPath(path string) string {
	if path == "" {
		return ""
	}
	cleaned := filepath.Clean(path)
	dir := filepath.Dir(cleaned)
	base := filepath.Base(cleaned)
	parent := filepath.Base(dir)
	if parent == "." || parent == string(filepath.Separator) {
		return base
	}
	return ".../" + parent + "/" + base
}
