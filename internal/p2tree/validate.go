package p2tree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	// ContentsDir is the card directory p2mark is pointed at.
	ContentsDir = "CONTENTS"
	// ClipDir holds one metadata file per clip.
	ClipDir = "CLIP"
)

// Problem identifies what is wrong with a CONTENTS path.
type Problem int

const (
	ContentsMissing Problem = iota + 1
	ContentsNotDirectory
	NotContentsDir
	ClipDirMissing
	ClipDirEmpty
)

// StructureError reports an unusable card layout. The whole run stops on it.
type StructureError struct {
	Problem Problem
	Path    string
	Err     error
}

func (e *StructureError) Error() string {
	var msg string
	switch e.Problem {
	case ContentsMissing:
		msg = fmt.Sprintf("the provided path to the %s directory does not exist: %s", ContentsDir, e.Path)
	case ContentsNotDirectory:
		msg = fmt.Sprintf("the provided path to the %s directory is not a directory: %s", ContentsDir, e.Path)
	case NotContentsDir:
		msg = fmt.Sprintf("provided folder must be named %s: %s", ContentsDir, e.Path)
	case ClipDirMissing:
		msg = fmt.Sprintf("the %s directory is missing, the P2 structure is damaged: %s", ClipDir, e.Path)
	case ClipDirEmpty:
		msg = fmt.Sprintf("the %s directory is empty: %s", ClipDir, e.Path)
	default:
		msg = "invalid P2 structure: " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StructureError) Unwrap() error { return e.Err }

// ProblemOf returns the structure problem carried by err, or 0.
func ProblemOf(err error) Problem {
	var structErr *StructureError
	if errors.As(err, &structErr) {
		return structErr.Problem
	}
	return 0
}

// Validate checks that contentsPath is a CONTENTS directory holding a
// non-empty CLIP directory, and returns the CLIP directory path.
func Validate(contentsPath string) (string, error) {
	cleaned := filepath.Clean(contentsPath)
	info, err := os.Stat(cleaned)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", &StructureError{Problem: ContentsMissing, Path: contentsPath}
	case err != nil:
		return "", &StructureError{Problem: ContentsMissing, Path: contentsPath, Err: err}
	case !info.IsDir():
		return "", &StructureError{Problem: ContentsNotDirectory, Path: contentsPath}
	}
	if finalComponent(cleaned) != ContentsDir {
		return "", &StructureError{Problem: NotContentsDir, Path: contentsPath}
	}

	clipDir := filepath.Join(cleaned, ClipDir)
	info, err = os.Stat(clipDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", &StructureError{Problem: ClipDirMissing, Path: clipDir}
	case err != nil:
		return "", &StructureError{Problem: ClipDirMissing, Path: clipDir, Err: err}
	case !info.IsDir():
		return "", &StructureError{Problem: ClipDirMissing, Path: clipDir}
	}
	entries, err := os.ReadDir(clipDir)
	if err != nil {
		return "", &StructureError{Problem: ClipDirMissing, Path: clipDir, Err: err}
	}
	if len(entries) == 0 {
		return "", &StructureError{Problem: ClipDirEmpty, Path: clipDir}
	}
	return clipDir, nil
}

// finalComponent returns the last path element, resolving "." and ".." so
// that running inside CONTENTS with "." works.
func finalComponent(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Base(path)
}

// CheckWritable reports whether the current user may create files in dir.
func CheckWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return nil
}
