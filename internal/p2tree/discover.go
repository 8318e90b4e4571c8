package p2tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Class is the verdict on one entry of the CLIP directory.
type Class int

const (
	Correct Class = iota
	Empty
	TooLarge
	WrongExt
	Unsupported
)

func (c Class) String() string {
	switch c {
	case Correct:
		return "correct"
	case Empty:
		return "empty"
	case TooLarge:
		return "too large"
	case WrongExt:
		return "wrong extension"
	case Unsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Options controls classification.
type Options struct {
	// SourceExt is the exact, case-sensitive extension of clip files.
	SourceExt string
	// SizeLimit is the size in bytes at which a file is too large.
	SizeLimit int64
}

// Clip is one entry of the CLIP directory.
type Clip struct {
	Name  string
	Path  string
	Size  int64
	Class Class
}

// Scan is the result of Discover.
type Scan struct {
	// Clips are the files to process, sorted by name.
	Clips []Clip
	// Skipped are the entries that were left out, sorted by name.
	Skipped []Clip
}

// Discover lists clipDir and classifies every entry. Symbolic links are not
// followed.
func Discover(clipDir string, opts Options) (Scan, error) {
	entries, err := os.ReadDir(clipDir)
	if err != nil {
		return Scan{}, fmt.Errorf("list %s: %w", clipDir, err)
	}

	var scan Scan
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Removed between listing and stat.
			if os.IsNotExist(err) {
				continue
			}
			return Scan{}, fmt.Errorf("stat %s: %w", filepath.Join(clipDir, entry.Name()), err)
		}
		clip := Clip{
			Name: entry.Name(),
			Path: filepath.Join(clipDir, entry.Name()),
			Size: info.Size(),
		}
		clip.Class = Classify(clip.Name, info, opts)
		if clip.Class == Correct {
			scan.Clips = append(scan.Clips, clip)
		} else {
			scan.Skipped = append(scan.Skipped, clip)
		}
	}

	byName := func(list []Clip) func(i, j int) bool {
		return func(i, j int) bool { return list[i].Name < list[j].Name }
	}
	sort.SliceStable(scan.Clips, byName(scan.Clips))
	sort.SliceStable(scan.Skipped, byName(scan.Skipped))
	return scan, nil
}

// Classify decides whether the directory entry name with info is a clip file.
// Checks run in a fixed order: empty, too large, wrong extension, not a
// regular file.
func Classify(name string, info os.FileInfo, opts Options) Class {
	size := info.Size()
	switch {
	case size == 0:
		return Empty
	case opts.SizeLimit > 0 && size >= opts.SizeLimit:
		return TooLarge
	case filepath.Ext(name) != opts.SourceExt:
		return WrongExt
	case !info.Mode().IsRegular():
		return Unsupported
	default:
		return Correct
	}
}

// SidecarPath returns the sidecar path for a clip file: the clip's name with
// its extension replaced by sidecarExt, in the same directory.
func SidecarPath(clipPath, sidecarExt string) string {
	return strings.TrimSuffix(clipPath, filepath.Ext(clipPath)) + sidecarExt
}
