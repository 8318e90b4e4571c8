package xmp

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"p2mark/internal/failure"
)

const indentSpaces = 4

// save pretty-prints doc into a temporary file next to path and renames it over
// path, so a failed write never leaves a truncated sidecar behind.
func save(doc *etree.Document, path string, mode fs.FileMode) error {
	doc.IndentWithSettings(&etree.IndentSettings{Spaces: indentSpaces, PreserveLeafWhitespace: true})

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return failure.Wrap(failure.ErrDestinationWrite, component, path, "cannot save XMP file", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	if _, err := doc.WriteTo(w); err != nil {
		return failure.Wrap(failure.ErrDestinationWrite, component, path, "cannot save XMP file", err)
	}
	if err := w.Flush(); err != nil {
		return failure.Wrap(failure.ErrDestinationWrite, component, path, "cannot save XMP file", err)
	}
	// FAT and exFAT cards reject chmod; the default mode is fine there.
	_ = tmp.Chmod(mode)
	if err := tmp.Sync(); err != nil {
		return failure.Wrap(failure.ErrDestinationWrite, component, path, "cannot save XMP file", err)
	}
	if err := tmp.Close(); err != nil {
		return failure.Wrap(failure.ErrDestinationWrite, component, path, "cannot save XMP file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return failure.Wrap(failure.ErrDestinationWrite, component, path, "cannot save XMP file", err)
	}
	committed = true
	return nil
}
