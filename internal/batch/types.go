package batch

import (
	"context"
	"fmt"

	"p2mark/internal/journal"
	"p2mark/internal/marker"
	"p2mark/internal/p2tree"
	"p2mark/internal/xmp"
)

// Mode selects what a run does with the markers it finds.
type Mode string

const (
	// ModeWrite creates or extends sidecars.
	ModeWrite Mode = "write"
	// ModeList only reports markers.
	ModeList Mode = "list"
)

// ParseMode converts a mode name.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeWrite, ModeList:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("unknown mode %q", value)
	}
}

// MarkerReader extracts the markers of one clip file.
type MarkerReader func(path string) ([]marker.Marker, error)

// SidecarWriter stores markers at a sidecar path.
type SidecarWriter interface {
	Write(ctx context.Context, path string, markers []marker.Marker) (xmp.Result, error)
}

// Recorder appends journal entries.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) (journal.Entry, error)
}

// Observer is told about each clip as the run progresses.
type Observer interface {
	ClipSkipped(clip p2tree.Clip)
	ClipProcessed(result ClipResult)
}

// ClipResult is the outcome for one clip file.
type ClipResult struct {
	Clip p2tree.Clip
	// SidecarName is the sidecar file name, also set in list mode.
	SidecarName string
	SidecarPath string
	Markers     []marker.Marker
	Outcome     journal.Outcome
	Err         error
}

// Stats aggregates a run.
type Stats struct {
	ClipsFound         int
	ClipsWithMarkers   int
	TotalMarkers       int
	SourceReadErrors   int
	SidecarWriteErrors int
	SkippedLarge       int
}

// HasMarkers reports whether any clip carried markers.
func (s Stats) HasMarkers() bool {
	return s.TotalMarkers > 0
}

// Report describes a finished or aborted run.
type Report struct {
	RunID   string
	Mode    Mode
	ClipDir string
	Results []ClipResult
	Skipped []p2tree.Clip
	Stats   Stats
}
