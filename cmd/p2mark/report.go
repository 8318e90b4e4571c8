package main

import (
	"fmt"
	"io"
	"strconv"

	"p2mark/internal/batch"
	"p2mark/internal/failure"
	"p2mark/internal/marker"
	"p2mark/internal/p2tree"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// consoleReporter prints one line per clip as the run progresses. Clips
// without markers are not printed.
type consoleReporter struct {
	out         io.Writer
	errOut      io.Writer
	mode        batch.Mode
	limitMB     int
	showMarkers bool
	colorize    bool
}

func newConsoleReporter(out, errOut io.Writer, mode batch.Mode, limitMB int, showMarkers bool) *consoleReporter {
	return &consoleReporter{
		out:         out,
		errOut:      errOut,
		mode:        mode,
		limitMB:     limitMB,
		showMarkers: showMarkers,
		colorize:    shouldColorize(errOut),
	}
}

func (r *consoleReporter) ClipSkipped(clip p2tree.Clip) {
	fmt.Fprintf(r.out, "%s is skipped because it is too large (more than %d MB).\n", clip.Name, r.limitMB)
}

func (r *consoleReporter) ClipProcessed(result batch.ClipResult) {
	name := result.Clip.Name
	if result.Err != nil {
		line := fmt.Sprintf("%s: %s.", name, failure.Reason(result.Err))
		if r.mode == batch.ModeWrite {
			line = fmt.Sprintf("%s -> <-------->: %s.", name, failure.Reason(result.Err))
		}
		if r.colorize {
			line = ansiRed + line + ansiReset
		}
		fmt.Fprintln(r.errOut, line)
		return
	}

	count := len(result.Markers)
	if count == 0 {
		return
	}
	if r.mode == batch.ModeWrite {
		fmt.Fprintf(r.out, "%s -> %s: %d %s written.\n", name, result.SidecarName, count, marker.Noun(count))
		return
	}
	fmt.Fprintf(r.out, "%s: has %d %s.\n", name, count, marker.Noun(count))
	if r.showMarkers {
		fmt.Fprintln(r.out, markerTable(result.Markers))
	}
}

func (r *consoleReporter) summary(stats batch.Stats) {
	if stats.HasMarkers() {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintf(r.out, "Clips in the shoot: %d\n", stats.ClipsFound)
	if stats.SkippedLarge > 0 {
		fmt.Fprintf(r.out, "Skipped clips: %d\n", stats.SkippedLarge)
	}
	if !stats.HasMarkers() {
		if r.mode == batch.ModeWrite {
			fmt.Fprintln(r.out, "No markers were written.")
		} else {
			fmt.Fprintln(r.out, "No markers were found.")
		}
		return
	}
	fmt.Fprintf(r.out, "Clips with markers: %d\n", stats.ClipsWithMarkers)
	fmt.Fprintf(r.out, "Total number of markers: %d\n", stats.TotalMarkers)
	if stats.SourceReadErrors > 0 {
		fmt.Fprintf(r.out, "XML read errors: %d\n", stats.SourceReadErrors)
	}
	if stats.SidecarWriteErrors > 0 {
		fmt.Fprintf(r.out, "XMP write errors: %d\n", stats.SidecarWriteErrors)
	}
}

func markerTable(markers []marker.Marker) string {
	rows := make([][]string, 0, len(markers))
	for i, m := range markers {
		rows = append(rows, []string{strconv.Itoa(i + 1), m.StartTime(), m.Text})
	}
	return renderTable([]string{"#", "Offset", "Text"}, rows, 0, 1)
}
