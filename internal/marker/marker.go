// Package marker holds the value type shared by clip extraction and sidecar
// synthesis.
package marker

import "strconv"

// Marker is one text memo recorded by the camera. Offset is a frame count from
// the start of the clip, not wall-clock time. The camera also stores a memo ID,
// which only addresses memos on the device and is not carried here.
type Marker struct {
	Offset int
	Text   string
}

// HasText reports whether the marker carries an annotation worth writing.
func (m Marker) HasText() bool {
	return m.Text != ""
}

// StartTime renders the offset the way the sidecar stores it.
func (m Marker) StartTime() string {
	return strconv.Itoa(m.Offset)
}

// Noun returns "marker" or "markers" for count.
func Noun(count int) string {
	if count == 1 {
		return "marker"
	}
	return "markers"
}
