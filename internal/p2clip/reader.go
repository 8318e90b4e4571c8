package p2clip

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/unicode/norm"

	"p2mark/internal/failure"
	"p2mark/internal/marker"
	"p2mark/internal/xmltree"
)

const (
	clipContentElem  = "ClipContent"
	clipMetadataElem = "ClipMetadata"
	memoListElem     = "MemoList"
	offsetElem       = "Offset"
	textElem         = "Text"
)

// MemoListPath is the chain of elements from the document root to the memo list.
var MemoListPath = []string{clipContentElem, clipMetadataElem, memoListElem}

// Per the P2 format a clip holds at most this many memos.
const maxMemosPerClip = 100

// ReadMarkers parses the clip document at path and returns its memos as
// markers. Memos without a usable Offset are skipped.
func ReadMarkers(path string) ([]marker.Marker, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromFile(path); err != nil {
		return nil, failure.Wrap(failure.ErrSourceRead, "p2clip", path, "cannot load clip file", err)
	}
	return decode(doc, path)
}

// ParseMarkers is ReadMarkers for an in-memory document; name is used in errors.
func ParseMarkers(r io.Reader, name string) ([]marker.Marker, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, failure.Wrap(failure.ErrSourceRead, "p2clip", name, "cannot load clip file", err)
	}
	return decode(doc, name)
}

func decode(doc *etree.Document, path string) ([]marker.Marker, error) {
	root := doc.Root()
	if root == nil {
		return nil, failure.Wrap(failure.ErrSourceRead, "p2clip", path, "clip file is damaged or has incorrect type", nil)
	}

	list := xmltree.Descend(root, MemoListPath...)
	if list == nil {
		return nil, nil
	}
	memos := list.ChildElements()
	if len(memos) == 0 {
		return nil, nil
	}

	markers := make([]marker.Marker, 0, min(len(memos), maxMemosPerClip))
	for _, memo := range memos {
		if m, ok := parseMemo(memo); ok {
			markers = append(markers, m)
		}
	}
	return markers, nil
}

func parseMemo(memo *etree.Element) (marker.Marker, bool) {
	offset := memo.SelectElement(offsetElem)
	if offset == nil {
		return marker.Marker{}, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(offset.Text()))
	if err != nil {
		return marker.Marker{}, false
	}

	m := marker.Marker{Offset: value}
	if text := memo.SelectElement(textElem); text != nil {
		m.Text = norm.NFC.String(text.Text())
	}
	return m, true
}

// charsetReader decodes clip files whose XML prolog declares an encoding other
// than UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
