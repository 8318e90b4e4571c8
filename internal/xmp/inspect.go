package xmp

import (
	"github.com/beevik/etree"

	"p2mark/internal/failure"
	"p2mark/internal/xmltree"
)

// Entry is one marker as stored in a sidecar.
type Entry struct {
	StartTime string
	GUID      string
	Name      string
	HasName   bool
	Key       string
	Value     string
}

// ReadEntries parses the sidecar at path and returns the markers found under
// the marker list, in file order.
func ReadEntries(path string) ([]Entry, error) {
	_, list, err := loadMarkerList(path)
	if err != nil {
		return nil, err
	}

	items := list.ChildElements()
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var entry Entry
		if description := item.SelectElement("rdf:Description"); description != nil {
			entry.StartTime = description.SelectAttrValue(attrStartTime, "")
			entry.GUID = description.SelectAttrValue(attrGUID, "")
			if name := description.SelectAttr(attrName); name != nil {
				entry.Name = name.Value
				entry.HasName = true
			}
			if param := xmltree.Descend(description, "xmpDM:cuePointParams", "rdf:Seq", "rdf:li"); param != nil {
				entry.Key = param.SelectAttrValue(attrKey, "")
				entry.Value = param.SelectAttrValue(attrValue, "")
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadMarkerList parses the sidecar at path and locates its marker list. A
// sidecar without the expected track layout is unusable rather than repaired.
func loadMarkerList(path string) (*etree.Document, *etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, nil, failure.Wrap(failure.ErrDestinationRead, component, path, "cannot load XMP file", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, failure.Wrap(failure.ErrDestinationRead, component, path, "XMP file is damaged or has incorrect type", nil)
	}
	list := xmltree.Descend(root, MarkerListPath...)
	if list == nil {
		return nil, nil, failure.Wrap(failure.ErrDestinationRead, component, path, "XMP file has no marker list", nil)
	}
	return doc, list, nil
}
