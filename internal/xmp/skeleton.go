package xmp

import "p2mark/internal/xmltree"

// Attribute names editors look for. They are part of the file format.
const (
	attrStartTime = "xmpDM:startTime"
	attrGUID      = "xmpDM:guid"
	attrName      = "xmpDM:name"
	attrKey       = "xmpDM:key"
	attrValue     = "xmpDM:value"

	markerGUIDKey = "marker_guid"
)

// The toolkit string Premiere writes into the sidecars it creates itself.
const xmpToolkit = "Adobe XMP Core 7.0-c000 79.1357c9e, 2021/07/14-00:39:56        "

// documentSkeleton is the chain from the document root to the marker list.
// The frame rate is fixed at f25; offsets are frame counts and editors apply
// this rate to them.
var documentSkeleton = []xmltree.NodeSpec{
	{Tag: "x:xmpmeta", Attrs: []xmltree.Attr{
		{Name: "xmlns:x", Value: "adobe:ns:meta/"},
		{Name: "x:xmptk", Value: xmpToolkit},
	}},
	{Tag: "rdf:RDF", Attrs: []xmltree.Attr{
		{Name: "xmlns:rdf", Value: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	}},
	{Tag: "rdf:Description", Attrs: []xmltree.Attr{
		{Name: "rdf:about", Value: ""},
		{Name: "xmlns:dc", Value: "http://purl.org/dc/elements/1.1/"},
		{Name: "xmlns:xmpDM", Value: "http://ns.adobe.com/xmp/1.0/DynamicMedia/"},
		{Name: "xmlns:stDim", Value: "http://ns.adobe.com/xap/1.0/sType/Dimensions#"},
		{Name: "xmlns:xmp", Value: "http://ns.adobe.com/xap/1.0/"},
		{Name: "xmlns:tiff", Value: "http://ns.adobe.com/tiff/1.0/"},
		{Name: "xmlns:aux", Value: "http://ns.adobe.com/exif/1.0/aux/"},
		{Name: "xmlns:xmpMM", Value: "http://ns.adobe.com/xap/1.0/mm/"},
		{Name: "xmlns:stEvt", Value: "http://ns.adobe.com/xap/1.0/sType/ResourceEvent#"},
	}},
	{Tag: "xmpDM:Tracks"},
	{Tag: "rdf:Bag"},
	{Tag: "rdf:li"},
	{Tag: "rdf:Description", Attrs: []xmltree.Attr{
		{Name: "xmpDM:trackName", Value: "Comment"},
		{Name: "xmpDM:trackType", Value: "Comment"},
		{Name: "xmpDM:frameRate", Value: "f25"},
	}},
	{Tag: "xmpDM:markers"},
	{Tag: "rdf:Seq"},
}

// markerSkeleton is one entry of the marker list.
var markerSkeleton = []xmltree.NodeSpec{
	{Tag: "rdf:li"},
	{Tag: "rdf:Description", Attrs: []xmltree.Attr{
		{Name: attrStartTime, Value: ""},
		{Name: attrGUID, Value: ""},
	}},
	{Tag: "xmpDM:cuePointParams"},
	{Tag: "rdf:Seq"},
	{Tag: "rdf:li", Attrs: []xmltree.Attr{
		{Name: attrKey, Value: markerGUIDKey},
		{Name: attrValue, Value: ""},
	}},
}

// Positions inside markerSkeleton.
const (
	markerDescriptionIndex = 1
	markerParamIndex       = 4
)

// MarkerListPath leads from the x:xmpmeta root to the rdf:Seq holding markers.
var MarkerListPath = []string{
	"rdf:RDF",
	"rdf:Description",
	"xmpDM:Tracks",
	"rdf:Bag",
	"rdf:li",
	"rdf:Description",
	"xmpDM:markers",
	"rdf:Seq",
}
