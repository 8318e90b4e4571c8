// Package xmp writes clip markers into XMP sidecar files that Premiere Pro
// reads as timeline markers.
//
// The sidecar tree is fixed: a nine-level chain from x:xmpmeta down to the
// rdf:Seq under xmpDM:markers, and below that one five-level chain per marker.
// Synthesizer.Write creates that tree when the sidecar does not exist yet. When
// it does exist (an editor may already have stored colour or other metadata in
// it) the markers are appended to the existing marker list instead, but only if
// that list is empty and the file is writable; a sidecar that already carries
// markers is never touched.
//
// Every marker chain, identifiers included, is assembled in memory before any
// of them is attached, and the document is written to a temporary file that
// replaces the sidecar only once it is complete.
package xmp
