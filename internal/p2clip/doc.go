// Package p2clip reads text memos out of P2 clip metadata files.
//
// A P2 card stores one XML document per clip under CONTENTS/CLIP. Memos live
// at ClipContent/ClipMetadata/MemoList/Memo below the document root; each memo
// carries an Offset (frames from the clip start) and an optional Text.
// ReadMarkers returns them in document order. A clip without a memo list is a
// normal, empty result; only an unreadable document is an error.
package p2clip
