// Package p2tree validates the P2 card layout and finds the clip metadata
// files inside it.
//
// A card mounted at /media/card exposes /media/card/CONTENTS/CLIP/*.XML, one
// metadata file per clip. Validate checks the directory structure, Discover
// lists and classifies the clip files, and SidecarPath names the XMP file
// written next to each clip. Only files classified Correct should be handed
// to the clip reader.
package p2tree
