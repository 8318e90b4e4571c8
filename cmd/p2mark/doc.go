// Package main hosts the p2mark CLI entrypoint and command graph.
//
// The root command takes the path of a P2 card's CONTENTS directory and either
// writes an XMP sidecar with the clip's text memos next to every clip (the
// default) or, with --list, only reports what it found. Subcommands cover
// configuration scaffolding and the run history.
//
// Keep this package lean: the work happens in internal/batch and the packages
// it drives; commands here resolve configuration, wire collaborators and
// print results.
package main
