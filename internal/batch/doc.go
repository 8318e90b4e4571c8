// Package batch drives one p2mark run over a CONTENTS directory.
//
// A run validates the card layout, discovers the clip files, extracts markers
// from each clip in name order and, in write mode, stores them in a sidecar
// next to the clip. A failing clip is reported and the run moves on; only
// cancellation and resource exhaustion stop it early. Every processed clip is
// recorded in the journal when one is configured.
//
// Write-mode runs hold an advisory lock per CLIP directory under the state
// directory, so two p2mark processes never write sidecars for the same card
// at once.
package batch
