// Package journal records what each p2mark run did to each clip in a SQLite
// database under the state directory.
//
// The journal is an audit trail. Nothing reads it back to decide whether a
// sidecar should be written; the sidecar itself is the source of truth.
package journal
