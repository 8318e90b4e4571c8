// Package failure defines the error kinds shared by the marker extraction and
// sidecar synthesis code.
//
// Every failure is tagged with one of the exported sentinel markers and carries
// the component, the file path and a short reason, so callers can report it
// without touching the filesystem again and branch on the kind with
// errors.Is. IsFatal separates per-clip failures from conditions that should
// stop a whole batch run.
package failure
