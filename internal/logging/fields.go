package logging

const (
	// FieldComponent names the package emitting a line.
	FieldComponent = "component"
	// FieldClip is the clip metadata file being processed.
	FieldClip = "clip"
	// FieldSidecar is the XMP file being written.
	FieldSidecar = "sidecar"
	// FieldMarkerCount is the number of markers involved.
	FieldMarkerCount = "markers"
	// FieldRunID identifies one batch run across log lines and journal rows.
	FieldRunID = "run_id"
	// FieldMode is the batch mode (write or list).
	FieldMode = "mode"
	// FieldEventType is a stable machine-readable name for the event.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to do next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldErrorKind is the failure category of an error.
	FieldErrorKind = "error_kind"
)
