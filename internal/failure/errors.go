package failure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

var (
	ErrSourceRead       = errors.New("source read error")
	ErrDestinationRead  = errors.New("destination read error")
	ErrConflict         = errors.New("conflict")
	ErrPermission       = errors.New("permission denied")
	ErrDestinationWrite = errors.New("destination write error")
	ErrIdentityService  = errors.New("identity service error")
)

// Kind names the error category used in reports and the run journal.
type Kind string

const (
	KindNone             Kind = ""
	KindSourceRead       Kind = "source_read"
	KindDestinationRead  Kind = "destination_read"
	KindConflict         Kind = "conflict"
	KindPermission       Kind = "permission"
	KindDestinationWrite Kind = "destination_write"
	KindIdentityService  Kind = "identity_service"
	KindOther            Kind = "other"
)

// Error is a classified failure. Marker is one of the exported sentinels and
// Err, when present, is the underlying cause.
type Error struct {
	Marker    error
	Component string
	Path      string
	Message   string
	Err       error
}

func (e *Error) Error() string {
	detail := buildDetail(e.Component, e.Path, e.Message)
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Marker, detail, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Marker, detail)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Marker}
	}
	return []error{e.Marker, e.Err}
}

// Wrap builds an error whose message carries the component, path and reason
// while tagging it with marker for classification. marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, component, path, message string, err error) error {
	if marker == nil {
		marker = ErrDestinationWrite
	}
	return &Error{
		Marker:    marker,
		Component: strings.TrimSpace(component),
		Path:      strings.TrimSpace(path),
		Message:   strings.TrimSpace(message),
		Err:       err,
	}
}

// KindOf maps an error to its category.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrSourceRead):
		return KindSourceRead
	case errors.Is(err, ErrDestinationRead):
		return KindDestinationRead
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrPermission):
		return KindPermission
	case errors.Is(err, ErrIdentityService):
		return KindIdentityService
	case errors.Is(err, ErrDestinationWrite):
		return KindDestinationWrite
	default:
		return KindOther
	}
}

// IsFatal reports whether err should abort a batch instead of being recorded
// against a single clip: cancellation, resource exhaustion, a read-only
// filesystem or a device I/O error.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return true
	case errors.Is(err, unix.ENOSPC), errors.Is(err, unix.EDQUOT), errors.Is(err, unix.ENOMEM),
		errors.Is(err, unix.EROFS), errors.Is(err, unix.EIO):
		return true
	default:
		return false
	}
}

// Reason returns the human part of err: the message and cause without the
// kind marker, component or path. It is meant for one-line console reports
// where the file name is printed separately.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var fe *Error
	if !errors.As(err, &fe) {
		return err.Error()
	}
	switch {
	case fe.Message != "" && fe.Err != nil:
		return fe.Message + ": " + fe.Err.Error()
	case fe.Message != "":
		return fe.Message
	case fe.Err != nil:
		return fe.Err.Error()
	default:
		return fe.Marker.Error()
	}
}

func buildDetail(component, path, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if path = strings.TrimSpace(path); path != "" {
		parts = append(parts, path)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "marker failure"
	}
	return strings.Join(parts, ": ")
}
