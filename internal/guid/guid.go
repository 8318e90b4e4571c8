// Package guid mints the marker identifiers written into XMP sidecars.
package guid

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"p2mark/internal/failure"
)

// Generator mints one identifier per call.
type Generator interface {
	GenerateID() (string, error)
}

// Length is the size of a rendered identifier: 32 hex digits plus four hyphens.
const Length = 36

var pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// UUIDGenerator draws random (version 4) UUIDs from the operating system's
// entropy source.
type UUIDGenerator struct{}

// GenerateID returns a lowercase, hyphenated identifier without braces.
func (UUIDGenerator) GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("read random uuid: %w", err)
	}
	return id.String(), nil
}

// Next asks gen for an identifier and rejects anything that is not in the
// 8-4-4-4-12 lowercase form editors expect.
func Next(gen Generator) (string, error) {
	if gen == nil {
		return "", failure.Wrap(failure.ErrIdentityService, "guid", "", "no identifier generator configured", nil)
	}
	id, err := gen.GenerateID()
	if err != nil {
		return "", failure.Wrap(failure.ErrIdentityService, "guid", "", "cannot generate a GUID", err)
	}
	if !Valid(id) {
		return "", failure.Wrap(failure.ErrIdentityService, "guid", "", "malformed GUID "+strconv.Quote(id), nil)
	}
	return id, nil
}

// Valid reports whether id is a 36-character lowercase hyphenated hex string.
func Valid(id string) bool {
	return len(id) == Length && pattern.MatchString(id)
}
