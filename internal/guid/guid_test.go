package guid

import (
	"errors"
	"testing"

	"p2mark/internal/failure"
)

type fixedGenerator struct {
	id  string
	err error
}

func (g fixedGenerator) GenerateID() (string, error) { return g.id, g.err }

func TestUUIDGeneratorFormatAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 256; i++ {
		id, err := Next(UUIDGenerator{})
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if len(id) != Length {
			t.Fatalf("unexpected length %d for %q", len(id), id)
		}
		if !Valid(id) {
			t.Fatalf("invalid id %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"0f8fad5b-d9cb-469f-a165-70867728950e":   true,
		"0F8FAD5B-D9CB-469F-A165-70867728950E":   false,
		"{0f8fad5b-d9cb-469f-a165-70867728950e}": false,
		"0f8fad5bd9cb469fa16570867728950e":       false,
		"0f8fad5b-d9cb-469f-a165-70867728950":    false,
		"":                                       false,
	}
	for id, want := range cases {
		if got := Valid(id); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestNextRejectsMalformed(t *testing.T) {
	_, err := Next(fixedGenerator{id: "{ABC}"})
	if !errors.Is(err, failure.ErrIdentityService) {
		t.Fatalf("expected identity service error, got %v", err)
	}
}

func TestNextWrapsGeneratorFailure(t *testing.T) {
	cause := errors.New("entropy unavailable")
	_, err := Next(fixedGenerator{err: cause})
	if !errors.Is(err, failure.ErrIdentityService) || !errors.Is(err, cause) {
		t.Fatalf("expected wrapped identity failure, got %v", err)
	}
}

func TestNextNilGenerator(t *testing.T) {
	if _, err := Next(nil); !errors.Is(err, failure.ErrIdentityService) {
		t.Fatalf("expected identity service error, got %v", err)
	}
}
