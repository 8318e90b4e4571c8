package testsupport

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIDsExhausted is returned by IDSequence once it runs out of scripted values.
var ErrIDsExhausted = errors.New("id sequence exhausted")

// IDSequence is a deterministic identifier generator. It hands out the scripted
// ids in order; with no script it counts upwards in GUID form. FailAt makes the
// n-th call (1-based) fail.
type IDSequence struct {
	mu     sync.Mutex
	ids    []string
	calls  int
	FailAt int
}

// NewIDSequence returns a generator that yields ids in order.
func NewIDSequence(ids ...string) *IDSequence {
	return &IDSequence{ids: ids}
}

// GenerateID implements guid.Generator.
func (s *IDSequence) GenerateID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.FailAt > 0 && s.calls == s.FailAt {
		return "", fmt.Errorf("scripted failure on call %d", s.calls)
	}
	if len(s.ids) == 0 {
		return fmt.Sprintf("00000000-0000-4000-8000-%012x", s.calls), nil
	}
	if s.calls > len(s.ids) {
		return "", ErrIDsExhausted
	}
	return s.ids[s.calls-1], nil
}

// Calls reports how many ids were requested.
func (s *IDSequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
