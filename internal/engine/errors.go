package engine

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a requested draft has no persisted record.
var ErrNotFound = errors.New("draft not found")

// ValidationError reports every hard rule the content violated. The caller
// can fix the content and retry; no state was mutated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid content: " + strings.Join(e.Violations, ", ")
}

// RateLimitError reports a denied admission. ResetTime estimates when the
// violated window frees up; the caller can retry after it.
type RateLimitError struct {
	Kind      ActionKind
	Reason    string
	ResetTime time.Time
}

func (e *RateLimitError) Error() string {
	return e.Reason
}
