package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// The collaborator's error taxonomy. Callers branch with errors.Is /
// errors.As; the concrete transport behind the interface is irrelevant.
var (
	// ErrPermissionDenied: the actor lacks permission. Services check the
	// gate before dispatch, so seeing this from the wire means the local
	// cache was stale.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound: a referenced entity no longer exists, e.g. deleted by
	// another session. Treated as a refresh signal, not just a message.
	ErrNotFound = errors.New("not found")

	// ErrTransient: network or service failure. Surfaced with a retry
	// affordance; no component retries on its own.
	ErrTransient = errors.New("transient failure")
)

// ValidationError carries field-level failures reported by the backend.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
