package client

import (
	"fmt"
	"strings"
)

// MissingField identifies an incomplete part of a generated payload as
// reported by the backend on a 422 response.
type MissingField struct {
	Component string `json:"component"`
	Field     string `json:"field,omitempty"`
}

// Path renders the field as "component.field", or just "component" when
// no field is present.
func (m MissingField) Path() string {
	if m.Field != "" {
		return m.Component + "." + m.Field
	}
	return m.Component
}

// ValidationError is returned when the backend reports an incomplete
// generation (HTTP 422). The field paths are surfaced to the user
// verbatim; no client state changes on this error.
type ValidationError struct {
	Message       string
	MissingFields []MissingField
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generation incomplete: %s", strings.Join(e.FieldPaths(), ", "))
}

// FieldPaths returns the offending "component.field" pairs in backend order.
func (e *ValidationError) FieldPaths() []string {
	paths := make([]string, len(e.MissingFields))
	for i, m := range e.MissingFields {
		paths[i] = m.Path()
	}
	return paths
}

// GenerationError is any other non-success response to a generate call.
type GenerationError struct {
	Status  int
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate failed (status %d): %s", e.Status, e.Message)
}

// FetchError is a failed history or references listing. Callers degrade
// to an empty list.
type FetchError struct {
	Resource string
	Status   int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed (status %d)", e.Resource, e.Status)
}

// LikeError is a failed like toggle. The caller must not mutate local
// state when it sees one.
type LikeError struct {
	SessionID string
	Status    int
}

func (e *LikeError) Error() string {
	return fmt.Sprintf("like update for %s failed (status %d)", e.SessionID, e.Status)
}

// TransportError wraps a network or decode failure where no usable
// response was obtained at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
