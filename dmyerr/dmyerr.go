// Package dmyerr defines the typed error taxonomy shared by every public
// operation in this module: construction and call validation
// (ValidationError), out-of-range source/target vertices (BoundsError),
// scalarizations invoked against the wrong objective senses (SenseError),
// and the parent-walk cycle guard (CycleError).
//
// Callers branch on kind with errors.As, never on message text:
//
//	var verr *dmyerr.ValidationError
//	if errors.As(err, &verr) {
//		// verr.Field, verr.Reason
//	}
package dmyerr

import "fmt"

// ValidationError reports a violated construction or call invariant:
// empty vertex sets, mismatched array lengths, negative weights,
// out-of-range endpoints, or malformed configuration values.
type ValidationError struct {
	Op     string // operation that rejected the input, e.g. "graph.New"
	Field  string // the offending field or parameter name
	Reason string // human-readable explanation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Field, e.Reason)
}

// NewValidation constructs a ValidationError.
func NewValidation(op, field, reason string) *ValidationError {
	return &ValidationError{Op: op, Field: field, Reason: reason}
}

// BoundsError reports a source or target vertex outside [1,n] (or [0,n)
// depending on the caller's indexing convention; this module is 0-indexed
// internally, see graph.Graph).
type BoundsError struct {
	Op     string
	Vertex int
	N      int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: vertex %d out of range [0,%d)", e.Op, e.Vertex, e.N)
}

// NewBounds constructs a BoundsError.
func NewBounds(op string, vertex, n int) *BoundsError {
	return &BoundsError{Op: op, Vertex: vertex, N: n}
}

// SenseError reports that a scalarization requiring all-MIN objective
// senses (weighted sum, lexicographic) was invoked against a graph with at
// least one MAX-sense objective.
type SenseError struct {
	Op    string
	Index int // index of the offending MAX-sense objective
}

func (e *SenseError) Error() string {
	return fmt.Sprintf("%s: objective %d has MAX sense; convert to a cost first", e.Op, e.Index)
}

// NewSense constructs a SenseError.
func NewSense(op string, index int) *SenseError {
	return &SenseError{Op: op, Index: index}
}

// CycleError is an internal guard: it should never occur on a correctly
// maintained parent vector. It is surfaced, never panicked, so that a bug
// in the recursive layer degrades to a typed error instead of an infinite
// loop or a corrupted path.
type CycleError struct {
	Op     string
	Vertex int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: parent chain did not terminate within n steps at vertex %d", e.Op, e.Vertex)
}

// NewCycle constructs a CycleError.
func NewCycle(op string, vertex int) *CycleError {
	return &CycleError{Op: op, Vertex: vertex}
}
