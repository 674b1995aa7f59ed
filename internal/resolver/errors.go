package resolver

import (
	"errors"
	"fmt"
)

// ErrConflict is matched by every *ConflictError.
var ErrConflict = errors.New("configuration conflict")

// ConflictKind identifies which rule a conflict violated.
type ConflictKind int

const (
	// ConflictField means two records set the same field to incompatible values.
	ConflictField ConflictKind = iota
	// ConflictIdentity means records with different ids were merged.
	ConflictIdentity
	// ConflictNamespace means an id is used by two entity kinds.
	ConflictNamespace
)

// String returns the string representation of the conflict kind.
func (k ConflictKind) String() string {
	switch k {
	case ConflictField:
		return "field"
	case ConflictIdentity:
		return "identity"
	case ConflictNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

// Entity categories as they appear in plugin documents.
const (
	CategoryStart  = "startPlugins"
	CategoryLazy   = "optPlugins"
	CategoryBundle = "bundles"
)

// ConflictError describes why resolution failed.
//
// Which fields are populated depends on Kind:
//   - ConflictField: ID, Field, Strategy and both Values.
//   - ConflictIdentity: both ids in Values.
//   - ConflictNamespace: ID and the two categories in Categories.
type ConflictError struct {
	Kind       ConflictKind
	ID         string
	Field      string
	Strategy   Strategy
	Values     [2]string
	Categories [2]string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictField:
		subject := e.Field
		if e.ID != "" {
			subject = fmt.Sprintf("%s.%s", e.ID, e.Field)
		}
		return fmt.Sprintf("%s conflict on %s: %q vs %q", e.Strategy, subject, e.Values[0], e.Values[1])
	case ConflictIdentity:
		return fmt.Sprintf("cannot merge %q into %q: ids differ", e.Values[1], e.Values[0])
	case ConflictNamespace:
		return fmt.Sprintf("id %q is declared in both %s and %s", e.ID, e.Categories[0], e.Categories[1])
	default:
		return ErrConflict.Error()
	}
}

// Is makes errors.Is(err, ErrConflict) true for any conflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IsConflict reports whether err is or wraps a *ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func fieldConflict(field string, strategy Strategy, a, b string) *ConflictError {
	return &ConflictError{Kind: ConflictField, Field: field, Strategy: strategy, Values: [2]string{a, b}}
}

func identityConflict(a, b string) *ConflictError {
	return &ConflictError{Kind: ConflictIdentity, ID: a, Values: [2]string{a, b}}
}

func namespaceConflict(id, first, second string) *ConflictError {
	return &ConflictError{Kind: ConflictNamespace, ID: id, Categories: [2]string{first, second}}
}
