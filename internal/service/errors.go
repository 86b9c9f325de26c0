// Package service implements the entity lifecycle services: input
// validation and normalization, referential resolution, capacity and
// uniqueness guards, and persistence orchestration.  Services depend on
// narrow repository interfaces so the rules can be tested without a
// database; the repositories re-enforce the same invariants inside
// their transactions as the canonical point of truth.
package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks malformed or missing input.  Handlers translate
// it to HTTP 400.  Wrapped errors carry the field-level message.
var ErrValidation = errors.New("validation failed")

// invalid wraps ErrValidation with a human-readable message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
