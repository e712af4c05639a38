// errors/kinds.go
package errors

import (
	"errors"
	"fmt"
)

// The four error kinds every sentinel in this package belongs to.
// Use errors.Is(err, ErrNotFound) and friends to classify.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrConflict           = errors.New("conflict")
	ErrStore              = errors.New("store error")
)

func notFound(entity string) error { return fmt.Errorf("%s %w", entity, ErrNotFound) }
func conflict(entity string) error { return fmt.Errorf("%s %w", entity, ErrConflict) }
func invariant(what string) error { return fmt.Errorf("%w: %s", ErrInvariantViolation, what) }
func storeFailure(what string) error { return fmt.Errorf("%w: %s", ErrStore, what) }
