package errors

import "errors"

var (
	ErrRoleNotFound    = notFound("role")
	ErrRoleConflict    = conflict("role")
	ErrInvalidRoleData = errors.New("invalid role data")
	ErrRoleInUse       = invariant("role is held by users")

	ErrInvalidOverrideType = errors.New("override type must be either 'grant' or 'deny'")
	ErrOverrideNotFound    = notFound("permission override")

	// ErrCodeExhausted is returned when no free code was found within the retry budget.
	ErrCodeExhausted = conflict("generated code")
)
