package errors

import "errors"

var (
	ErrMenuNotFound    = notFound("menu")
	ErrMenuConflict    = conflict("menu")
	ErrInvalidMenuData = errors.New("invalid menu data")
	ErrInvalidSeed     = errors.New("invalid menu seed")

	ErrSystemProtected = invariant("entity is system protected")
	ErrMenuHasChildren = invariant("menu has children")
	ErrInvalidParent   = invariant("parent does not exist")
	ErrCycleDetected   = invariant("parent assignment would create a cycle")
)
