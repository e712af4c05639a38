// errors/org_errors.go
package errors

import "errors"

var (
	ErrOrganizationNotFound    = notFound("organization")
	ErrOrganizationConflict    = conflict("organization")
	ErrInvalidOrganizationData = errors.New("invalid organization data")
)
