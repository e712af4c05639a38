// errors/common_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation = storeFailure("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrInvalidID         = errors.New("invalid id")
	ErrReadOnlySnapshot  = storeFailure("write attempted on read-only snapshot")
)
