// errors/user_errors.go
package errors

var (
	ErrUserNotFound = notFound("user")
)
