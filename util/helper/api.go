package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
)

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, navguard_errors.ErrInvalidID
	}
	return id, nil
}

// ParseOptionalIDQuery reads an optional positive integer query parameter; absent yields nil.
func ParseOptionalIDQuery(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, navguard_errors.ErrInvalidID
	}
	return &id, nil
}
