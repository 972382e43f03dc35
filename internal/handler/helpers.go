package handler

import (
	"strconv"

	"fbr-invoice-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body, attaching a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apperr.FromBinding(err))
		return false
	}
	return true
}

// queryBool parses an optional true|false query parameter; anything else counts as absent.
func queryBool(c *gin.Context, key string) *bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return nil
	}
	return &v
}
