package httputil

import (
	"github.com/gin-gonic/gin"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// NewError aborts the request with the status and the error as body.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}
