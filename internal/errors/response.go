package errors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Respond writes an error envelope with the given status
func Respond(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Error:   code,
	})
}

// RespondInternal writes a 500 envelope without leaking the underlying error
func RespondInternal(c *gin.Context, message string) {
	Respond(c, 500, CodeInternalError, message)
}
