package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The catalog API speaks the admin UI's wire contract: successful responses
// are the bare entity (or array) as JSON with status 200, failures are a
// plain-text message with the matching status code.

func JSON(c *gin.Context, v any) {
	c.JSON(http.StatusOK, v)
}

func PlainError(c *gin.Context, status int, msg string) {
	c.String(status, msg)
}

// InternalError is the generic 500 body; the cause is logged, never sent.
func InternalError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Internal Error")
}

// ErrorJSON is used by the auth endpoints, which return structured errors
// with optional field details.
func ErrorJSON(c *gin.Context, status int, message string, details any) {
	body := gin.H{"message": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
