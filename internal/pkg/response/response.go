package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error the gateway itself emits.
// Backend responses are relayed verbatim and never pass through here.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends a standardized error response and aborts the chain.
func Error(c *gin.Context, code int, message string) {
	c.Abort()
	c.JSON(code, ErrorBody{Error: message})
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

// BadRequest sends a 400 Bad Request response for invalid input.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Internal sends a 500 response with a generic body. Detail belongs in
// the logs, not in the body.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

// Relay writes a backend response through unchanged: same status, same
// body bytes.
func Relay(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json; charset=utf-8", body)
}
