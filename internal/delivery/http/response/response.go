package response

import (
	"github.com/gin-gonic/gin"
)

// MessageBody is returned for confirmations and 404s
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is returned for failed requests
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends body unwrapped; resources are returned in their own shape
func JSON(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

// Message sends a {message} body
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends an {error} body
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// NoContent sends a bodiless status
func NoContent(c *gin.Context, code int) {
	c.Status(code)
}
