package responses

import (
	"github.com/gin-gonic/gin"
)

// Every response is a JSON object with a boolean "success" flag: on
// failure a "message" string, on success a payload-specific field
// (events, user, sports, comments, ...), optionally with a message.

// ErrorResponse represents the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"` // always false
	Message string `json:"message"`
}

// SendSuccess sends a success envelope merged with the given payload fields.
func SendSuccess(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// SendMessage sends a success envelope carrying only a message.
func SendMessage(c *gin.Context, statusCode int, message string) {
	SendSuccess(c, statusCode, gin.H{"message": message})
}

// SendError sends the failure envelope and aborts the handler chain.
// Only fixed strings go to the client; detail stays in the server log.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
	})
}
