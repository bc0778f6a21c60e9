// Package httpx holds the JSON error envelopes shared by all API handlers.
// Success bodies differ per endpoint and are written inline with gin.H.
package httpx

import "github.com/gin-gonic/gin"

// Error writes the flat error envelope used across the API.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ErrorDetails writes an error envelope that also carries the full provider
// error text. Only the record listing endpoint uses this richer shape.
func ErrorDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, gin.H{"error": message, "details": details})
}
