package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the flat error shape the frontend expects and stops the chain.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}
