package middleware

import "github.com/gin-gonic/gin"

// RequestIDHeader carries the request ID in and out of the service.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the key used to store the request ID in the Gin context.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID set by StructuredLoggingMiddleware.
// It returns the ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}

	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
