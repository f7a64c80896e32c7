package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Correlation headers. Both are echoed on the response.
const (
	RequestIDHeader = "X-Request-ID"
	// SessionIDHeader names the client session that owns a submission
	// flow. Clients keep sending the value they were given.
	SessionIDHeader = "X-Session-ID"
)

const (
	requestIDKey = "request_id"
	sessionIDKey = "session_id"

	// maxClientIDLen bounds ids chosen by the client.
	maxClientIDLen = 128
)

// RequestID reuses the caller's X-Request-ID or issues a UUID.
func RequestID() gin.HandlerFunc {
	return correlate(RequestIDHeader, requestIDKey)
}

// SessionID reuses the caller's X-Session-ID or issues a UUID. Mount it on
// the routes that drive a submission flow.
func SessionID() gin.HandlerFunc {
	return correlate(SessionIDHeader, sessionIDKey)
}

func correlate(header, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" || len(id) > maxClientIDLen {
			id = uuid.NewString()
		}
		c.Set(key, id)
		c.Header(header, id)
		c.Next()
	}
}

// GetRequestID returns the request id, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// GetSessionID returns the session id, or "" on routes without SessionID.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
