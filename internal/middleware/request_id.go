package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key for request ID
	RequestIDKey = "request_id"

	// SessionIDHeader names the client session that owns expansion state.
	SessionIDHeader = "X-Session-ID"

	maxClientIDLength = 128
)

// RequestID middleware adds a unique request ID to each request.
// A client-provided X-Request-ID is reused when it is short printable ASCII;
// otherwise a new UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !isClientID(requestID) {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// GetSessionID returns the key under which the caller's expansion state is
// kept. Authenticated callers always use their user id, so their state can
// only be reached with their token. Anonymous callers use the X-Session-ID
// header, which is an unauthenticated client-chosen value: anyone presenting
// the same id shares that state. It returns "" for anonymous callers without
// a well formed session header.
func GetSessionID(c *gin.Context) string {
	if caller := GetCaller(c); caller.Authenticated() {
		return "user:" + caller.UserID
	}
	if id := c.GetHeader(SessionIDHeader); isClientID(id) {
		return "session:" + id
	}
	return ""
}

func isClientID(id string) bool {
	if id == "" || len(id) > maxClientIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
