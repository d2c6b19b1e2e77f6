package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comment-threads/internal/auth"
	"comment-threads/internal/domain"
	"comment-threads/internal/logger"
)

// CallerKey is the context key for the resolved caller.
const CallerKey = "caller"

// CallerResolver turns a bearer token into a caller.
type CallerResolver interface {
	Resolve(token string) (domain.Caller, error)
}

// Identity resolves the Authorization bearer token into a domain.Caller.
// Requests without a token proceed as anonymous; a token that fails
// validation is rejected with 401 so the client can log in again.
func Identity(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Set(CallerKey, domain.Anonymous())
			c.Next()
			return
		}

		caller, err := resolver.Resolve(token)
		if err != nil {
			reason := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				reason = "token expired"
			}
			logger.WithRequestID(GetRequestID(c)).Warn("Rejected bearer token",
				slog.String("reason", reason))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":  reason,
				"action": "login",
			})
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// GetCaller retrieves the caller set by Identity, or an anonymous caller.
func GetCaller(c *gin.Context) domain.Caller {
	if v, exists := c.Get(CallerKey); exists {
		if caller, ok := v.(domain.Caller); ok {
			return caller
		}
	}
	return domain.Anonymous()
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
