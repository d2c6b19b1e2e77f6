package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"comment-threads/internal/domain"
	"comment-threads/internal/logger"
	"comment-threads/internal/middleware"
	"comment-threads/internal/thread"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Action string `json:"action,omitempty"`
}

// writeError maps service errors onto HTTP responses. Storage details never
// reach the client.
func writeError(c *gin.Context, err error) {
	var (
		malformed   *domain.MalformedInputError
		denied      *domain.AuthorizationError
		unavailable *domain.StorageUnavailableError
	)

	switch {
	case errors.As(err, &malformed):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: malformed.Reason, Field: malformed.Field})
	case errors.Is(err, domain.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Action: LoginAction})
	case errors.As(err, &denied):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: denied.Message})
	case errors.Is(err, domain.ErrCommentNotFound), errors.Is(err, domain.ErrParentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, thread.ErrNotBoundaryNode):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &unavailable):
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Storage unavailable",
			slog.String("op", unavailable.Op),
			slog.String("error", unavailable.Err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: unavailable.UserMessage()})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Unhandled error",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
