package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comment-threads/internal/logger"
	"comment-threads/internal/middleware"
	"comment-threads/internal/service"
)

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// ExportThread handles GET /api/v1/:kind/:id/comments/export?format=ndjson|csv
func (h *CommentHandler) ExportThread(c *gin.Context) {
	item, ok := contentItemParam(c)
	if !ok {
		return
	}

	format := c.DefaultQuery(FormatQueryParam, service.FormatNDJSON)
	if !service.IsValidFormat(format) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be one of: ndjson, csv", Field: FormatQueryParam})
		return
	}

	log := logger.WithRequestID(middleware.GetRequestID(c)).With(
		slog.String("content_kind", string(item.Kind)),
		slog.String("format", format))

	contentType := "application/x-ndjson"
	if format == service.FormatCSV {
		contentType = "text/csv"
	}

	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\""+exportFilename(string(item.Kind), item.ID, format)+"\"")

	writer := &ginStreamWriter{writer: c.Writer}

	count, err := h.commentService.StreamThread(c.Request.Context(), item, format, writer)
	if err != nil {
		if !c.Writer.Written() {
			c.Header("Content-Type", "")
			c.Header("Content-Disposition", "")
			writeError(c, err)
			return
		}
		// Headers are already sent; the client sees a truncated body.
		log.Warn("Thread export interrupted", slog.Int("count", count), slog.String("error", err.Error()))
		return
	}

	if !c.Writer.Written() {
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
	}
	log.Info("Thread export completed", slog.Int("count", count))
}

// exportFilename builds a download name from the content item, keeping only
// characters that are safe in a header value and on common file systems.
func exportFilename(kind, id, format string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, id)
	if len(safe) > 64 {
		safe = safe[:64]
	}
	return kind + "_" + safe + "_comments." + format
}
