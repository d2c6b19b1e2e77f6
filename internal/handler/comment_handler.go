package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"comment-threads/internal/domain"
	"comment-threads/internal/middleware"
	"comment-threads/internal/service"
	"comment-threads/internal/thread"
)

// CommentHandler handles comment thread HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes mounts the comment endpoints on an /api/v1 group.
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:kind/:id/comments", h.GetThreads)
	rg.POST("/:kind/:id/comments", h.PostComment)
	rg.GET("/:kind/:id/comments/export", h.ExportThread)
	rg.POST("/:kind/:id/comments/:commentId/toggle", h.ToggleExpansion)
	rg.DELETE("/comments/:commentId", h.DeleteComment)
}

// PostCommentRequest is the body of a new comment or reply.
type PostCommentRequest struct {
	Body     string `json:"body"`
	ParentID *int64 `json:"parent_id"`
}

// GetThreads handles GET /api/v1/:kind/:id/comments?expanded=1,2
func (h *CommentHandler) GetThreads(c *gin.Context) {
	item, ok := contentItemParam(c)
	if !ok {
		return
	}

	requested, err := thread.ParseExpansionSet(c.Query(ExpandedQueryParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: ExpandedQueryParam})
		return
	}

	ctx := c.Request.Context()
	expanded := h.commentService.SessionExpansion(ctx, middleware.GetSessionID(c), item)
	if expanded == nil {
		expanded = thread.NewExpansionSet()
	}
	expanded.Merge(requested)

	view, err := h.commentService.GetThreads(ctx, item, expanded)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// PostComment handles POST /api/v1/:kind/:id/comments
func (h *CommentHandler) PostComment(c *gin.Context) {
	item, ok := contentItemParam(c)
	if !ok {
		return
	}

	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object with a body field"})
		return
	}

	result, err := h.commentService.PostComment(c.Request.Context(), middleware.GetCaller(c), item, req.ParentID, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// DeleteComment handles DELETE /api/v1/comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), middleware.GetCaller(c), commentID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleExpansion handles POST /api/v1/:kind/:id/comments/:commentId/toggle
func (h *CommentHandler) ToggleExpansion(c *gin.Context) {
	item, ok := contentItemParam(c)
	if !ok {
		return
	}
	boundaryID, ok := commentIDParam(c)
	if !ok {
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "an " + middleware.SessionIDHeader + " header or sign-in is required to toggle threads",
		})
		return
	}

	result, err := h.commentService.ToggleExpansion(c.Request.Context(), sessionID, item, boundaryID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// contentItemParam reads :kind and :id. It writes the error response and
// returns false when they do not name a content item.
func contentItemParam(c *gin.Context) (domain.ContentItem, bool) {
	kind, ok := domain.ContentKindFromPath(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown content kind"})
		return domain.ContentItem{}, false
	}

	item, err := domain.NewContentItem(kind, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "id"})
		return domain.ContentItem{}, false
	}
	return item, true
}

func commentIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "comment id must be a positive integer", Field: "commentId"})
		return 0, false
	}
	return id, true
}
