package service

import (
	"context"

	"comment-threads/internal/domain"
	"comment-threads/internal/thread"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// CommentServiceInterface defines the interface for comment thread operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// GetThreads loads, assembles, and renders every thread on item.
	GetThreads(ctx context.Context, item domain.ContentItem, expanded thread.ExpansionSet) (*ThreadsView, error)
	// SessionExpansion returns the boundaries a session has expanded on item.
	SessionExpansion(ctx context.Context, sessionID string, item domain.ContentItem) thread.ExpansionSet
	// PostComment adds a root comment or reply and returns the re-rendered threads.
	PostComment(ctx context.Context, caller domain.Caller, item domain.ContentItem, parentID *int64, body string) (*PostResult, error)
	// DeleteComment removes a single comment. Admin only.
	DeleteComment(ctx context.Context, caller domain.Caller, commentID int64) error
	// ToggleExpansion flips a continuation for a session and persists the result.
	ToggleExpansion(ctx context.Context, sessionID string, item domain.ContentItem, boundaryID int64) (*ToggleResult, error)
	// StreamThread writes every comment on item in display order.
	StreamThread(ctx context.Context, item domain.ContentItem, format string, writer StreamWriter) (int, error)
}
