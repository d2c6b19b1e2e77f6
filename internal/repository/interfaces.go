package repository

import (
	"context"

	"comment-threads/internal/domain"
)

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	// FetchByContentItem returns every comment attached to item joined with
	// its author's profile. Row order is unspecified.
	FetchByContentItem(ctx context.Context, item domain.ContentItem) ([]domain.CommentRow, error)

	// Create refreshes the author's profile and stores c in one transaction.
	// It returns domain.ErrParentNotFound when c.ParentID does not name a
	// comment on the same content item.
	Create(ctx context.Context, c domain.NewComment) (*domain.CommentRecord, error)

	// Delete removes a single comment. Replies are left in place.
	// It reports whether a row was removed.
	Delete(ctx context.Context, commentID int64) (bool, error)
}
