package domain

import "time"

// CommentRecord is a comment as persisted by the comment store.
type CommentRecord struct {
	ID          int64       `json:"id"`
	ParentID    *int64      `json:"parent_id,omitempty"`
	ContentItem ContentItem `json:"content_item"`
	AuthorID    string      `json:"author_id"`
	AuthorRole  Role        `json:"author_role"`
	Body        string      `json:"body"`
	CreatedAt   time.Time   `json:"created_at"`
}

// IsRoot reports whether the record declares no parent.
func (r CommentRecord) IsRoot() bool {
	return r.ParentID == nil
}

// AuthorProfile is the display data joined onto each comment.
type AuthorProfile struct {
	DisplayName string  `json:"display_name"`
	Handle      string  `json:"handle"`
	AvatarRef   *string `json:"avatar_ref,omitempty"`
}

// CommentRow is a raw comment record joined with its author's profile.
type CommentRow struct {
	CommentRecord
	Author AuthorProfile `json:"author"`
}

// NewComment carries the fields of a comment about to be stored.
// The store assigns ID and CreatedAt, and refreshes the author's profile.
type NewComment struct {
	ParentID    *int64
	ContentItem ContentItem
	AuthorID    string
	AuthorRole  Role
	Author      AuthorProfile
	Body        string
}
