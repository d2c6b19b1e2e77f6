package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired is returned when an anonymous caller tries to post or reply.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrCommentNotFound is returned when a comment id does not exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrParentNotFound is returned when a reply targets a comment outside the content item.
	ErrParentNotFound = errors.New("parent comment not found")
	// ErrInvalidContentItem is returned for unknown content kinds or bad ids.
	ErrInvalidContentItem = errors.New("invalid content item")
)

// MalformedInputError describes a raw comment row that failed shape validation.
// Index is the row position in the input, or -1 when the whole input is malformed.
type MalformedInputError struct {
	Index     int    `json:"index"`
	CommentID int64  `json:"comment_id,omitempty"`
	Field     string `json:"field"`
	Reason    string `json:"reason"`
}

func (e *MalformedInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed input: %s", e.Reason)
	}
	return fmt.Sprintf("malformed comment row %d (id=%d): %s: %s", e.Index, e.CommentID, e.Field, e.Reason)
}

// AdminPrivilegesRequired is the user-facing denial for non-admin deletes.
const AdminPrivilegesRequired = "Admin privileges required"

// AuthorizationError is a user-facing denial; its message is shown verbatim.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StorageUnavailableMessage is the stable message shown when the comment store fails.
const StorageUnavailableMessage = "Comments are temporarily unavailable. Please try again later."

// StorageUnavailableError wraps a comment store failure.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("comment store %s failed: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// UserMessage returns the stable message for display, hiding the raw cause.
func (e *StorageUnavailableError) UserMessage() string {
	return StorageUnavailableMessage
}
