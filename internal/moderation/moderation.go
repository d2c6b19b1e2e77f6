// Package moderation decides which comment mutations a caller may perform.
package moderation

import (
	"fmt"

	"comment-threads/internal/domain"
)

type Action string

const (
	ActionPost   Action = "post"
	ActionReply  Action = "reply"
	ActionDelete Action = "delete"
)

// Authorize returns nil when caller may perform action.
//
// Anonymous callers get domain.ErrAuthenticationRequired for post and reply so the
// client can prompt for sign-in. Delete is admin-only and fails with a
// *domain.AuthorizationError for everyone else.
func Authorize(caller domain.Caller, action Action) error {
	switch action {
	case ActionPost, ActionReply:
		if caller.Kind == domain.CallerAnonymous {
			return domain.ErrAuthenticationRequired
		}
		return nil
	case ActionDelete:
		if caller.Kind != domain.CallerAdmin {
			return &domain.AuthorizationError{Message: domain.AdminPrivilegesRequired}
		}
		return nil
	default:
		return fmt.Errorf("unknown moderation action %q", action)
	}
}

// ActionFor returns ActionReply when the comment has a parent, ActionPost otherwise.
func ActionFor(parentID *int64) Action {
	if parentID != nil {
		return ActionReply
	}
	return ActionPost
}
