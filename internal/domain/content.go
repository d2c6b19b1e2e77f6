package domain

import "fmt"

// ContentKind identifies what a discussion is attached to.
type ContentKind string

const (
	ContentKindReview ContentKind = "review"
	ContentKindURL    ContentKind = "url"
)

// MaxContentIDLength bounds the opaque content item identifier.
const MaxContentIDLength = 128

// ValidContentKinds contains all valid content kinds.
var ValidContentKinds = []ContentKind{ContentKindReview, ContentKindURL}

// IsValidContentKind checks if a content kind is valid.
func IsValidContentKind(kind ContentKind) bool {
	for _, k := range ValidContentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ContentKindFromPath maps the plural route segment ("reviews", "urls") to a kind.
func ContentKindFromPath(segment string) (ContentKind, bool) {
	switch segment {
	case "reviews":
		return ContentKindReview, true
	case "urls":
		return ContentKindURL, true
	default:
		return "", false
	}
}

// ContentItem addresses the review or URL record a comment belongs to.
type ContentItem struct {
	Kind ContentKind `json:"kind"`
	ID   string      `json:"id"`
}

// NewContentItem builds a ContentItem, rejecting unknown kinds and empty or oversized ids.
func NewContentItem(kind ContentKind, id string) (ContentItem, error) {
	if !IsValidContentKind(kind) {
		return ContentItem{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidContentItem, kind)
	}
	if id == "" || len(id) > MaxContentIDLength {
		return ContentItem{}, fmt.Errorf("%w: id must be 1-%d characters", ErrInvalidContentItem, MaxContentIDLength)
	}
	return ContentItem{Kind: kind, ID: id}, nil
}

// String renders the item as "kind:id", used for logging and cache keys.
func (c ContentItem) String() string {
	return string(c.Kind) + ":" + c.ID
}
