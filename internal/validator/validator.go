package validator

import (
	"sort"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"comment-threads/internal/domain"
)

// DefaultMaxBodyLength is the maximum comment body length in characters.
const DefaultMaxBodyLength = 10000

var (
	validRoles = []interface{}{domain.RoleUser, domain.RoleAdmin}
	validKinds = []interface{}{domain.ContentKindReview, domain.ContentKindURL}
)

// Validator provides validation methods for comment rows and new comments.
type Validator struct {
	maxBodyLength int
}

// NewValidator creates a new Validator instance.
func NewValidator(maxBodyLength int) *Validator {
	if maxBodyLength <= 0 {
		maxBodyLength = DefaultMaxBodyLength
	}
	return &Validator{maxBodyLength: maxBodyLength}
}

// ValidateCommentRow validates the shape of a raw comment row read from storage.
func (v *Validator) ValidateCommentRow(row *domain.CommentRow) error {
	err := validation.ValidateStruct(&row.CommentRecord,
		validation.Field(&row.ID,
			validation.Required.Error("id_required"),
			validation.Min(int64(1)).Error("id_must_be_positive"),
		),
		validation.Field(&row.AuthorID,
			validation.Required.Error("author_id_required"),
		),
		validation.Field(&row.AuthorRole,
			validation.Required.Error("author_role_required"),
			validation.In(validRoles...).Error("invalid_author_role"),
		),
		validation.Field(&row.CreatedAt,
			validation.Required.Error("created_at_required"),
		),
	)
	if err != nil {
		return err
	}

	err = validation.ValidateStruct(&row.ContentItem,
		validation.Field(&row.ContentItem.Kind,
			validation.Required.Error("content_kind_required"),
			validation.In(validKinds...).Error("invalid_content_kind"),
		),
		validation.Field(&row.ContentItem.ID,
			validation.Required.Error("content_id_required"),
			validation.RuneLength(1, domain.MaxContentIDLength).Error("content_id_too_long"),
		),
	)
	if err != nil {
		return prefixErrors("content_item.", err)
	}

	if row.ParentID != nil {
		if *row.ParentID < 1 {
			return validation.Errors{
				"parent_id": validation.NewError("parent_id_must_be_positive", "parent_id must be positive"),
			}
		}
		if *row.ParentID == row.ID {
			return validation.Errors{
				"parent_id": validation.NewError("parent_id_self_reference", "comment cannot be its own parent"),
			}
		}
	}

	return nil
}

// ValidateBody validates a comment body submitted for posting.
func (v *Validator) ValidateBody(body string) error {
	return validation.Errors{
		"body": validation.Validate(body,
			validation.By(notBlankRule),
			validation.By(maxLengthRule(v.maxBodyLength)),
		),
	}.Filter()
}

func notBlankRule(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("body_required", "body is required")
	}
	return nil
}

// maxLengthRule creates a validation rule for max body length in characters.
func maxLengthRule(maxChars int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(s) > maxChars {
			return validation.NewError("body_too_long", "body exceeds maximum length")
		}
		return nil
	}
}

func prefixErrors(prefix string, err error) error {
	ve, ok := err.(validation.Errors)
	if !ok {
		return err
	}
	out := make(validation.Errors, len(ve))
	for field, fieldErr := range ve {
		out[prefix+field] = fieldErr
	}
	return out
}

// ConvertValidationErrors converts ozzo validation errors to MalformedInputErrors,
// sorted by field for stable output.
func ConvertValidationErrors(index int, commentID int64, err error) []*domain.MalformedInputError {
	var errs []*domain.MalformedInputError

	if ve, ok := err.(validation.Errors); ok {
		fields := make([]string, 0, len(ve))
		for field := range ve {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			errs = append(errs, &domain.MalformedInputError{
				Index:     index,
				CommentID: commentID,
				Field:     field,
				Reason:    ve[field].Error(),
			})
		}
	} else if err != nil {
		errs = append(errs, &domain.MalformedInputError{
			Index:     index,
			CommentID: commentID,
			Field:     "unknown",
			Reason:    err.Error(),
		})
	}

	return errs
}
