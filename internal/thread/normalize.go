package thread

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"comment-threads/internal/domain"
	"comment-threads/internal/logger"
	"comment-threads/internal/validator"
)

var rowValidator = validator.NewValidator(0)

// DecodeRows decodes a JSON array of joined comment rows.
//
// A payload that is not a JSON array is rejected as a whole. Elements that are not
// objects, or do not decode into a row, are reported individually and skipped.
func DecodeRows(data []byte) ([]domain.CommentRow, []*domain.MalformedInputError, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil, &domain.MalformedInputError{Index: -1, Field: "input", Reason: "expected a JSON array of comment objects"}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, nil, &domain.MalformedInputError{Index: -1, Field: "input", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	rows := make([]domain.CommentRow, 0, len(elems))
	var rejected []*domain.MalformedInputError
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			rejected = append(rejected, &domain.MalformedInputError{Index: i, Field: "row", Reason: "expected an object"})
			continue
		}
		var row domain.CommentRow
		if err := json.Unmarshal(elem, &row); err != nil {
			rejected = append(rejected, &domain.MalformedInputError{Index: i, Field: "row", Reason: err.Error()})
			continue
		}
		rows = append(rows, row)
	}

	return rows, rejected, nil
}

// Normalize converts joined rows into nodes with empty child lists.
//
// Rows that fail shape validation, or repeat an id already seen, are dropped with a
// warning; the remaining rows are still returned. Empty input yields no nodes.
func Normalize(rows []domain.CommentRow) ([]Node, []*domain.MalformedInputError) {
	nodes := make([]Node, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	var rejected []*domain.MalformedInputError

	for i := range rows {
		row := rows[i]
		if err := rowValidator.ValidateCommentRow(&row); err != nil {
			errs := validator.ConvertValidationErrors(i, row.ID, err)
			logRejected(errs)
			rejected = append(rejected, errs...)
			continue
		}
		if _, dup := seen[row.ID]; dup {
			errs := []*domain.MalformedInputError{{Index: i, CommentID: row.ID, Field: "id", Reason: "duplicate_id"}}
			logRejected(errs)
			rejected = append(rejected, errs...)
			continue
		}
		seen[row.ID] = struct{}{}

		record := row.CommentRecord
		record.CreatedAt = record.CreatedAt.UTC()
		nodes = append(nodes, Node{
			Record:         record,
			Author:         row.Author,
			IsAdminComment: record.AuthorRole == domain.RoleAdmin,
		})
	}

	return nodes, rejected
}

func logRejected(errs []*domain.MalformedInputError) {
	for _, e := range errs {
		logger.Warn("Dropping malformed comment row",
			slog.Int("index", e.Index),
			slog.Int64("comment_id", e.CommentID),
			slog.String("field", e.Field),
			slog.String("reason", e.Reason))
	}
}
