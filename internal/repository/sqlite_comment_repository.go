package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"comment-threads/internal/domain"
	"comment-threads/internal/infrastructure/database"
)

// SQLiteCommentRepository implements CommentRepository on an embedded
// SQLite database. Timestamps are stored as RFC 3339 text in UTC.
type SQLiteCommentRepository struct {
	db  *database.SQLiteDB
	now func() time.Time
}

// NewSQLiteCommentRepository creates a new SQLiteCommentRepository.
func NewSQLiteCommentRepository(db *database.SQLiteDB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{db: db, now: time.Now}
}

// WithClock replaces the time source used for created_at. Tests use it to
// make insertion times deterministic.
func (r *SQLiteCommentRepository) WithClock(now func() time.Time) *SQLiteCommentRepository {
	r.now = now
	return r
}

// FetchByContentItem loads every comment on item with its author's profile.
func (r *SQLiteCommentRepository) FetchByContentItem(ctx context.Context, item domain.ContentItem) ([]domain.CommentRow, error) {
	rows, err := r.db.Reader.QueryContext(ctx, `
		SELECT c.id, c.parent_id, c.content_kind, c.content_id, c.author_id, c.author_role,
		       c.body, c.created_at,
		       COALESCE(a.display_name, ''), COALESCE(a.handle, ''), a.avatar_ref
		FROM comments c
		LEFT JOIN authors a ON a.id = c.author_id
		WHERE c.content_kind = ? AND c.content_id = ?
	`, string(item.Kind), item.ID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var result []domain.CommentRow
	for rows.Next() {
		var (
			row       domain.CommentRow
			parentID  sql.NullInt64
			kind      string
			role      string
			createdAt string
			avatarRef sql.NullString
		)
		if err := rows.Scan(
			&row.ID, &parentID, &kind, &row.ContentItem.ID, &row.AuthorID, &role,
			&row.Body, &createdAt,
			&row.Author.DisplayName, &row.Author.Handle, &avatarRef,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}

		if parentID.Valid {
			p := parentID.Int64
			row.ParentID = &p
		}
		if avatarRef.Valid {
			a := avatarRef.String
			row.Author.AvatarRef = &a
		}
		row.ContentItem.Kind = domain.ContentKind(kind)
		row.AuthorRole = domain.Role(role)

		// An unparsable timestamp leaves CreatedAt zero; normalization rejects the row.
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			row.CreatedAt = ts.UTC()
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return result, nil
}

// Create upserts the author and inserts the comment in one transaction on
// the writer connection.
func (r *SQLiteCommentRepository) Create(ctx context.Context, c domain.NewComment) (*domain.CommentRecord, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := r.now().UTC()
	stamp := now.Format(time.RFC3339Nano)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO authors (id, display_name, handle, avatar_ref, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET display_name = excluded.display_name,
		    handle = excluded.handle,
		    avatar_ref = excluded.avatar_ref,
		    updated_at = excluded.updated_at
	`, c.AuthorID, c.Author.DisplayName, c.Author.Handle, nullString(c.Author.AvatarRef), stamp); err != nil {
		return nil, fmt.Errorf("upsert author: %w", err)
	}

	var parentID sql.NullInt64
	if c.ParentID != nil {
		parentID = sql.NullInt64{Int64: *c.ParentID, Valid: true}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO comments (parent_id, content_kind, content_id, author_id, author_role, body, created_at)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE ? IS NULL OR EXISTS (
			SELECT 1 FROM comments p
			WHERE p.id = ? AND p.content_kind = ? AND p.content_id = ?
		)
	`,
		parentID, string(c.ContentItem.Kind), c.ContentItem.ID, c.AuthorID, string(c.AuthorRole), c.Body, stamp,
		parentID, parentID, string(c.ContentItem.Kind), c.ContentItem.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrParentNotFound
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read comment id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	// Round-trip through the stored text form so callers see what a later fetch returns.
	createdAt, _ := time.Parse(time.RFC3339Nano, stamp)

	return &domain.CommentRecord{
		ID:          id,
		ParentID:    c.ParentID,
		ContentItem: c.ContentItem,
		AuthorID:    c.AuthorID,
		AuthorRole:  c.AuthorRole,
		Body:        c.Body,
		CreatedAt:   createdAt,
	}, nil
}

// Delete removes one comment row.
func (r *SQLiteCommentRepository) Delete(ctx context.Context, commentID int64) (bool, error) {
	res, err := r.db.Writer.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, commentID)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return affected > 0, nil
}

// Ping checks the reader connection.
func (r *SQLiteCommentRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
