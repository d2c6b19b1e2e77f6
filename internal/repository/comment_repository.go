package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"comment-threads/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// FetchByContentItem loads every comment on item with its author's profile.
func (r *PostgresCommentRepository) FetchByContentItem(ctx context.Context, item domain.ContentItem) ([]domain.CommentRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.parent_id, c.content_kind, c.content_id, c.author_id, c.author_role,
		       c.body, c.created_at,
		       COALESCE(a.display_name, ''), COALESCE(a.handle, ''), a.avatar_ref
		FROM comments c
		LEFT JOIN authors a ON a.id = c.author_id
		WHERE c.content_kind = $1 AND c.content_id = $2
	`, string(item.Kind), item.ID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var result []domain.CommentRow
	for rows.Next() {
		var (
			row  domain.CommentRow
			kind string
			role string
		)
		if err := rows.Scan(
			&row.ID, &row.ParentID, &kind, &row.ContentItem.ID, &row.AuthorID, &role,
			&row.Body, &row.CreatedAt,
			&row.Author.DisplayName, &row.Author.Handle, &row.Author.AvatarRef,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		row.ContentItem.Kind = domain.ContentKind(kind)
		row.AuthorRole = domain.Role(role)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return result, nil
}

// Create upserts the author and inserts the comment. The parent check runs
// inside the INSERT so a concurrent delete of the parent cannot slip between
// the check and the write.
func (r *PostgresCommentRepository) Create(ctx context.Context, c domain.NewComment) (*domain.CommentRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO authors (id, display_name, handle, avatar_ref, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    handle = EXCLUDED.handle,
		    avatar_ref = EXCLUDED.avatar_ref,
		    updated_at = EXCLUDED.updated_at
	`, c.AuthorID, c.Author.DisplayName, c.Author.Handle, c.Author.AvatarRef); err != nil {
		return nil, fmt.Errorf("upsert author: %w", err)
	}

	record := domain.CommentRecord{
		ParentID:    c.ParentID,
		ContentItem: c.ContentItem,
		AuthorID:    c.AuthorID,
		AuthorRole:  c.AuthorRole,
		Body:        c.Body,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO comments (parent_id, content_kind, content_id, author_id, author_role, body, created_at)
		SELECT $1::bigint, $2::text, $3::text, $4::text, $5::text, $6::text, clock_timestamp()
		WHERE $1::bigint IS NULL OR EXISTS (
			SELECT 1 FROM comments p
			WHERE p.id = $1::bigint AND p.content_kind = $2::text AND p.content_id = $3::text
		)
		RETURNING id, created_at
	`, c.ParentID, string(c.ContentItem.Kind), c.ContentItem.ID, c.AuthorID, string(c.AuthorRole), c.Body,
	).Scan(&record.ID, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrParentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	record.CreatedAt = record.CreatedAt.UTC()
	return &record, nil
}

// Delete removes one comment row.
func (r *PostgresCommentRepository) Delete(ctx context.Context, commentID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Ping checks the pool.
func (r *PostgresCommentRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
