package service_test

import (
	"time"

	"comment-threads/internal/domain"
)

var (
	reviewItem = domain.ContentItem{Kind: domain.ContentKindReview, ID: "rev-1"}
	epoch      = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	alice = domain.NewCaller("u-alice", domain.RoleUser, domain.AuthorProfile{DisplayName: "Alice", Handle: "alice"})
	admin = domain.NewCaller("u-admin", domain.RoleAdmin, domain.AuthorProfile{DisplayName: "Mod", Handle: "mod"})
)

func int64Ptr(v int64) *int64 { return &v }

// row builds a stored row; parent 0 means root, t is seconds after epoch.
func row(id, parent int64, t int) domain.CommentRow {
	r := domain.CommentRow{
		CommentRecord: domain.CommentRecord{
			ID:          id,
			ContentItem: reviewItem,
			AuthorID:    "u-alice",
			AuthorRole:  domain.RoleUser,
			Body:        "comment",
			CreatedAt:   epoch.Add(time.Duration(t) * time.Second),
		},
		Author: domain.AuthorProfile{DisplayName: "Alice", Handle: "alice"},
	}
	if parent != 0 {
		r.ParentID = int64Ptr(parent)
	}
	return r
}

// chain builds one reply chain 1 <- 2 <- ... <- n.
func chain(n int) []domain.CommentRow {
	rows := make([]domain.CommentRow, 0, n)
	for id := 1; id <= n; id++ {
		rows = append(rows, row(int64(id), int64(id-1), id))
	}
	return rows
}

// bufferWriter is an in-memory StreamWriter.
type bufferWriter struct {
	data    []byte
	flushes int
	failAt  int
	writes  int
}

func (w *bufferWriter) Write(p []byte) error {
	w.writes++
	if w.failAt > 0 && w.writes >= w.failAt {
		return errWriteFailed
	}
	w.data = append(w.data, p...)
	return nil
}

func (w *bufferWriter) Flush() { w.flushes++ }
