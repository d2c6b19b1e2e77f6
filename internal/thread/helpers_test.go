package thread

import (
	"time"

	"comment-threads/internal/domain"
)

var (
	testItem = domain.ContentItem{Kind: domain.ContentKindReview, ID: "r-1"}
	epoch    = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func int64Ptr(v int64) *int64 { return &v }

// row builds a valid user row; parent 0 means root, t is seconds after epoch.
func row(id, parent int64, t int) domain.CommentRow {
	r := domain.CommentRow{
		CommentRecord: domain.CommentRecord{
			ID:          id,
			ContentItem: testItem,
			AuthorID:    "u-1",
			AuthorRole:  domain.RoleUser,
			Body:        "comment",
			CreatedAt:   epoch.Add(time.Duration(t) * time.Second),
		},
		Author: domain.AuthorProfile{DisplayName: "User", Handle: "user"},
	}
	if parent != 0 {
		r.ParentID = int64Ptr(parent)
	}
	return r
}

func ids(f *Forest, indices []int) []int64 {
	out := make([]int64, len(indices))
	for k, i := range indices {
		out[k] = f.Node(i).Record.ID
	}
	return out
}

func childIDs(f *Forest, id int64) []int64 {
	i, ok := f.Lookup(id)
	if !ok {
		return nil
	}
	return ids(f, f.Node(i).Children)
}

// chain builds a single reply chain 1 <- 2 <- ... <- n.
func chain(n int) []domain.CommentRow {
	rows := make([]domain.CommentRow, 0, n)
	for id := 1; id <= n; id++ {
		rows = append(rows, row(int64(id), int64(id-1), id))
	}
	return rows
}
