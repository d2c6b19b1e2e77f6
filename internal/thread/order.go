package thread

import (
	"sort"

	"comment-threads/internal/domain"
)

// Order sorts the forest in place: root threads newest first, replies at every
// depth oldest first. Equal timestamps fall back to ascending id, so applying
// Order again never changes the result.
func Order(f *Forest) {
	sort.SliceStable(f.roots, func(a, b int) bool {
		return newerFirst(&f.nodes[f.roots[a]].Record, &f.nodes[f.roots[b]].Record)
	})

	for i := range f.nodes {
		children := f.nodes[i].Children
		if len(children) <= 1 {
			continue
		}
		sort.SliceStable(children, func(a, b int) bool {
			return olderFirst(&f.nodes[children[a]].Record, &f.nodes[children[b]].Record)
		})
	}
}

func newerFirst(a, b *domain.CommentRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

func olderFirst(a, b *domain.CommentRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
