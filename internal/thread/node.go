// Package thread turns flat comment rows into an ordered, depth-bounded discussion forest.
//
// The pipeline is Normalize -> Build -> Order -> Render. Every stage is a pure, synchronous
// transformation over data owned by a single request; nothing here is shared between
// requests or performs I/O.
package thread

import (
	"errors"

	"comment-threads/internal/domain"
)

var (
	// ErrNodeNotFound is returned when a comment id is not part of the forest.
	ErrNodeNotFound = errors.New("comment not found in thread")
	// ErrNotBoundaryNode is returned when expansion is toggled on a node that does not
	// sit at the nesting boundary or has no replies.
	ErrNotBoundaryNode = errors.New("comment is not a thread continuation point")
)

// Node is a comment inside a Forest. Children holds arena indices, not pointers.
type Node struct {
	Record         domain.CommentRecord
	Author         domain.AuthorProfile
	IsAdminComment bool
	Children       []int
}

// Forest is an arena of comment nodes for a single content item.
type Forest struct {
	nodes   []Node
	index   map[int64]int
	parents []int
	roots   []int
	orphans int
	cycles  int
}

// Len returns the number of comments in the forest.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Node returns the node stored at arena index i.
func (f *Forest) Node(i int) *Node {
	return &f.nodes[i]
}

// Lookup returns the arena index of the comment with the given id.
func (f *Forest) Lookup(id int64) (int, bool) {
	i, ok := f.index[id]
	return i, ok
}

// Roots returns the arena indices of the root comments in display order.
func (f *Forest) Roots() []int {
	return f.roots
}

// Parent returns the arena index of i's parent, or -1 for roots.
func (f *Forest) Parent(i int) int {
	return f.parents[i]
}

// Depth returns the nesting depth of arena index i (0 for roots).
func (f *Forest) Depth(i int) int {
	depth := 0
	for p := f.parents[i]; p >= 0; p = f.parents[p] {
		depth++
	}
	return depth
}

// Orphans returns how many comments referenced a parent that could not be resolved
// and were promoted to roots.
func (f *Forest) Orphans() int {
	return f.orphans
}

// BrokenCycles returns how many parent cycles were cut while building.
func (f *Forest) BrokenCycles() int {
	return f.cycles
}

// CountDescendants returns the size of i's subtree, excluding i itself.
func (f *Forest) CountDescendants(i int) int {
	count := 0
	stack := append([]int(nil), f.nodes[i].Children...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, f.nodes[n].Children...)
	}
	return count
}
