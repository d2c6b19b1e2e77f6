package thread

import (
	"time"

	"comment-threads/internal/domain"
)

// DefaultMaxNestingDepth is the zero-indexed depth of boundary comments: comments at
// depths 0-3 render nested, replies below a depth-3 comment sit behind a continuation.
const DefaultMaxNestingDepth = 3

// Comment is the display projection of a single node.
type Comment struct {
	ID             int64                `json:"id"`
	ParentID       *int64               `json:"parent_id,omitempty"`
	AuthorID       string               `json:"author_id"`
	Author         domain.AuthorProfile `json:"author"`
	Body           string               `json:"body"`
	CreatedAt      time.Time            `json:"created_at"`
	IsAdminComment bool                 `json:"is_admin_comment"`
}

// ViewNode is a comment rendered in nested mode.
type ViewNode struct {
	Comment
	Depth        int           `json:"depth"`
	Replies      []*ViewNode   `json:"replies"`
	Continuation *Continuation `json:"continuation,omitempty"`
}

// Continuation replaces the replies of a boundary comment. Thread is only set when the
// boundary is expanded.
type Continuation struct {
	BoundaryID      int64       `json:"boundary_id"`
	DescendantCount int         `json:"descendant_count"`
	Expanded        bool        `json:"expanded"`
	Thread          *ThreadView `json:"thread,omitempty"`
}

// ThreadView is the flattened subtree below a boundary comment.
type ThreadView struct {
	BoundaryID int64         `json:"boundary_id"`
	Entries    []ThreadEntry `json:"entries"`
}

// ThreadEntry is one flattened comment. Number counts from 1 in traversal order and
// Depth is relative to the boundary (0 for its direct replies).
type ThreadEntry struct {
	Number  int     `json:"number"`
	Depth   int     `json:"depth"`
	Comment Comment `json:"comment"`
}

// Renderer renders ordered forests with a bounded nesting depth.
type Renderer struct {
	maxDepth int
}

// NewRenderer returns a Renderer whose boundary sits at maxDepth. Negative values
// use DefaultMaxNestingDepth.
func NewRenderer(maxDepth int) *Renderer {
	if maxDepth < 0 {
		maxDepth = DefaultMaxNestingDepth
	}
	return &Renderer{maxDepth: maxDepth}
}

// MaxDepth returns the boundary depth.
func (r *Renderer) MaxDepth() int {
	return r.maxDepth
}

// Render materializes the forest. Comments shallower than the boundary always render
// nested; the replies of a boundary comment collapse into a Continuation unless its id
// is in expanded.
func (r *Renderer) Render(f *Forest, expanded ExpansionSet) []*ViewNode {
	out := make([]*ViewNode, 0, len(f.roots))
	for _, root := range f.roots {
		out = append(out, r.renderNode(f, root, 0, expanded))
	}
	return out
}

func (r *Renderer) renderNode(f *Forest, i, depth int, expanded ExpansionSet) *ViewNode {
	n := &f.nodes[i]
	vn := &ViewNode{
		Comment: CommentOf(n),
		Depth:   depth,
		Replies: make([]*ViewNode, 0, len(n.Children)),
	}
	if len(n.Children) == 0 {
		return vn
	}

	if depth < r.maxDepth {
		for _, c := range n.Children {
			vn.Replies = append(vn.Replies, r.renderNode(f, c, depth+1, expanded))
		}
		return vn
	}

	cont := &Continuation{
		BoundaryID:      n.Record.ID,
		DescendantCount: f.CountDescendants(i),
		Expanded:        expanded.Has(n.Record.ID),
	}
	if cont.Expanded {
		cont.Thread = flatten(f, i)
	}
	vn.Continuation = cont
	return vn
}

// IsBoundary reports whether arena index i is a boundary comment with replies.
func (r *Renderer) IsBoundary(f *Forest, i int) bool {
	return len(f.nodes[i].Children) > 0 && f.Depth(i) == r.maxDepth
}

// Flatten returns the pre-order flattening of the subtree below boundaryID.
// The forest is not modified.
func Flatten(f *Forest, boundaryID int64) (*ThreadView, error) {
	i, ok := f.index[boundaryID]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return flatten(f, i), nil
}

func flatten(f *Forest, boundary int) *ThreadView {
	type frame struct {
		node  int
		depth int
	}

	view := &ThreadView{
		BoundaryID: f.nodes[boundary].Record.ID,
		Entries:    make([]ThreadEntry, 0),
	}

	children := f.nodes[boundary].Children
	stack := make([]frame, 0, len(children))
	for k := len(children) - 1; k >= 0; k-- {
		stack = append(stack, frame{node: children[k], depth: 0})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &f.nodes[top.node]
		view.Entries = append(view.Entries, ThreadEntry{
			Number:  len(view.Entries) + 1,
			Depth:   top.depth,
			Comment: CommentOf(n),
		})
		for k := len(n.Children) - 1; k >= 0; k-- {
			stack = append(stack, frame{node: n.Children[k], depth: top.depth + 1})
		}
	}

	return view
}

// ToggleThreadExpansion flips the expansion state of a boundary comment. It returns the
// flattened thread when the boundary is now expanded, or nil when it collapsed, together
// with the updated set. The input set is not modified.
func ToggleThreadExpansion(f *Forest, r *Renderer, boundaryID int64, expanded ExpansionSet) (*ThreadView, ExpansionSet, error) {
	i, ok := f.index[boundaryID]
	if !ok {
		return nil, expanded, ErrNodeNotFound
	}
	if !r.IsBoundary(f, i) {
		return nil, expanded, ErrNotBoundaryNode
	}

	updated := expanded.Clone()
	if !updated.Toggle(boundaryID) {
		return nil, updated, nil
	}
	return flatten(f, i), updated, nil
}

// Walk visits every comment in display order (pre-order, roots first) with its
// absolute depth. It stops at the first error returned by fn.
func Walk(f *Forest, fn func(n *Node, depth int) error) error {
	type frame struct {
		node  int
		depth int
	}

	stack := make([]frame, 0, len(f.roots))
	for k := len(f.roots) - 1; k >= 0; k-- {
		stack = append(stack, frame{node: f.roots[k]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &f.nodes[top.node]
		if err := fn(n, top.depth); err != nil {
			return err
		}
		for k := len(n.Children) - 1; k >= 0; k-- {
			stack = append(stack, frame{node: n.Children[k], depth: top.depth + 1})
		}
	}
	return nil
}

// CommentOf returns the display form of a node.
func CommentOf(n *Node) Comment {
	return Comment{
		ID:             n.Record.ID,
		ParentID:       n.Record.ParentID,
		AuthorID:       n.Record.AuthorID,
		Author:         n.Author,
		Body:           n.Record.Body,
		CreatedAt:      n.Record.CreatedAt,
		IsAdminComment: n.IsAdminComment,
	}
}
