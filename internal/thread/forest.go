package thread

import "comment-threads/internal/domain"

// Build links normalized nodes into a forest through their parent references.
//
// A node whose parent is missing, or belongs to a different content item, is kept
// as a root instead of being dropped. Parent cycles are cut at the member with the
// earliest (CreatedAt, ID), so every input node appears exactly once. If ids repeat,
// the first occurrence wins. Child and root lists are in input order until Order runs.
func Build(nodes []Node) *Forest {
	f := &Forest{
		nodes: make([]Node, 0, len(nodes)),
		index: make(map[int64]int, len(nodes)),
	}

	for _, n := range nodes {
		if _, dup := f.index[n.Record.ID]; dup {
			continue
		}
		n.Children = nil
		f.index[n.Record.ID] = len(f.nodes)
		f.nodes = append(f.nodes, n)
	}

	f.parents = make([]int, len(f.nodes))
	for i := range f.nodes {
		f.parents[i] = -1
		rec := &f.nodes[i].Record
		if rec.IsRoot() {
			continue
		}
		p, ok := f.index[*rec.ParentID]
		if !ok || f.nodes[p].Record.ContentItem != rec.ContentItem {
			f.orphans++
			continue
		}
		f.parents[i] = p
	}

	f.breakCycles()

	for i := range f.nodes {
		if p := f.parents[i]; p >= 0 {
			f.nodes[p].Children = append(f.nodes[p].Children, i)
		} else {
			f.roots = append(f.roots, i)
		}
	}

	return f
}

// breakCycles walks each parent chain once, coloring nodes as it goes.
// Reaching a node that is on the current chain means the chain loops back on itself.
func (f *Forest) breakCycles() {
	const (
		unvisited = iota
		onPath
		done
	)

	state := make([]uint8, len(f.nodes))
	var path []int
	for start := range f.nodes {
		if state[start] != unvisited {
			continue
		}

		path = path[:0]
		i := start
		for i >= 0 && state[i] == unvisited {
			state[i] = onPath
			path = append(path, i)
			i = f.parents[i]
		}

		if i >= 0 && state[i] == onPath {
			pos := 0
			for path[pos] != i {
				pos++
			}
			cut := earliest(f.nodes, path[pos:])
			f.parents[cut] = -1
			f.cycles++
		}

		for _, j := range path {
			state[j] = done
		}
	}
}

func earliest(nodes []Node, members []int) int {
	best := members[0]
	for _, m := range members[1:] {
		if olderFirst(&nodes[m].Record, &nodes[best].Record) {
			best = m
		}
	}
	return best
}

// BuildThreadForest normalizes, links and orders raw rows in one step.
// Malformed rows are dropped and returned alongside the forest.
func BuildThreadForest(rows []domain.CommentRow) (*Forest, []*domain.MalformedInputError) {
	nodes, rejected := Normalize(rows)
	f := Build(nodes)
	Order(f)
	return f, rejected
}
