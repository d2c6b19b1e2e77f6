package thread

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ExpansionSet holds the ids of boundary comments whose continuation is expanded.
// It belongs to a caller's session or request, never to the process.
type ExpansionSet map[int64]struct{}

// NewExpansionSet returns a set containing ids.
func NewExpansionSet(ids ...int64) ExpansionSet {
	s := make(ExpansionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// ParseExpansionSet parses a comma separated id list such as "12,40".
func ParseExpansionSet(raw string) (ExpansionSet, error) {
	s := NewExpansionSet()
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid comment id %q in expansion list", part)
		}
		s[id] = struct{}{}
	}
	return s, nil
}

// Has reports whether id is expanded. A nil set has no members.
func (s ExpansionSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips id's membership and reports whether it is now expanded.
func (s ExpansionSet) Toggle(id int64) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Clone returns an independent copy of the set.
func (s ExpansionSet) Clone() ExpansionSet {
	out := make(ExpansionSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Merge adds every member of other to s.
func (s ExpansionSet) Merge(other ExpansionSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// IDs returns the members in ascending order.
func (s ExpansionSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
