package types

import "github.com/google/btree"

const idSetDegree = 16

// IDSet is an ordered, de-duplicating set of resource identifiers.
// The zero value is ready to use.
type IDSet struct {
	tree *btree.BTreeG[string]
}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...string) *IDSet {
	s := &IDSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was not already present.
// Empty identifiers are ignored.
func (s *IDSet) Add(id string) bool {
	if id == "" {
		return false
	}
	if s.tree == nil {
		s.tree = btree.NewOrderedG[string](idSetDegree)
	}
	_, found := s.tree.ReplaceOrInsert(id)
	return !found
}

// Remove deletes id and reports whether it was present.
func (s *IDSet) Remove(id string) bool {
	if s == nil || s.tree == nil {
		return false
	}
	_, found := s.tree.Delete(id)
	return found
}

// Has reports whether id is in the set.
func (s *IDSet) Has(id string) bool {
	if s == nil || s.tree == nil {
		return false
	}
	return s.tree.Has(id)
}

// Len returns the number of identifiers.
func (s *IDSet) Len() int {
	if s == nil || s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Items returns the identifiers in ascending order.
func (s *IDSet) Items() []string {
	items := make([]string, 0, s.Len())
	if s.Len() == 0 {
		return items
	}
	s.tree.Ascend(func(id string) bool {
		items = append(items, id)
		return true
	})
	return items
}
