// Package tree builds and inspects parent-pointer hierarchies (menus, organizations).
// Everything here is pure: no I/O, deterministic output for a given input.
package tree

import (
	"encoding/json"
	"sort"
)

// Item is any flat record that knows its identity, parent and sibling sort key.
type Item interface {
	TreeID() int64
	TreeParentID() *int64
	TreeSortKey() int
}

// Node wraps an item with its ordered children.
type Node[T Item] struct {
	Item     T
	Children []*Node[T]
}

// MarshalJSON flattens the item's own fields next to a "children" array.
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(n.Item)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	children := n.Children
	if children == nil {
		children = []*Node[T]{}
	}
	if fields["children"], err = json.Marshal(children); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// BuildTree nests items under their parents. With a nil parentKey it returns the whole forest;
// otherwise only the subtrees hanging below parentKey.
//
// Siblings are ordered by sort key, then id. Items whose parent is absent from the input are
// treated as roots. Items caught in a parent cycle are still emitted exactly once: the
// lowest-ordered member of each cycle is promoted to a root.
func BuildTree[T Item](items []T, parentKey *int64) []*Node[T] {
	present := make(map[int64]struct{}, len(items))
	for _, it := range items {
		present[it.TreeID()] = struct{}{}
	}

	byParent := make(map[int64][]T)
	var roots []T
	for _, it := range items {
		pid := it.TreeParentID()
		if pid == nil {
			roots = append(roots, it)
			continue
		}
		if _, ok := present[*pid]; !ok {
			roots = append(roots, it)
			continue
		}
		byParent[*pid] = append(byParent[*pid], it)
	}

	visited := make(map[int64]bool, len(items))
	var build func(level []T) []*Node[T]
	build = func(level []T) []*Node[T] {
		sortItems(level)
		nodes := make([]*Node[T], 0, len(level))
		for _, it := range level {
			if visited[it.TreeID()] {
				continue
			}
			visited[it.TreeID()] = true
			nodes = append(nodes, &Node[T]{Item: it, Children: build(byParent[it.TreeID()])})
		}
		return nodes
	}

	if parentKey != nil {
		var level []T
		for _, it := range items {
			if pid := it.TreeParentID(); pid != nil && *pid == *parentKey {
				level = append(level, it)
			}
		}
		return build(level)
	}

	forest := build(roots)
	if len(visited) == len(present) {
		return forest
	}

	leftover := make([]T, 0, len(present)-len(visited))
	for _, it := range items {
		if !visited[it.TreeID()] {
			leftover = append(leftover, it)
		}
	}
	sortItems(leftover)
	for _, it := range leftover {
		forest = append(forest, build([]T{it})...)
	}
	return forest
}

// Flatten walks a forest depth-first (pre-order) and returns the items.
func Flatten[T Item](forest []*Node[T]) []T {
	var out []T
	var walk func(nodes []*Node[T])
	walk = func(nodes []*Node[T]) {
		for _, n := range nodes {
			out = append(out, n.Item)
			walk(n.Children)
		}
	}
	walk(forest)
	return out
}

// WouldCreateCycle reports whether making proposedParentID the parent of nodeID closes a loop.
// The walk follows parent pointers from proposedParentID and is bounded by len(nodes), so
// malformed data that already contains a cycle also yields true.
func WouldCreateCycle[T Item](nodes []T, nodeID int64, proposedParentID *int64) bool {
	if proposedParentID == nil {
		return false
	}
	parents := parentIndex(nodes)

	cur := proposedParentID
	steps := 0
	for cur != nil {
		if *cur == nodeID {
			return true
		}
		steps++
		if steps > len(nodes) {
			return true
		}
		next, ok := parents[*cur]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}

// WithAncestors returns selected plus every ancestor of a selected item found in all.
// Order follows all.
func WithAncestors[T Item](all []T, selected []T) []T {
	parents := parentIndex(all)
	keep := make(map[int64]bool, len(selected))
	for _, s := range selected {
		keep[s.TreeID()] = true
		cur := s.TreeParentID()
		for steps := 0; cur != nil && steps <= len(all); steps++ {
			if keep[*cur] {
				break
			}
			if _, ok := parents[*cur]; !ok {
				break
			}
			keep[*cur] = true
			cur = parents[*cur]
		}
	}
	out := make([]T, 0, len(keep))
	for _, it := range all {
		if keep[it.TreeID()] {
			out = append(out, it)
		}
	}
	return out
}

func parentIndex[T Item](nodes []T) map[int64]*int64 {
	parents := make(map[int64]*int64, len(nodes))
	for _, n := range nodes {
		parents[n.TreeID()] = n.TreeParentID()
	}
	return parents
}

func sortItems[T Item](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TreeSortKey() != items[j].TreeSortKey() {
			return items[i].TreeSortKey() < items[j].TreeSortKey()
		}
		return items[i].TreeID() < items[j].TreeID()
	})
}
