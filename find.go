package kitsune

import (
	"fmt"

	"github.com/kitsunelab/kitsune-format/ir"
)

// Filter is a flat attribute-equality filter. A node matches when its
// attribute mapping contains every (key, value) pair of the filter
// under structural equality; arrays and mappings compare element-wise
// and key-wise.
type Filter map[string]*ir.Node

// Matches reports whether n satisfies every pair of the filter. The
// empty filter matches everything.
func (f Filter) Matches(n *ir.Node) bool {
	for k, want := range f {
		have := ir.Get(n, k)
		if have == nil {
			return false
		}
		if ir.Compare(have, want) != 0 {
			return false
		}
	}
	return true
}

// Find returns the first candidate matching f, or nil. Pass a
// document's Roots or a node's Children as candidates.
func Find(candidates []*ir.Node, f Filter) *ir.Node {
	for _, n := range candidates {
		if f.Matches(n) {
			return n
		}
	}
	return nil
}

// FindAll returns every candidate matching f, in candidate order.
func FindAll(candidates []*ir.Node, f Filter) []*ir.Node {
	var res []*ir.Node
	for _, n := range candidates {
		if f.Matches(n) {
			res = append(res, n)
		}
	}
	return res
}

// FindRecursive returns the first match of a preorder depth-first
// traversal of the candidates and their descendants: each candidate
// is tested before its children, siblings left to right. Passing a
// document's Roots makes the roots themselves candidates; passing a
// node's Children searches only its descendants. Trees nested beyond
// ir.DefaultMaxDepth fail wrapping ir.ErrDepth.
func FindRecursive(candidates []*ir.Node, f Filter) (*ir.Node, error) {
	return findRecursive(candidates, f, 1)
}

func findRecursive(candidates []*ir.Node, f Filter, depth int) (*ir.Node, error) {
	if depth > ir.DefaultMaxDepth {
		return nil, fmt.Errorf("%w: searching", ir.ErrDepth)
	}
	for _, n := range candidates {
		if f.Matches(n) {
			return n, nil
		}
		res, err := findRecursive(n.Children(), f, depth+1)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// FindAllRecursive returns every match of the traversal described by
// FindRecursive, in traversal (preorder, left-to-right) order.
func FindAllRecursive(candidates []*ir.Node, f Filter) ([]*ir.Node, error) {
	var res []*ir.Node
	if err := findAllRecursive(candidates, f, 1, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func findAllRecursive(candidates []*ir.Node, f Filter, depth int, res *[]*ir.Node) error {
	if depth > ir.DefaultMaxDepth {
		return fmt.Errorf("%w: searching", ir.ErrDepth)
	}
	for _, n := range candidates {
		if f.Matches(n) {
			*res = append(*res, n)
		}
		if err := findAllRecursive(n.Children(), f, depth+1, res); err != nil {
			return err
		}
	}
	return nil
}
