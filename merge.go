package kitsune

import (
	"fmt"

	"github.com/kitsunelab/kitsune-format/ir"
)

// Merge merges source into target in place; source is never mutated.
//
// Metadata: source keys absent from target are appended in source
// order; for a key present in both, target's value is replaced only
// when overwriteMetadata is true. The order of target's pre-existing
// keys never changes.
//
// Nodes: for each source node, a target node with the same identity
// (see ir.SameIdentity) has its children merged recursively; the
// matched target node's other attributes are never overwritten. A
// source node with no duplicate in target is appended as a deep copy,
// entire subtree included. Duplicate detection is exact-match only:
// partial attribute overlap without a name match never merges.
//
// The only failure mode is nesting beyond ir.DefaultMaxDepth, which
// wraps ir.ErrDepth.
func Merge(target, source *ir.Document, overwriteMetadata bool) error {
	mergeMetadata(target, source, overwriteMetadata)
	for _, s := range source.Roots {
		t := findDuplicate(target.Roots, s)
		if t == nil {
			target.AddRoot(s.Clone())
			continue
		}
		if err := mergeChildren(t, s, 1); err != nil {
			return err
		}
	}
	return nil
}

func mergeMetadata(target, source *ir.Document, overwrite bool) {
	if source.Metadata == nil {
		return
	}
	for i, field := range source.Metadata.Fields {
		key := field.String
		if target.Meta(key) != nil && !overwrite {
			continue
		}
		target.SetMeta(key, source.Metadata.Values[i].Clone())
	}
}

// mergeChildren merges the child list of source node s into matched
// target node t, leaving t's non-children attributes untouched.
func mergeChildren(t, s *ir.Node, depth int) error {
	if depth > ir.DefaultMaxDepth {
		return fmt.Errorf("%w: merging", ir.ErrDepth)
	}
	for _, sc := range s.Children() {
		tc := findDuplicate(t.Children(), sc)
		if tc == nil {
			t.AddChild(sc.Clone())
			continue
		}
		if err := mergeChildren(tc, sc, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func findDuplicate(list []*ir.Node, s *ir.Node) *ir.Node {
	for _, t := range list {
		if ir.SameIdentity(t, s) {
			return t
		}
	}
	return nil
}
