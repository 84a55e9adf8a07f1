package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Mapping and node attribute order is significant.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case MappingType, NodeType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports structural equality, attribute order included.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Mapping < Node
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case MappingType:
		return 5
	case NodeType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64. Integers and floats are distinct
	// variants and never compare equal.
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	return cmp.Compare(*a.Float64, *b.Float64)
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	return 1
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// SameIdentity reports whether two nodes are the same entity for merge
// purposes. Classes must match. Nodes carrying a name attribute are
// identified by (_class, name); if exactly one carries a name they are
// distinct; nodes without names are the same entity only when their
// full attribute sets, children excluded, are equal. Non-node values
// appearing in a children list are identified by full structural
// equality.
func SameIdentity(a, b *Node) bool {
	if a.Type != NodeType || b.Type != NodeType {
		return Compare(a, b) == 0
	}
	if Compare(Get(a, ClassField), Get(b, ClassField)) != 0 {
		return false
	}
	aName := Get(a, NameField)
	bName := Get(b, NameField)
	if aName != nil && bName != nil {
		return Compare(aName, bName) == 0
	}
	if aName != nil || bName != nil {
		return false
	}
	return attrsEqual(a, b)
}

// attrsEqual compares attribute sets excluding children, ignoring
// attribute order.
func attrsEqual(a, b *Node) bool {
	if countAttrs(a) != countAttrs(b) {
		return false
	}
	for i, field := range a.Fields {
		if field.String == ChildrenField {
			continue
		}
		bv := Get(b, field.String)
		if bv == nil {
			return false
		}
		if Compare(a.Values[i], bv) != 0 {
			return false
		}
	}
	return true
}

func countAttrs(n *Node) int {
	c := 0
	for _, field := range n.Fields {
		if field.String == ChildrenField {
			continue
		}
		c++
	}
	return c
}
