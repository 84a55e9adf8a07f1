// Package ir provides the in-memory representation of Kitsune format
// documents.
//
// # Overview
//
// A Kitsune document is a metadata header plus an ordered sequence of
// root nodes. Every value in a document, scalar or composite, is
// represented by an ir.Node with a Type discriminator. The same
// structure represents plain values, ordered mappings, and scene nodes;
// the Type field tells them apart.
//
// # Node Structure
//
// Node is a recursive tagged union:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: array (ordered list), mapping (ordered
//     string-keyed pairs), node (a mapping that is a scene node)
//
// For MappingType and NodeType, Fields[i] is the key for Values[i];
// there are always as many fields as values. Keys are unique within a
// container and insertion order is preserved; order is significant for
// encoding. For ArrayType only Values is populated.
//
// NodeType values additionally follow the children convention: an
// attribute named "children" whose value is an array of further nodes
// holds the node's ordered child nodes. Children are otherwise ordinary
// attribute values.
//
// # Numbers
//
// NumberType carries exactly one of Int64 or Float64. The distinction
// between integers and floats is preserved through encode/parse round
// trips.
//
// # Ownership
//
// A node is exclusively owned by the container holding it: a document's
// root sequence, a children array, or a mapping/array value. Cycles are
// not representable; Set and AddChild panic when asked to insert a node
// into its own subtree.
//
// # Creating Nodes
//
// Use constructor functions to create values:
//
//	s := ir.FromString("body")
//	i := ir.FromInt(42)
//	f := ir.FromFloat(1.5)
//	b := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	node := ir.NewNode([]ir.KeyVal{
//	    {Key: ir.FromString("_class"), Val: ir.FromString("BodyGroup")},
//	    {Key: ir.FromString("name"), Val: ir.FromString("body")},
//	})
//
// # Comparison
//
// Compare orders nodes structurally; Equal reports structural equality
// including attribute order. SameIdentity implements the weaker merge
// identity: nodes with a name attribute are identified by their
// (_class, name) pair, nodes without one by their full attribute set
// excluding children.
//
// # Thread Safety
//
// Node and Document structures are not safe for concurrent mutation.
// Callers needing concurrent access must serialize writers externally
// or operate on independent clones.
//
// # Related Packages
//
//   - github.com/kitsunelab/kitsune-format/parse - parses text into documents
//   - github.com/kitsunelab/kitsune-format/encode - encodes documents to text
//   - github.com/kitsunelab/kitsune-format - query and merge over documents
package ir
