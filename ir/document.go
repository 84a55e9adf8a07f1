package ir

// Document is the top-level container: an ordered metadata mapping and
// an ordered sequence of root nodes.
//
// Metadata carries the single-line header preceding the document body.
// The header syntax has no quoting, so metadata values are re-typed as
// scalars on parse; a string value whose text looks numeric or boolean
// does not survive a round trip as a string.
type Document struct {
	Metadata *Node
	Roots    []*Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Metadata: FromKeyVals(nil),
	}
}

// Meta returns the metadata value for key, or nil if absent.
func (d *Document) Meta(key string) *Node {
	if d.Metadata == nil {
		return nil
	}
	return Get(d.Metadata, key)
}

// SetMeta sets a metadata value, keeping the position of an existing
// key and appending a new one.
func (d *Document) SetMeta(key string, v *Node) {
	if d.Metadata == nil {
		d.Metadata = FromKeyVals(nil)
	}
	d.Metadata.Set(key, v)
}

// MetaKeys returns the metadata keys in insertion order.
func (d *Document) MetaKeys() []string {
	if d.Metadata == nil {
		return nil
	}
	keys := make([]string, len(d.Metadata.Fields))
	for i, f := range d.Metadata.Fields {
		keys[i] = f.String
	}
	return keys
}

// AddRoot appends a root node.
func (d *Document) AddRoot(n *Node) {
	n.Parent = nil
	n.ParentIndex = len(d.Roots)
	d.Roots = append(d.Roots, n)
}

func (d *Document) Clone() *Document {
	res := &Document{}
	if d.Metadata != nil {
		res.Metadata = d.Metadata.Clone()
	}
	res.Roots = make([]*Node, len(d.Roots))
	for i, r := range d.Roots {
		res.Roots[i] = r.Clone()
	}
	return res
}

// EqualDocuments reports structural equality of two documents:
// metadata keys, values, and order, and the full root node structure.
func EqualDocuments(a, b *Document) bool {
	am, bm := a.Metadata, b.Metadata
	if am == nil {
		am = FromKeyVals(nil)
	}
	if bm == nil {
		bm = FromKeyVals(nil)
	}
	if Compare(am, bm) != 0 {
		return false
	}
	if len(a.Roots) != len(b.Roots) {
		return false
	}
	for i := range a.Roots {
		if Compare(a.Roots[i], b.Roots[i]) != 0 {
			return false
		}
	}
	return true
}
