package ir

import (
	"strconv"
	"strings"
)

// Conventional attribute names. ChildrenField holds a node's ordered
// child nodes; ClassField and NameField determine merge identity.
const (
	ChildrenField = "children"
	ClassField    = "_class"
	NameField     = "name"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.Values = make([]*Node, len(n.Values))
	dst.Fields = make([]*Node, len(n.Fields))
	for i, nv := range n.Values {
		dstI := &Node{}
		nv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nv.ParentField
		dst.Values[i] = dstI
	}
	for i, nf := range n.Fields {
		dstI := &Node{}
		nf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nf.String
		dst.Fields[i] = dstI
	}
	dst.String = n.String
	dst.Bool = n.Bool
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vals []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(vals))
	for i, v := range vals {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = MappingType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.ParentField = kv.Key.String
		kv.Val.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// NewNode constructs a scene node from ordered attributes. A children
// attribute, when present, must hold an array of nodes.
func NewNode(kvs []KeyVal) *Node {
	res := FromKeyVals(kvs)
	res.Type = NodeType
	return res
}

// Get returns the value of the named attribute, or nil if absent.
func Get(n *Node, field string) *Node {
	num := len(n.Fields)
	for i := range num {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Get(field string) *Node {
	return Get(n, field)
}

// GetDefault returns the stored value as-is, or def only when the key
// is absent. It never coerces; type interpretation is the caller's.
func (n *Node) GetDefault(field string, def *Node) *Node {
	if v := Get(n, field); v != nil {
		return v
	}
	return def
}

// Set sets the named attribute. An existing key is updated in place,
// keeping its position; a new key is appended. Set panics if v already
// contains n, as that would create a cycle.
func (n *Node) Set(field string, v *Node) {
	checkOwnable(n, v)
	for i := range n.Fields {
		if n.Fields[i].String != field {
			continue
		}
		v.Parent = n
		v.ParentIndex = i
		v.ParentField = field
		n.Values[i] = v
		return
	}
	i := len(n.Fields)
	key := &Node{
		Parent:      n,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	v.Parent = n
	v.ParentIndex = i
	v.ParentField = field
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
}

// Children returns the values of the children attribute, or nil when
// the node has none.
func (n *Node) Children() []*Node {
	c := Get(n, ChildrenField)
	if c == nil || c.Type != ArrayType {
		return nil
	}
	return c.Values
}

// AddChild appends child to the node's children array, creating the
// children attribute if absent. AddChild panics if child already
// contains n.
func (n *Node) AddChild(child *Node) {
	checkOwnable(n, child)
	c := Get(n, ChildrenField)
	if c == nil {
		n.Set(ChildrenField, FromSlice([]*Node{child}))
		return
	}
	child.Parent = c
	child.ParentIndex = len(c.Values)
	c.Values = append(c.Values, child)
}

// checkOwnable panics when v is the container itself or one of its
// ancestors. Each node is exclusively owned; cycles are not
// representable.
func checkOwnable(container, v *Node) {
	for p := container; p != nil; p = p.Parent {
		if p == v {
			panic("ir: node inserted into its own subtree")
		}
	}
}

// AsString returns the string payload, or ErrType for other variants.
func (n *Node) AsString() (string, error) {
	if n.Type != StringType {
		return "", typeErr(n.Type, StringType)
	}
	return n.String, nil
}

// AsInt returns the integer payload, or ErrType for other variants,
// floats included.
func (n *Node) AsInt() (int64, error) {
	if n.Type != NumberType || n.Int64 == nil {
		return 0, typeErr(n.Type, NumberType)
	}
	return *n.Int64, nil
}

// AsFloat returns the float payload, or ErrType for other variants,
// integers included.
func (n *Node) AsFloat() (float64, error) {
	if n.Type != NumberType || n.Float64 == nil {
		return 0, typeErr(n.Type, NumberType)
	}
	return *n.Float64, nil
}

// AsBool returns the boolean payload, or ErrType for other variants.
func (n *Node) AsBool() (bool, error) {
	if n.Type != BoolType {
		return false, typeErr(n.Type, BoolType)
	}
	return n.Bool, nil
}

// AsArray returns the element slice, or ErrType for other variants.
func (n *Node) AsArray() ([]*Node, error) {
	if n.Type != ArrayType {
		return nil, typeErr(n.Type, ArrayType)
	}
	return n.Values, nil
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, nn := range n.Values {
			if err := nn.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// ReType re-interprets a string node as a scalar, used for metadata
// header values which carry no quoting.
func (n *Node) ReType() {
	if n.Type != StringType {
		return
	}
	v := n.String
	switch v {
	case "None", "null":
		n.Type = NullType
		n.String = ""
		return
	case "True", "true":
		n.Type = BoolType
		n.Bool = true
		n.String = ""
		return
	case "False", "false":
		n.Type = BoolType
		n.Bool = false
		n.String = ""
		return
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		n.Type = NumberType
		n.Int64 = &i
		n.String = ""
		return
	}
	if !strings.Contains(v, ".") {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err == nil {
		n.Type = NumberType
		n.Float64 = &f
		n.String = ""
	}
}
