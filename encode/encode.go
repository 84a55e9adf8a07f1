package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kitsunelab/kitsune-format/ir"
	"github.com/kitsunelab/kitsune-format/token"
)

type EncState struct {
	depth, indent int
	maxDepth      int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders doc in canonical form: the metadata header when
// metadata is non-empty, then the root container with one node block
// per root node.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := encodeHeader(doc, w, es); err != nil {
		return err
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for _, root := range doc.Roots {
		es.depth = 1
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeBlock(root, w, es); err != nil {
			return err
		}
	}
	es.depth = 0
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}\n")
}

// EncodeNode renders a single subtree as a brace block.
func EncodeNode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := encodeValue(n, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:   4,
		maxDepth: ir.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func encodeHeader(doc *ir.Document, w io.Writer, es *EncState) error {
	md := doc.Metadata
	if md == nil || len(md.Fields) == 0 {
		return nil
	}
	parts := make([]string, len(md.Fields))
	for i, field := range md.Fields {
		v, err := scalarText(md.Values[i])
		if err != nil {
			return fmt.Errorf("%w: metadata %q: %w", ErrEncoding, field.String, err)
		}
		parts[i] = field.String + ":" + v
	}
	hdr := "<!--" + strings.Join(parts, " ") + "-->"
	if es.Color != nil {
		hdr = es.Color(ir.MappingType, ValueColor, hdr)
	}
	return writeString(w, hdr+"\n")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if token.NeedsQuote(f) {
		f = token.Quote(f)
	}
	if es.Color != nil {
		f = es.Color(ir.MappingType, FieldColor, f)
		sep = es.Color(ir.MappingType, SepColor, sep)
	}
	return writeString(w, f+sep)
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// Main encode functions

// encodeBlock renders a node or mapping as a brace block, one
// attribute line per field in insertion order. es.depth is the
// block's own indent level; attribute lines sit one deeper.
func encodeBlock(n *ir.Node, w io.Writer, es *EncState) error {
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: encoding %s", ir.ErrDepth, n.Type)
	}
	open, end := "{", "}"
	if es.Color != nil {
		open = es.Color(n.Type, SepColor, open)
		end = es.Color(n.Type, SepColor, end)
	}
	if len(n.Fields) == 0 {
		return writeString(w, open+end)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	for i, field := range n.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, field.String, es); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encodeValue(n.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, end)
}

func encodeValue(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.MappingType, ir.NodeType:
		return encodeBlock(n, w, es)
	case ir.ArrayType:
		return encodeArray(n, w, es)
	case ir.StringType:
		return encodeString(n, w, es)
	case ir.NumberType, ir.BoolType, ir.NullType:
		v, err := scalarText(n)
		if err != nil {
			return err
		}
		return writeString(w, applyColor(es, n.Type, ValueColor, v))
	default:
		panic("type")
	}
}

// Array encoding

// encodeArray renders single-line comma-space separated arrays for
// scalar elements, and one indented element per line when any element
// is itself an array, mapping, or node.
func encodeArray(n *ir.Node, w io.Writer, es *EncState) error {
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: encoding array", ir.ErrDepth)
	}
	open, end, comma := "[", "]", ","
	if es.Color != nil {
		open = es.Color(ir.ArrayType, SepColor, open)
		end = es.Color(ir.ArrayType, SepColor, end)
		comma = es.Color(ir.ArrayType, SepColor, comma)
	}
	if len(n.Values) == 0 {
		return writeString(w, open+end)
	}
	if isFlat(n) {
		if err := writeString(w, open); err != nil {
			return err
		}
		for i, v := range n.Values {
			if i > 0 {
				if err := writeString(w, comma+" "); err != nil {
					return err
				}
			}
			if err := encodeValue(v, w, es); err != nil {
				return err
			}
		}
		return writeString(w, end)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	for i, v := range n.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeValue(v, w, es); err != nil {
			return err
		}
		if i < len(n.Values)-1 {
			if err := writeString(w, comma); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, end)
}

func isFlat(n *ir.Node) bool {
	for _, v := range n.Values {
		switch v.Type {
		case ir.ArrayType, ir.MappingType, ir.NodeType:
			return false
		}
	}
	return true
}

// String encoding

func encodeString(n *ir.Node, w io.Writer, es *EncState) error {
	v := n.String
	attr := LiteralColor
	if token.NeedsQuote(v) {
		v = token.Quote(v)
		attr = ValueColor
	}
	return writeString(w, applyColor(es, ir.StringType, attr, v))
}

// scalarText renders the scalar payload of a node; strings come back
// raw, which is what the metadata header needs.
func scalarText(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.NullType:
		return "None", nil
	case ir.BoolType:
		if n.Bool {
			return "True", nil
		}
		return "False", nil
	case ir.NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10), nil
		}
		return formatFloat(*n.Float64), nil
	case ir.StringType:
		return n.String, nil
	default:
		return "", fmt.Errorf("%w: %s is not a scalar", ErrEncoding, n.Type)
	}
}

// formatFloat always renders a fractional part so the float variant
// survives a round trip.
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(v, ".") {
		v += ".0"
	}
	return v
}
