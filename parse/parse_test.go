package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/kitsunelab/kitsune-format/ir"
	"github.com/kitsunelab/kitsune-format/token"
)

func TestParseOK(t *testing.T) {
	pts := []string{
		``,
		`{}`,
		`{ {} }`,
		`{ {name: Torso} }`,
		`{ {name: Torso} {name: Legs} }`,
		`{ {name: Torso}, {name: Legs} }`,
		"{\n    {\n        name: Torso\n        visible: True\n    }\n}",
		`{ {vals: [1, 2, 3]} }`,
		`{ {vals: []} }`,
		`{ {vals: [[1, 2], [3]]} }`,
		`{ {m: {a: 1, b: {c: 2}}} }`,
		`{ {children: [{name: A}, {name: B}]} }`,
		`{ {"full name": "two words", 'single': 'ok'} }`,
		`{ {x: -1, y: 3.25, z: None, w: False} }`,
		"<!--version:2-->\n{ {name: Torso} }",
		"<!---->\n{}",
	}
	for _, in := range pts {
		if _, err := Parse([]byte(in)); err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse([]byte("   \n\t  "))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Roots) != 0 {
		t.Errorf("got %d roots, want 0", len(doc.Roots))
	}
	if len(doc.MetaKeys()) != 0 {
		t.Errorf("got metadata keys %v, want none", doc.MetaKeys())
	}
}

func TestParseHeader(t *testing.T) {
	in := "<!--version:2 title:hero scale:1.5 active:True missing:None-->\n{}"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	keys := doc.MetaKeys()
	want := []string{"version", "title", "scale", "active", "missing"}
	if len(keys) != len(want) {
		t.Fatalf("got keys %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if v, err := doc.Meta("version").AsInt(); err != nil || v != 2 {
		t.Errorf("version = (%v, %v), want 2", v, err)
	}
	if v, err := doc.Meta("title").AsString(); err != nil || v != "hero" {
		t.Errorf("title = (%q, %v), want hero", v, err)
	}
	if v, err := doc.Meta("scale").AsFloat(); err != nil || v != 1.5 {
		t.Errorf("scale = (%v, %v), want 1.5", v, err)
	}
	if v, err := doc.Meta("active").AsBool(); err != nil || !v {
		t.Errorf("active = (%v, %v), want true", v, err)
	}
	if doc.Meta("missing").Type != ir.NullType {
		t.Errorf("missing is %s, want Null", doc.Meta("missing").Type)
	}
}

func TestParseHeaderDuplicateKey(t *testing.T) {
	doc, err := Parse([]byte("<!--a:1 b:2 a:3-->\n{}"))
	if err != nil {
		t.Fatal(err)
	}
	keys := doc.MetaKeys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("got keys %v, want [a b]", keys)
	}
	if v, _ := doc.Meta("a").AsInt(); v != 3 {
		t.Errorf("a = %d, want 3", v)
	}
}

// Brace blocks are nodes only directly inside the root container or as
// direct elements of a children array; everywhere else they are plain
// mappings.
func TestParseNodeContext(t *testing.T) {
	in := `{
    {
        name: Torso
        offset: {x: 1, y: 2}
        children: [
            {name: Arm},
            {name: Hand, grip: {strength: 5}}
        ]
        lookup: [{key: a}]
    }
}`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Roots) != 1 {
		t.Fatalf("got %d roots", len(doc.Roots))
	}
	root := doc.Roots[0]
	if root.Type != ir.NodeType {
		t.Errorf("root is %s, want Node", root.Type)
	}
	if got := root.Get("offset").Type; got != ir.MappingType {
		t.Errorf("offset is %s, want Mapping", got)
	}
	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children", len(kids))
	}
	for i, k := range kids {
		if k.Type != ir.NodeType {
			t.Errorf("child %d is %s, want Node", i, k.Type)
		}
	}
	if got := kids[1].Get("grip").Type; got != ir.MappingType {
		t.Errorf("grip is %s, want Mapping", got)
	}
	// brace elements of a non-children array are mappings
	lookup := root.Get("lookup")
	if got := lookup.Values[0].Type; got != ir.MappingType {
		t.Errorf("lookup element is %s, want Mapping", got)
	}
}

// Nesting an array inside a children array drops the node
// interpretation for the inner array's brace elements.
func TestParseNodeContextNestedArray(t *testing.T) {
	doc, err := Parse([]byte(`{ {children: [[{x: 1}]]} }`))
	if err != nil {
		t.Fatal(err)
	}
	inner := doc.Roots[0].Get("children").Values[0]
	if inner.Type != ir.ArrayType {
		t.Fatalf("inner is %s, want Array", inner.Type)
	}
	if got := inner.Values[0].Type; got != ir.MappingType {
		t.Errorf("nested brace block is %s, want Mapping", got)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	doc, err := Parse([]byte(`{ {a: 1, b: 2, a: 3} }`))
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Roots[0]
	if len(root.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(root.Fields))
	}
	// last write wins, first position kept
	if root.Fields[0].String != "a" || root.Fields[1].String != "b" {
		t.Errorf("field order %q, %q; want a, b", root.Fields[0].String, root.Fields[1].String)
	}
	if v, _ := root.Get("a").AsInt(); v != 3 {
		t.Errorf("a = %d, want 3", v)
	}
}

func TestParseNumbers(t *testing.T) {
	doc, err := Parse([]byte(`{ {i: 42, ni: -7, f: 3.0, nf: -0.25} }`))
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Roots[0]
	if v, err := root.Get("i").AsInt(); err != nil || v != 42 {
		t.Errorf("i = (%v, %v)", v, err)
	}
	if v, err := root.Get("ni").AsInt(); err != nil || v != -7 {
		t.Errorf("ni = (%v, %v)", v, err)
	}
	if v, err := root.Get("f").AsFloat(); err != nil || v != 3.0 {
		t.Errorf("f = (%v, %v)", v, err)
	}
	if _, err := root.Get("f").AsInt(); err == nil {
		t.Error("float answered AsInt")
	}
	if v, err := root.Get("nf").AsFloat(); err != nil || v != -0.25 {
		t.Errorf("nf = (%v, %v)", v, err)
	}
}

func TestParseErrs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no root container", `name: Torso`, "'{' opening root container"},
		{"scalar at root", `{ 42 }`, "node block or '}'"},
		{"unclosed root", `{ {a: 1}`, "'}' closing root container"},
		{"unclosed block", `{ {a: 1`, "'}' closing block"},
		{"missing colon", `{ {a 1} }`, "':' after key"},
		{"missing value", `{ {a:} }`, "value"},
		{"missing array comma", `{ {a: [1 2]} }`, "',' or ']'"},
		{"unclosed array", `{ {a: [1,} }`, "value"},
		{"trailing content", `{} {}`, "end of input after root container"},
		{"bad key", `{ {1: a} }`, "attribute key or '}'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatalf("Parse(%q): no error", tt.in)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %q is not ErrSyntax", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

// Lexical failures surface as ErrSyntax like structural ones, with
// the tokenizer's position error still reachable underneath.
func TestParseLexicalErrs(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unterminated string", `{ {a: "oops} }`},
		{"unterminated header", "<!--a:b\n{}"},
		{"header pair without colon", "<!--version-->\n{}"},
		{"stray char", `{ @ }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatalf("Parse(%q): no error", tt.in)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %q is not ErrSyntax", err)
			}
			te := &token.TokenizeErr{}
			if !errors.As(err, &te) {
				t.Errorf("error %q lost the tokenizer position", err)
			}
		})
	}
}

func TestParseErrPosition(t *testing.T) {
	_, err := Parse([]byte("{\n    {\n        a 1\n    }\n}"))
	if err == nil {
		t.Fatal("no error")
	}
	if !strings.Contains(err.Error(), "line=2") {
		t.Errorf("error %q does not carry line 2", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("{ {a: ")
	n := ir.DefaultMaxDepth + 1
	for range n {
		sb.WriteString("[")
	}
	for range n {
		sb.WriteString("]")
	}
	sb.WriteString("} }")
	_, err := Parse([]byte(sb.String()))
	if !errors.Is(err, ir.ErrDepth) {
		t.Errorf("got %v, want ErrDepth", err)
	}
	if _, err := Parse([]byte(`{ {a: [[1]]} }`), MaxDepth(2)); !errors.Is(err, ir.ErrDepth) {
		t.Errorf("MaxDepth(2) got %v, want ErrDepth", err)
	}
}
