// Package encode renders Kitsune documents to their canonical text
// form.
//
// # Usage
//
//	doc := ir.NewDocument()
//	doc.SetMeta("version", ir.FromInt(1))
//	doc.AddRoot(ir.NewNode([]ir.KeyVal{
//	    {Key: ir.FromString("_class"), Val: ir.FromString("BodyGroup")},
//	}))
//	err := encode.Encode(doc, os.Stdout)
//
//	// with options
//	err = encode.Encode(doc, os.Stdout, encode.Indent(2))
//
// Output is deterministic: re-encoding a parsed document reproduces
// an equivalent document on re-parse (attribute order, value types,
// node structure, metadata order all preserved).
//
// # Related Packages
//
//   - github.com/kitsunelab/kitsune-format/ir - document representation
//   - github.com/kitsunelab/kitsune-format/parse - parse text to documents
package encode
