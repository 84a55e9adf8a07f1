// Package kitsune provides querying and merging of Kitsune format
// documents.
//
// The Kitsune format describes scene/content data for game asset
// pipelines: a metadata header line followed by a tree of named,
// attribute-bearing nodes with ordered children. This package sits on
// top of the ir, parse, and encode packages and adds the two document
// operations the asset tooling drives: flat attribute-filter queries
// (Find and friends) and duplicate-aware structural merging (Merge).
//
// A typical round trip:
//
//	doc, err := parse.Parse(text)
//	if err != nil {
//	    return err
//	}
//	group, err := kitsune.FindRecursive(doc.Roots, kitsune.Filter{
//	    "_class": ir.FromString("BodyGroup"),
//	    "name":   ir.FromString("body"),
//	})
//	...
//	err = encode.Encode(doc, w)
package kitsune
