package main

import (
	"encoding/json"
	"fmt"

	"github.com/kitsunelab/kitsune-format/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func (cfg *ConvertConfig) fmtOpt(cc *cli.Context, a string) (any, error) {
	switch a {
	case "json", "j":
		cfg.OutFormat = "json"
	case "yaml", "y":
		cfg.OutFormat = "yaml"
	default:
		return nil, fmt.Errorf("%w: unknown format %q", cli.ErrUsage, a)
	}
	return cfg.OutFormat, nil
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		doc, err := readDocument(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		v := docToGo(doc)
		switch cfg.OutFormat {
		case "yaml":
			d, err := yaml.Marshal(v)
			if err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
		default:
			enc := json.NewEncoder(cc.Out)
			enc.SetIndent("", "    ")
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
		}
	}
	return nil
}

// docToGo flattens a document into plain Go values. The export is one
// way: attribute order and the scene/mapping distinction are not
// representable in json or yaml.
func docToGo(doc *ir.Document) map[string]any {
	meta := map[string]any{}
	if doc.Metadata != nil {
		for i, f := range doc.Metadata.Fields {
			meta[f.String] = nodeToGo(doc.Metadata.Values[i])
		}
	}
	roots := make([]any, 0, len(doc.Roots))
	for _, r := range doc.Roots {
		roots = append(roots, nodeToGo(r))
	}
	return map[string]any{
		"metadata": meta,
		"nodes":    roots,
	}
}

func nodeToGo(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		return *n.Float64
	case ir.StringType:
		return n.String
	case ir.ArrayType:
		res := make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			res = append(res, nodeToGo(v))
		}
		return res
	case ir.MappingType, ir.NodeType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f.String] = nodeToGo(n.Values[i])
		}
		return res
	}
	return nil
}
