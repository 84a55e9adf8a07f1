package main

import (
	"fmt"
	"strings"

	kitsune "github.com/kitsunelab/kitsune-format"
	"github.com/kitsunelab/kitsune-format/encode"
	"github.com/kitsunelab/kitsune-format/ir"

	"github.com/scott-cotton/cli"
)

func filterArg(filter kitsune.Filter, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: -f wants key=val, got %q", cli.ErrUsage, a)
	}
	n := ir.FromString(val)
	n.ReType()
	filter[key] = n
	return nil
}

func get(cfg *GetConfig, filter kitsune.Filter, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(filter) == 0 {
		return fmt.Errorf("%w: get requires at least one -f key=val", cli.ErrUsage)
	}
	for _, arg := range inputArgs(args) {
		doc, err := readDocument(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		matches, err := findMatches(cfg, doc, filter)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		for _, m := range matches {
			if err := encode.EncodeNode(m, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}

func findMatches(cfg *GetConfig, doc *ir.Document, filter kitsune.Filter) ([]*ir.Node, error) {
	if cfg.Roots {
		if cfg.First {
			if m := kitsune.Find(doc.Roots, filter); m != nil {
				return []*ir.Node{m}, nil
			}
			return nil, nil
		}
		return kitsune.FindAll(doc.Roots, filter), nil
	}
	if cfg.First {
		m, err := kitsune.FindRecursive(doc.Roots, filter)
		if err != nil || m == nil {
			return nil, err
		}
		return []*ir.Node{m}, nil
	}
	return kitsune.FindAllRecursive(doc.Roots, filter)
}
