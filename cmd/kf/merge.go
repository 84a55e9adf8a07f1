package main

import (
	"fmt"

	kitsune "github.com/kitsunelab/kitsune-format"
	"github.com/kitsunelab/kitsune-format/encode"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one overlay", cli.ErrUsage)
	}
	base, err := readDocument(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		overlay, err := readDocument(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := kitsune.Merge(base, overlay, cfg.Meta); err != nil {
			return fmt.Errorf("error merging %s: %w", arg, err)
		}
	}
	if err := encode.Encode(base, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
