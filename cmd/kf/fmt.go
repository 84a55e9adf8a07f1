package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/kitsunelab/kitsune-format/encode"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, arg := range inputArgs(args) {
		doc, err := readDocument(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			continue
		}
		var buf bytes.Buffer
		if err := encode.Encode(doc, &buf, cfg.encOpts(&buf)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", arg, err)
		}
	}
	return nil
}
