package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kitsunelab/kitsune-format/ir"
	"github.com/kitsunelab/kitsune-format/parse"
)

// readDocument parses the scene file at arg, with "-" meaning stdin.
func readDocument(cfg *MainConfig, arg string) (*ir.Document, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
