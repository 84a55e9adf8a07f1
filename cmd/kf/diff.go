package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kitsunelab/kitsune-format/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := canonicalText(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := canonicalText(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	la, lb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(la, lb, false), lines)
	if cfg.useColor(cc.Out) {
		_, err := io.WriteString(cc.Out, diffCfg.DiffPrettyText(diffs))
		return err
	}
	return writePlainDiff(cc.Out, diffs)
}

// canonicalText renders arg's document in canonical monochrome form so
// the diff reflects content, not incidental layout.
func canonicalText(cfg *MainConfig, arg string) (string, error) {
	doc, err := readDocument(cfg, arg)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	var opts []encode.EncodeOption
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	if err := encode.Encode(doc, &sb, opts...); err != nil {
		return "", fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return sb.String(), nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writePlainDiff(w io.Writer, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitDiffLines(d.Text) {
			if _, err := io.WriteString(w, prefix+line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitDiffLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
