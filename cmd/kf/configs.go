package main

import (
	"io"
	"os"

	"github.com/kitsunelab/kitsune-format/encode"
	"github.com/kitsunelab/kitsune-format/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent int  `cli:"name=i aliases=indent desc='spaces per nesting level'"`
	Color  bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result back to source file'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	First bool `cli:"name=first aliases=1 desc='print only the first match'"`
	Roots bool `cli:"name=roots desc='match root blocks only, no descent'"`

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Meta bool `cli:"name=m aliases=meta desc='overlay metadata wins on collision'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	OutFormat string

	Convert *cli.Command
}
