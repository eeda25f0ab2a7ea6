package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fixcik/yexp/encode"
	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/resolve"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	Sources  bool   `cli:"name=sources desc='list the files the result was resolved from'"`
	Diff     string `cli:"name=diff desc='show a line diff from the result to the result of another file'"`
	Parallel int    `cli:"name=p aliases=parallel desc='load up to n sibling references at once'"`
	Depth    int    `cli:"name=depth desc='limit on the length of a reference chain'"`
	Watch    bool   `cli:"name=w aliases=watch desc='print again whenever a source file changes'"`

	OutFormat *format.Format
	Out       string
	Sets      []*setting

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outOpt records the output file. It is written only once the result is
// complete.
func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		cfg.Out = ""
	}
	return nil, nil
}

func (cfg *MainConfig) setOpt(_ *cli.Context, a string) (any, error) {
	s, err := parseSetting(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Sets = append(cfg.Sets, s)
	return 0, nil
}

func (cfg *MainConfig) resolveOpts() []resolve.Option {
	var res []resolve.Option
	if cfg.Parallel > 1 {
		res = append(res, resolve.Parallel(cfg.Parallel))
	}
	if cfg.Depth > 0 {
		res = append(res, resolve.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmt format.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	return fmt
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: when -color is given, or
// when it is not and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
