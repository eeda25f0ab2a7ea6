package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"set"},
			Description: "set a value in the result, repeatable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.setOpt), "(path=val)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yexp").
		WithSynopsis("yexp [opts] <file>").
		WithDescription("yexp resolves extend directives and !include tags in a yaml or json document and prints the result.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yexpMain(cfg, cc, args)
		})
}
