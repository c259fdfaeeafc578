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
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: adf/a, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: adf/a, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "adf").
		WithSynopsis("adf [opts] command [opts]").
		WithDescription("adf is a tool for working with Arkadia Data Format documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return adfMain(cfg, cc, args)
		}).
		WithSubs(
			DecCommand(cfg),
			EncCommand(cfg),
			ViewCommand(cfg),
			BenchCommand(cfg))
}

func DecCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dec").
		WithAliases("d", "decode").
		WithSynopsis("dec [-s schemafile] [files]").
		WithDescription("decode ADF documents and re-emit them as adf, json or yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dec(cfg, cc, args)
		})
	cfg.Dec = cmd
	return cmd
}

func EncCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("enc").
		WithAliases("e", "encode").
		WithSynopsis("enc [-prompt] [files]").
		WithDescription("encode json or yaml data as ADF").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return enc(cfg, cc, args)
		})
	cfg.Enc = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view ADF documents in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func BenchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BenchConfig{MainConfig: mainCfg, Repeats: 5}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("bench").
		WithAliases("b").
		WithSynopsis("bench [-n repeats] [files]").
		WithDescription("compare size, token and timing cost of ADF vs json and yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runBench(cfg, cc, args)
		})
	cfg.Bench = cmd
	return cmd
}
