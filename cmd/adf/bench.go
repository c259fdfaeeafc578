package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arkadia-format/go-adf/bench"
)

func runBench(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		cfg.Bench.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	files := inputArgs(args)
	for _, arg := range files {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		report, err := bench.RunN(string(d), cfg.Repeats)
		if err != nil {
			return fmt.Errorf("error benching %s: %w", arg, err)
		}
		if len(files) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", arg)
		}
		fmt.Fprint(cc.Out, report)
		if cfg.wantColor(cc.Out) {
			fmt.Fprint(cc.Out, report.Bars())
		}
	}
	return nil
}
