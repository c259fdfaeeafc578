package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arkadia-format/go-adf/decode"
)

// view is dec with color forced on; its point is reading documents,
// not piping them.
func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	cfg.Color = true
	for _, arg := range inputArgs(args) {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		res := decode.Decode(string(d))
		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		if err := writeNode(cfg.MainConfig, cc, res.Node); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
