package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/arkadia-format/go-adf/colorize"
	"github.com/arkadia-format/go-adf/decode"
	"github.com/arkadia-format/go-adf/encode"
	"github.com/arkadia-format/go-adf/ir"
)

func dec(cfg *DecConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dec.Parse(cc, args)
	if err != nil {
		cfg.Dec.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	schema := ""
	if cfg.Schema != "" {
		d, err := os.ReadFile(cfg.Schema)
		if err != nil {
			return fmt.Errorf("error reading schema %s: %w", cfg.Schema, err)
		}
		schema = string(d)
	}

	for _, arg := range inputArgs(args) {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		res := decode.Decode(string(d),
			decode.WithSchema(schema),
			decode.StripANSI(cfg.ANSI))

		for _, w := range res.Warnings {
			fmt.Fprintln(os.Stderr, w)
		}
		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		if cfg.Strict && len(res.Errors) > 0 {
			return cli.ExitCodeErr(1)
		}

		if err := writeNode(cfg.MainConfig, cc, res.Node); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

// writeNode emits a node in the configured output format.
func writeNode(cfg *MainConfig, cc *cli.Context, node *ir.Node) error {
	switch f := cfg.outFormat(); {
	case f.IsJSON():
		indent := 2
		if cfg.Compact {
			indent = 0
		}
		text, err := node.JSON(indent)
		if err != nil {
			return err
		}
		if cfg.wantColor(cc.Out) {
			text = colorize.JSON(text)
		}
		_, err = fmt.Fprintln(cc.Out, text)
		return err
	case f.IsYAML():
		d, err := yaml.Marshal(node.Interface())
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	default:
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cc.Out)
		return err
	}
}
