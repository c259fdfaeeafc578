package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/arkadia-format/go-adf/encode"
	"github.com/arkadia-format/go-adf/gomap"
)

func enc(cfg *EncConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Enc.Parse(cc, args)
	if err != nil {
		cfg.Enc.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	for _, arg := range inputArgs(args) {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}

		var value any
		switch f := cfg.inFormat(); {
		case f.IsYAML():
			if err := yaml.Unmarshal(d, &value); err != nil {
				return fmt.Errorf("error parsing %s as yaml: %w", arg, err)
			}
		default:
			// JSON also covers schema-less plain input when -I is not
			// given; ADF input belongs to dec.
			if err := json.Unmarshal(d, &value); err != nil {
				return fmt.Errorf("error parsing %s as json: %w", arg, err)
			}
		}

		node, err := gomap.FromValue(value)
		if err != nil {
			return fmt.Errorf("error mapping %s: %w", arg, err)
		}

		opts := append(cfg.encOpts(cc.Out),
			encode.PromptOutput(cfg.Prompt),
			encode.ArraySize(cfg.Size))
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := fmt.Fprintln(cc.Out); err != nil {
			return err
		}
	}
	return nil
}
