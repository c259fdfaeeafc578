package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/arkadia-format/go-adf/encode"
	"github.com/arkadia-format/go-adf/format"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='force colorized output'"`
	Compact    bool `cli:"name=c aliases=compact desc='compact (minified) output'"`
	NoComments bool `cli:"name=nocomments desc='drop comments from output'"`
	NoMeta     bool `cli:"name=nometa desc='drop $attributes and #tags from output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

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

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.ADFFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.ADFFormat
}

// wantColor decides colorized output: the -color flag forces it on,
// otherwise a terminal gets it and a pipe does not.
func (cfg *MainConfig) wantColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.Compact(cfg.Compact),
		encode.Comments(!cfg.NoComments),
		encode.WithMeta(!cfg.NoMeta),
	}
	if cfg.wantColor(w) {
		res = append(res, encode.Colorize(true))
	}
	return res
}

type DecConfig struct {
	*MainConfig

	Schema string `cli:"name=s aliases=schema desc='schema file to apply to schema-less input'"`
	Strict bool   `cli:"name=strict desc='exit nonzero when the input has decode errors'"`
	ANSI   bool   `cli:"name=ansi desc='strip ANSI escapes from input before decoding'"`

	Dec *cli.Command
}

type EncConfig struct {
	*MainConfig

	Prompt bool `cli:"name=prompt desc='emit a schema blueprint instead of data'"`
	Size   bool `cli:"name=size desc='include $size in list headers'"`

	Enc *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type BenchConfig struct {
	*MainConfig

	Repeats int `cli:"name=n desc='timing repeats per file (median reported)'"`

	Bench *cli.Command
}
