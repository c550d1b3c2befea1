package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Zir0-93/tabster/smtlib"
	"github.com/Zir0-93/tabster/walk"

	"github.com/scott-cotton/cli"
)

func translate(cfg *TranslateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Translate.Parse(cc, args)
	if err != nil {
		return err
	}
	vars, err := cfg.vars()
	if err != nil {
		return err
	}
	opts := append(descOpts(cfg.Sat, cfg.Model), smtlib.Balanced(cfg.Check))
	colors := cfg.colors(cc.Out)
	if len(args) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		return writeDesc(cc.Out, string(in), vars, colors, opts)
	}
	for _, arg := range args {
		input := arg
		if cfg.Files {
			input, err = readExprFile(cc, arg)
			if err != nil {
				return err
			}
		}
		if err := writeDesc(cc.Out, input, vars, colors, opts); err != nil {
			return fmt.Errorf("error translating %s: %w", arg, err)
		}
	}
	return nil
}

func readExprFile(cc *cli.Context, file string) (string, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	return string(d), nil
}

func writeDesc(w io.Writer, input string, vars []smtlib.Var, colors *smtlib.Colors, opts []smtlib.Option) error {
	d, err := walk.Translate(strings.TrimSpace(input), vars, opts...)
	if err != nil {
		return err
	}
	text := d.String()
	if colors != nil {
		text = colors.Highlight(text)
	}
	_, err = io.WriteString(w, text+"\n")
	return err
}
