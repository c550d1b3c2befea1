package main

import (
	"fmt"

	"github.com/Zir0-93/tabster/libdiff"
	"github.com/Zir0-93/tabster/walk"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	vars, err := cfg.vars()
	if err != nil {
		return err
	}
	from, err := walk.Translate(args[0], vars, descOpts(cfg.Sat, cfg.Model)...)
	if err != nil {
		return fmt.Errorf("error translating %s: %w", args[0], err)
	}
	to, err := walk.Translate(args[1], vars, descOpts(cfg.Sat, cfg.Model)...)
	if err != nil {
		return fmt.Errorf("error translating %s: %w", args[1], err)
	}
	diffs := libdiff.DiffString(from.String(), to.String())
	if !libdiff.Changed(diffs) {
		return nil
	}
	if err := libdiff.Render(cc.Out, diffs, cfg.colors(cc.Out) != nil); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return cli.ExitCodeErr(1)
}
