package main

import (
	"fmt"

	"github.com/Zir0-93/tabster/smtlib"

	"github.com/scott-cotton/cli"
)

func ops(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: ops takes no arguments, got %v", cli.ErrUsage, args)
	}
	colors := cfg.colors(cc.Out)
	fmt.Fprintf(cc.Out, "supported operators:\n")
	for _, tok := range smtlib.Tokens() {
		sym, err := smtlib.Resolve(tok)
		if err != nil {
			return err
		}
		if colors != nil {
			sym = colors.Color(smtlib.SymbolColor, sym)
		}
		fmt.Fprintf(cc.Out, "\t%-3s %s\n", tok, sym)
	}
	return nil
}
