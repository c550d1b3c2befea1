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
			Name:        "v",
			Aliases:     []string{"var"},
			Description: "declare a variable, may be repeated",
			Type:        cli.NamedFuncOpt(cfg.varOpt, "(name:sort)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tabster").
		WithSynopsis("tabster [opts] command [opts]").
		WithDescription("tabster translates tabular expressions to SMT-LIB v2.5.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tabsterMain(cfg, cc, args)
		}).
		WithSubs(
			TranslateCommand(cfg),
			DiffCommand(cfg),
			OpsCommand(cfg))
}

func TranslateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TranslateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Translate, "translate").
		WithAliases("t", "tr").
		WithSynopsis("translate [-sat] [-model] [-check] [-f] [exprs or files]").
		WithDescription("write the SMT-LIB description of each expression, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return translate(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-sat] [-model] a b").
		WithDescription("diff the SMT-LIB descriptions of two expressions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ops, "ops").
		WithSynopsis("ops").
		WithDescription("list supported operator tokens and their SMT-LIB symbols").
		WithRun(func(cc *cli.Context, args []string) error {
			return ops(cfg, cc, args)
		})
}
