package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Zir0-93/tabster/catalog"
	"github.com/Zir0-93/tabster/smtlib"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='output with color'"`
	VarsFile string `cli:"name=vars desc='variable catalog file (yaml)'"`

	Vars []smtlib.Var

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) varOpt(_ *cli.Context, a string) (any, error) {
	v, err := catalog.ParseVar(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Vars = append(cfg.Vars, v)
	return v, nil
}

// vars returns the catalog file's variables followed by those given with -v.
func (cfg *MainConfig) vars() ([]smtlib.Var, error) {
	if cfg.VarsFile == "" {
		return cfg.Vars, nil
	}
	vars, err := catalog.LoadFile(cfg.VarsFile)
	if err != nil {
		return nil, err
	}
	return append(vars, cfg.Vars...), nil
}

// colors returns nil unless output should be colored: -color was given, or
// it was not mentioned and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *smtlib.Colors {
	if cfg.Color {
		return smtlib.NewColors()
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return smtlib.NewColors()
	}
	return nil
}

func descOpts(sat, model bool) []smtlib.Option {
	return []smtlib.Option{
		smtlib.CheckSat(sat),
		smtlib.GetModel(model),
	}
}

type TranslateConfig struct {
	*MainConfig

	Sat   bool `cli:"name=sat desc='request satisfiability checking'"`
	Model bool `cli:"name=model desc='request model extraction'"`
	Check bool `cli:"name=check desc='verify sub-expressions are balanced'"`
	Files bool `cli:"name=f desc='arguments are files holding one expression each'"`

	Translate *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Sat   bool `cli:"name=sat desc='request satisfiability checking'"`
	Model bool `cli:"name=model desc='request model extraction'"`

	Diff *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}
