package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mindraft/mindraft/batch"
	"github.com/mindraft/mindraft/draft"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	DryRun  bool   `cli:"name=n desc='print a diff instead of writing output files'"`
	Table   string `cli:"name=table desc='opcode table file (yaml)'"`
	Int     bool   `cli:"name=int desc='label and pointer values are integers'"`
	Color   bool   `cli:"name=color desc='color diffs and errors'"`
	Verbose bool   `cli:"name=v desc='debug logging'"`
	Watch   bool   `cli:"name=watch desc='keep running and resolve drafts when they change'"`
	Dir     string `cli:"name=C desc='directory to process when no draft is given'"`

	Main *cli.Command
}

func (cfg *MainConfig) runner(out io.Writer) (*batch.Runner, error) {
	r := batch.NewRunner(out, newLog(os.Stderr, cfg.Verbose))
	r.DryRun = cfg.DryRun
	r.Color = cfg.useColor(out)
	if cfg.Int {
		r.Dialect.IntValues = true
	}
	if cfg.Table != "" {
		t, err := draft.LoadTable(cfg.Table)
		if err != nil {
			return nil, err
		}
		if err := t.Check(r.Dialect); err != nil {
			return nil, fmt.Errorf("error loading %s: %w", cfg.Table, err)
		}
		r.Table = t
	}
	return r, nil
}

// useColor honors an explicit -color and otherwise colors only terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
