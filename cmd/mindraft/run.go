package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"
)

func mindraft(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	return run(cfg, cc.Out, args)
}

func run(cfg *MainConfig, out io.Writer, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one draft, got %d", cli.ErrUsage, len(args))
	}
	if cfg.Watch && len(args) == 1 {
		return fmt.Errorf("%w: -watch works on a directory, not a single draft", cli.ErrUsage)
	}
	r, err := cfg.runner(out)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return r.File(args[0]).Err
	}
	if cfg.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return r.Watch(ctx, cfg.Dir)
	}
	rep, err := r.Dir(cfg.Dir)
	if err != nil {
		return err
	}
	if rep.Failed() > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
