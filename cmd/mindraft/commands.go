package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Dir: "."}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "mindraft").
		WithSynopsis("mindraft [opts] [draft]").
		WithDescription("mindraft resolves label and pointer annotations in " +
			".minfndft and .minraw drafts and writes .min files next to them. " +
			"Without arguments every draft in the directory is processed.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mindraft(cfg, cc, args)
		})
}
