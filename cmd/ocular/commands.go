package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ocular").
		WithSynopsis("ocular [opts] command [opts]").
		WithDescription("ocular is a tool for reading and rewriting slots of json and yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ocularMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			KeysCommand(cfg))
}

// runWith finishes the -o redirection after a subcommand: the opened file is
// closed exactly once, and a close failure surfaces unless the command
// already failed.
func runWith(cfg *MainConfig, run func(cc *cli.Context, args []string) error) func(cc *cli.Context, args []string) error {
	return func(cc *cli.Context, args []string) error {
		err := run(cc, args)
		if cfg.CloseOut != nil {
			cerr := cfg.CloseOut()
			cfg.CloseOut = nil
			cfg.OutW = nil
			if err == nil && cerr != nil {
				err = fmt.Errorf("error closing %s: %w", cfg.Out, cerr)
			}
		}
		return err
	}
}

func ocularMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		cfg.Main.Usage(cc, nil)
		return nil
	}
	return cli.ErrUsage
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value a path addresses in each document").
		WithRun(runWith(mainCfg, func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		}))
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [opts] <path> <value> [files]").
		WithDescription("set the slot a path addresses in each document").
		WithOpts(opts...).
		WithRun(runWith(mainCfg, func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		}))
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("del").
		WithAliases("d", "rm").
		WithSynopsis("del [opts] <path> [files]").
		WithDescription("remove the slot a path addresses in each document").
		WithOpts(opts...).
		WithRun(runWith(mainCfg, func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		}))
	cfg.Del = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithSynopsis("keys <path> [files]").
		WithDescription("list the keys or indices of the container a path addresses").
		WithRun(runWith(mainCfg, func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		}))
	cfg.Keys = cmd
	return cmd
}
