package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/ocular-go/ocular/opath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	l, err := opath.Parse(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		data, err := readDoc(cc, file)
		if err != nil {
			return err
		}
		doc, err := cfg.decode(file, data)
		if err != nil {
			return err
		}
		m := l.GetMaybe(doc)
		if !m.Present() {
			notice := fmt.Sprintf("%s: no value at %s", file, path)
			if cfg.Color {
				notice = color.YellowString("%s", notice)
			}
			fmt.Fprintln(os.Stderr, notice)
			continue
		}
		if err := cfg.encode(cfg.out(cc), file, m.Get()); err != nil {
			return err
		}
	}
	return nil
}
