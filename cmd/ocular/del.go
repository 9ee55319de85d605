package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	ocular "github.com/ocular-go/ocular"
	"github.com/ocular-go/ocular/opath"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, an object path", cli.ErrUsage)
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
		res := ocular.RemoveInClone(l, doc)
		if err := emit(cfg.MainConfig, cc, file, cfg.Patch, doc, res); err != nil {
			return err
		}
	}
	return nil
}
