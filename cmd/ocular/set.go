package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"

	ocular "github.com/ocular-go/ocular"
	"github.com/ocular-go/ocular/opath"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires two arguments, an object path and a value", cli.ErrUsage)
	}
	path, valArg := args[0], args[1]
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
	var val any
	if cfg.String {
		val = valArg
	} else if err := json.Unmarshal([]byte(valArg), &val); err != nil {
		return fmt.Errorf("%w: value %q is not json (use -s for a plain string): %w", cli.ErrUsage, valArg, err)
	}
	files := args[2:]
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
		res := ocular.SetInClone(l, doc, val)
		if err := emit(cfg.MainConfig, cc, file, cfg.Patch, doc, res); err != nil {
			return err
		}
	}
	return nil
}
