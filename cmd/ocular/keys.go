package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/ocular-go/ocular/opath"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires one argument, an object path", cli.ErrUsage)
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
			return fmt.Errorf("%s: no value at %s", file, path)
		}
		for _, k := range containerKeys(m.Get()) {
			if cfg.Color {
				k = color.CyanString("%s", k)
			}
			fmt.Fprintln(cfg.out(cc), k)
		}
	}
	return nil
}

func containerKeys(v any) []string {
	switch c := v.(type) {
	case map[string]any:
		res := make([]string, 0, len(c))
		for k := range c {
			res = append(res, k)
		}
		sort.Strings(res)
		return res
	case []any:
		res := make([]string, len(c))
		for i := range c {
			res[i] = fmt.Sprintf("%d", i)
		}
		return res
	default:
		return nil
	}
}
