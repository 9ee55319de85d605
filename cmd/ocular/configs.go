package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"github.com/scott-cotton/cli"

	ocular "github.com/ocular-go/ocular"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='colorize output'"`

	Out      string
	OutW     io.Writer
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(_ *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Out = v
	cfg.OutW = f
	cfg.CloseOut = f.Close
	return v, nil
}

// out returns the destination command output goes to: the -o file when one
// was opened, cc.Out otherwise.
func (cfg *MainConfig) out(cc *cli.Context) io.Writer {
	if cfg.OutW != nil {
		return cfg.OutW
	}
	return cc.Out
}

// docFormat picks the document codec: an explicit flag wins, otherwise the
// file extension decides, with JSON as the fallback for stdin and unknown
// extensions.
func (cfg *MainConfig) docFormat(file string) string {
	switch {
	case cfg.J:
		return "json"
	case cfg.Y:
		return "yaml"
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func (cfg *MainConfig) decode(file string, data []byte) (any, error) {
	var v any
	switch cfg.docFormat(file) {
	case "yaml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
	}
	return v, nil
}

// scrubHoles replaces sequence hole markers with nulls so documents whose
// inner elements were removed stay representable in JSON and YAML.
func scrubHoles(v any) any {
	if ocular.IsHole(v) {
		return nil
	}
	switch c := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, cv := range c {
			out[k] = scrubHoles(cv)
		}
		return out
	case []any:
		out := make([]any, len(c))
		for i, cv := range c {
			out[i] = scrubHoles(cv)
		}
		return out
	}
	return v
}

func (cfg *MainConfig) encode(w io.Writer, file string, v any) error {
	v = scrubHoles(v)
	switch cfg.docFormat(file) {
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		out = append(out, '\n')
		_, err = w.Write(out)
		return err
	}
}

// jsonBytes renders v compactly in JSON regardless of the i/o format; merge
// patches are JSON by definition.
func jsonBytes(v any) ([]byte, error) {
	return json.Marshal(scrubHoles(v))
}

func readDoc(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return data, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Patch  bool `cli:"name=patch desc='print a json merge patch instead of the result'"`
	String bool `cli:"name=s desc='treat the value argument as a plain string'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='print a json merge patch instead of the result'"`

	Del *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}
