package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

// emit writes the outcome of an edit: the whole result document, or, with
// -patch, a JSON merge patch taking the original to the result.
func emit(cfg *MainConfig, cc *cli.Context, file string, asPatch bool, orig, res any) error {
	w := cfg.out(cc)
	if !asPatch {
		return cfg.encode(w, file, res)
	}
	origJSON, err := jsonBytes(orig)
	if err != nil {
		return fmt.Errorf("error encoding original: %w", err)
	}
	resJSON, err := jsonBytes(res)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(origJSON, resJSON)
	if err != nil {
		return fmt.Errorf("error computing merge patch: %w", err)
	}
	if cfg.Color {
		_, err = color.New(color.FgCyan).Fprintln(w, string(patch))
		return err
	}
	_, err = fmt.Fprintln(w, string(patch))
	return err
}
