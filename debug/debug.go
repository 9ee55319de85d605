// Package debug provides env-var-gated trace switches for the optics engine.
// Switches are read once at process start; they gate diagnostics only and
// never change traversal semantics.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Clone    bool
	Registry bool
	Path     bool
	Plan     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Clone = boolEnv("OCULAR_DEBUG_CLONE")
	d.Registry = boolEnv("OCULAR_DEBUG_REGISTRY")
	d.Path = boolEnv("OCULAR_DEBUG_PATH")
	d.Plan = boolEnv("OCULAR_DEBUG_PLAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Clone() bool {
	return d.Clone
}
func Registry() bool {
	return d.Registry
}
func Path() bool {
	return d.Path
}
func Plan() bool {
	return d.Plan
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
