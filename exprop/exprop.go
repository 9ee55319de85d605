// Package exprop drives optics with expr-lang expressions.
//
// Transform rewrites a focused value with an expression evaluated against it,
// and Where narrows an optic focused on a sequence down to the elements a
// predicate selects. Expressions see the focused value as "value" and, inside
// Where, its position as "index".
package exprop

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	ocular "github.com/ocular-go/ocular"
)

var programs = struct {
	mu sync.RWMutex
	m  map[string]*vm.Program
}{m: map[string]*vm.Program{}}

func compile(src string) (*vm.Program, error) {
	programs.mu.RLock()
	p, ok := programs.m[src]
	programs.mu.RUnlock()
	if ok {
		return p, nil
	}
	p, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("exprop: compile %q: %w", src, err)
	}
	programs.mu.Lock()
	if prior, dup := programs.m[src]; dup {
		p = prior
	} else {
		programs.m[src] = p
	}
	programs.mu.Unlock()
	return p, nil
}

// Transform evaluates src against the value o focuses in subject and writes
// the result back through a minimal clone. An absent focus leaves the subject
// untouched.
func Transform(o ocular.Optic, subject any, src string) (any, error) {
	p, err := compile(src)
	if err != nil {
		return subject, err
	}
	var runErr error
	out := o.XformInCloneMaybe(subject, func(m ocular.Maybe) ocular.Maybe {
		if !m.Present() {
			return m
		}
		res, err := expr.Run(p, map[string]any{"value": m.Get()})
		if err != nil {
			runErr = fmt.Errorf("exprop: run %q: %w", src, err)
			return m
		}
		return ocular.Just(res)
	})
	if runErr != nil {
		return subject, runErr
	}
	return out, nil
}

// Where builds a multifocal over the elements of the sequence o focuses for
// which the predicate src holds. The resulting optic addresses the selected
// elements of any similarly shaped subject, so it can both read and rewrite
// them.
func Where(o ocular.Optic, subject any, src string) (*ocular.SeqFocal, error) {
	p, err := compile(src)
	if err != nil {
		return nil, err
	}
	vals, err := ocular.GetIterable(o, subject)
	if err != nil {
		return nil, err
	}
	var children []ocular.Optic
	for i, v := range vals {
		res, err := expr.Run(p, map[string]any{"value": v, "index": i})
		if err != nil {
			return nil, fmt.Errorf("exprop: run %q: %w", src, err)
		}
		keep, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("exprop: predicate %q returned %T, want bool", src, res)
		}
		if keep {
			children = append(children, ocular.Fuse(o, ocular.NewLens(i)))
		}
	}
	return ocular.NewSeqFocal(children...), nil
}
