// Package opath turns JSONPath-like path text into optics.
//
// Syntax:
//   - "$" is the root (an empty lens);
//   - ".field" descends into a record key, ".'quoted field'" when the name
//     contains special characters ('\'' escapes a quote);
//   - "[i]" indexes a sequence, negative indices counting from the end.
//
// Examples:
//   - "$.users[0].name"
//   - "$.config.'server name'.port"
//   - "$.items[-1]"
//
// Compiled paths are cached process-wide: parsing the same text twice yields
// the same *Lens, which is safe because lenses are immutable.
package opath

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	ocular "github.com/ocular-go/ocular"
	"github.com/ocular-go/ocular/debug"
)

var cache = struct {
	mu sync.RWMutex
	m  map[string]*ocular.Lens
}{m: map[string]*ocular.Lens{}}

// Parse compiles path into a Lens, consulting the cache first.
func Parse(path string) (*ocular.Lens, error) {
	cache.mu.RLock()
	l, ok := cache.m[path]
	cache.mu.RUnlock()
	if ok {
		return l, nil
	}

	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	l = ocular.NewLens(steps...)
	if debug.Path() {
		debug.Logf("opath: compiled %q to %v", path, l)
	}

	cache.mu.Lock()
	if prior, dup := cache.m[path]; dup {
		l = prior
	} else {
		cache.m[path] = l
	}
	cache.mu.Unlock()
	return l, nil
}

// MustParse is Parse for paths known at compile time; it panics on a syntax
// error.
func MustParse(path string) *ocular.Lens {
	l, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseAll compiles each path and aggregates the lenses into one
// sequence-shaped multifocal.
func ParseAll(paths ...string) (*ocular.SeqFocal, error) {
	children := make([]ocular.Optic, len(paths))
	for i, p := range paths {
		l, err := Parse(p)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		children[i] = l
	}
	return ocular.NewSeqFocal(children...), nil
}

func parsePath(p string) ([]any, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("opath: path %q should start with '$'", p)
	}
	var steps []any
	frag := p[1:]
	for len(frag) > 0 {
		switch frag[0] {
		case '.':
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, err
			}
			steps = append(steps, field)
			frag = rest
		case '[':
			i := strings.IndexByte(frag[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("opath: expected '[' <index> ']' in %q", p)
			}
			idx, err := strconv.Atoi(frag[1 : i+1])
			if err != nil {
				return nil, fmt.Errorf("opath: invalid index %q: %w", frag[1:i+1], err)
			}
			steps = append(steps, idx)
			frag = frag[i+2:]
		default:
			return nil, fmt.Errorf("opath: expected '.' or '[' at %q", frag)
		}
	}
	return steps, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("opath: expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
				escaped = false
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			res = append(res, c)
			escaped = false
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("opath: unterminated quoted field")
}
