// Package immutablex makes the persistent containers from
// github.com/benbjohnson/immutable traversable by optics. Importing the
// package registers adapters for *immutable.List[any],
// *immutable.Map[string, any] and *immutable.SortedMap[string, any]; clones of
// these species are the containers' own persistent updates, so the
// structural-sharing guarantee costs nothing extra.
package immutablex

import (
	"fmt"
	"reflect"

	"github.com/benbjohnson/immutable"

	ocular "github.com/ocular-go/ocular"
)

func init() {
	ocular.RegisterAdapter(reflect.TypeOf((*immutable.List[any])(nil)), listAdapter{})
	ocular.RegisterAdapter(reflect.TypeOf((*immutable.Map[string, any])(nil)), mapAdapter{})
	ocular.RegisterAdapter(reflect.TypeOf((*immutable.SortedMap[string, any])(nil)), sortedMapAdapter{})
}

// NewList builds a persistent list from vals.
func NewList(vals ...any) *immutable.List[any] {
	b := immutable.NewListBuilder[any]()
	for _, v := range vals {
		b.Append(v)
	}
	return b.List()
}

// NewMap builds a persistent map from m.
func NewMap(m map[string]any) *immutable.Map[string, any] {
	b := immutable.NewMapBuilder[string, any](nil)
	for k, v := range m {
		b.Set(k, v)
	}
	return b.Map()
}

// NewSortedMap builds a persistent sorted map from m.
func NewSortedMap(m map[string]any) *immutable.SortedMap[string, any] {
	b := immutable.NewSortedMapBuilder[string, any](nil)
	for k, v := range m {
		b.Set(k, v)
	}
	return b.Map()
}

// listIndex coerces the key shapes sequences accept: any int kind, or a whole
// float64 out of a JSON decoder.
func listIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	case float64:
		if k == float64(int(k)) {
			return int(k), true
		}
	}
	return 0, false
}

type listAdapter struct{}

func (listAdapter) AtMaybe(container, key any) ocular.Maybe {
	l := container.(*immutable.List[any])
	idx, ok := listIndex(key)
	if !ok {
		return ocular.Nothing()
	}
	if idx < 0 {
		idx += l.Len()
	}
	if idx < 0 || idx >= l.Len() {
		return ocular.Nothing()
	}
	v := l.Get(idx)
	if ocular.IsHole(v) {
		return ocular.Nothing()
	}
	return ocular.Just(v)
}

func (listAdapter) CloneWith(container any, op ocular.CloneOp) any {
	l := container.(*immutable.List[any])
	n := l.Len()
	switch {
	case op.IsSet():
		idx, ok := listIndex(op.Key)
		if !ok {
			panic(fmt.Sprintf("immutablex: list key %v (%T) is not an index", op.Key, op.Key))
		}
		if idx < 0 {
			idx += n
		}
		if idx < 0 {
			// unreachable after end-relative normalization; reads map this
			// key to Nothing, so the write degrades to a no-op
			return l
		}
		if idx < n {
			return l.Set(idx, op.Val)
		}
		for i := n; i < idx; i++ {
			l = l.Append(ocular.Hole)
		}
		return l.Append(op.Val)
	case op.IsRemove():
		idx, ok := listIndex(op.Key)
		if !ok {
			return l
		}
		if idx < 0 {
			idx += n
		}
		if idx < 0 || idx >= n {
			return l
		}
		if idx == n-1 {
			return l.Slice(0, n-1)
		}
		return l.Set(idx, ocular.Hole)
	default:
		return l
	}
}

type mapAdapter struct{}

func (mapAdapter) AtMaybe(container, key any) ocular.Maybe {
	m := container.(*immutable.Map[string, any])
	k, ok := key.(string)
	if !ok {
		return ocular.Nothing()
	}
	v, ok := m.Get(k)
	if !ok {
		return ocular.Nothing()
	}
	return ocular.Just(v)
}

func (mapAdapter) CloneWith(container any, op ocular.CloneOp) any {
	m := container.(*immutable.Map[string, any])
	switch {
	case op.IsSet():
		k, ok := op.Key.(string)
		if !ok {
			panic(&ocular.SpeciesError{
				Species: reflect.TypeOf(container),
				Reason:  fmt.Sprintf("key of type %T is not a string", op.Key),
			})
		}
		return m.Set(k, op.Val)
	case op.IsRemove():
		k, ok := op.Key.(string)
		if !ok {
			return m
		}
		return m.Delete(k)
	default:
		return m
	}
}

type sortedMapAdapter struct{}

func (sortedMapAdapter) AtMaybe(container, key any) ocular.Maybe {
	m := container.(*immutable.SortedMap[string, any])
	k, ok := key.(string)
	if !ok {
		return ocular.Nothing()
	}
	v, ok := m.Get(k)
	if !ok {
		return ocular.Nothing()
	}
	return ocular.Just(v)
}

func (sortedMapAdapter) CloneWith(container any, op ocular.CloneOp) any {
	m := container.(*immutable.SortedMap[string, any])
	switch {
	case op.IsSet():
		k, ok := op.Key.(string)
		if !ok {
			panic(&ocular.SpeciesError{
				Species: reflect.TypeOf(container),
				Reason:  fmt.Sprintf("key of type %T is not a string", op.Key),
			})
		}
		return m.Set(k, op.Val)
	case op.IsRemove():
		k, ok := op.Key.(string)
		if !ok {
			return m
		}
		return m.Delete(k)
	default:
		return m
	}
}
