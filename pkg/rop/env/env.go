// Package env provides Env, an immutable dependency carrier keyed by type.
//
// An Env holds at most one instance per type. Dependencies are registered
// under their dynamic type with With, or under an interface type with WithAs,
// and are read back with the typed helpers Read, Lookup and MustRead.
package env

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/ib-77/rail/pkg/rop/fault"
)

// Key identifies a dependency by its type.
type Key struct {
	t reflect.Type
}

// KeyOf returns the key under which a dependency of static type T is stored.
func KeyOf[T any]() Key {
	return Key{t: reflect.TypeFor[T]()}
}

func keyOfValue(v any) Key {
	return Key{t: reflect.TypeOf(v)}
}

func (k Key) Type() reflect.Type {
	return k.t
}

func (k Key) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

type Env struct {
	deps map[Key]any
}

func Empty() Env {
	return Env{}
}

// MustWith builds an Env from deps and panics on a nil dependency.
// Intended for wiring code and tests.
func MustWith(deps ...any) Env {
	e := Empty()
	for _, d := range deps {
		var err error
		if e, err = e.With(d); err != nil {
			panic(err)
		}
	}
	return e
}

// With returns a new Env holding dep under its dynamic type, replacing any
// previous dependency of that type.
func (e Env) With(dep any) (Env, error) {
	if isNil(dep) {
		return e, fault.InvalidArgument("env.With", "dependency must be a non-nil instance")
	}
	return e.set(keyOfValue(dep), dep), nil
}

// WithAs registers dep under the static type I, typically an interface.
func WithAs[I any](e Env, dep I) (Env, error) {
	if isNil(dep) {
		return e, fault.InvalidArgument("env.WithAs", "dependency must be a non-nil instance")
	}
	return e.set(KeyOf[I](), dep), nil
}

func (e Env) set(k Key, dep any) Env {
	next := make(map[Key]any, len(e.deps)+1)
	maps.Copy(next, e.deps)
	next[k] = dep
	return Env{deps: next}
}

// Read returns the dependency stored under key or a MissingDependency error.
func (e Env) Read(key Key) (any, error) {
	if v, ok := e.deps[key]; ok {
		return v, nil
	}
	return nil, fault.MissingDependency("env.Read", key.String())
}

// Get returns the dependency stored under key; the bool reports presence.
func (e Env) Get(key Key) (any, bool) {
	v, ok := e.deps[key]
	return v, ok
}

func (e Env) Has(key Key) bool {
	_, ok := e.deps[key]
	return ok
}

func (e Env) Len() int {
	return len(e.deps)
}

func (e Env) IsEmpty() bool {
	return len(e.deps) == 0
}

// Keys returns the stored keys sorted by type name.
func (e Env) Keys() []Key {
	keys := slices.Collect(maps.Keys(e.deps))
	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

// Merge returns the union of e and other. Keys present in other win.
func (e Env) Merge(other Env) Env {
	if len(other.deps) == 0 {
		return e
	}
	if len(e.deps) == 0 {
		return other
	}
	next := make(map[Key]any, len(e.deps)+len(other.deps))
	maps.Copy(next, e.deps)
	maps.Copy(next, other.deps)
	return Env{deps: next}
}

// Only returns a view holding just the requested keys. The first absent key
// is reported as MissingDependency.
func (e Env) Only(keys ...Key) (Env, error) {
	view := make(map[Key]any, len(keys))
	for _, k := range keys {
		v, ok := e.deps[k]
		if !ok {
			return Env{}, fault.MissingDependency("env.Only", k.String())
		}
		view[k] = v
	}
	return Env{deps: view}, nil
}

// All returns a snapshot copy of the stored dependencies.
func (e Env) All() map[Key]any {
	out := make(map[Key]any, len(e.deps))
	maps.Copy(out, e.deps)
	return out
}

func (e Env) String() string {
	names := make([]string, 0, len(e.deps))
	for _, k := range e.Keys() {
		names = append(names, k.String())
	}
	return "Env{" + strings.Join(names, ", ") + "}"
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
