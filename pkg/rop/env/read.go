package env

import "github.com/ib-77/rail/pkg/rop/fault"

// Read returns the dependency of type T.
func Read[T any](e Env) (T, error) {
	k := KeyOf[T]()
	v, ok := e.deps[k]
	if !ok {
		var zero T
		return zero, fault.MissingDependency("env.Read", k.String())
	}
	return v.(T), nil
}

// Lookup is the non-failing form of Read.
func Lookup[T any](e Env) (T, bool) {
	v, ok := e.deps[KeyOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustRead panics with a MissingDependency error when T is absent. Inside a
// Result callback the panic is recovered and surfaces as the Result's error.
func MustRead[T any](e Env) T {
	v, err := Read[T](e)
	if err != nil {
		panic(err)
	}
	return v
}

// Local runs fn against e with overrides applied for the duration of the call
// only. e itself is never modified.
func Local[R any](e Env, fn func(Env) R, overrides ...any) (R, error) {
	scoped := e
	for _, o := range overrides {
		var err error
		if scoped, err = scoped.With(o); err != nil {
			var zero R
			return zero, err
		}
	}
	return fn(scoped), nil
}
