package rop

import (
	"fmt"

	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/trace"
	"github.com/ib-77/rail/pkg/rop/writer"
)

// Option is Some value or None, with the same env and writer side channels as
// Result. Every failure inside a transform (panic, container returned by Map,
// missing dependency) degrades to None: the reason is not kept.
type Option[T any] struct {
	value T
	some  bool
	env   env.Env
	log   writer.Writer
}

func Some[T any](value T, opts ...SideChannel) Option[T] {
	s := applySides(opts)
	return Option[T]{value: value, some: true, env: s.env, log: s.log}
}

func None[T any](opts ...SideChannel) Option[T] {
	s := applySides(opts)
	return Option[T]{env: s.env, log: s.log}
}

// OptionOf builds Some(value) when ok, None otherwise.
func OptionOf[T any](value T, ok bool, opts ...SideChannel) Option[T] {
	if ok {
		return Some(value, opts...)
	}
	return None[T](opts...)
}

func noneLike[T, U any](o Option[T]) Option[U] {
	return Option[U]{env: o.env, log: o.log}
}

func (o Option[T]) container() {}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Env() env.Env {
	return o.env
}

func (o Option[T]) Writer() writer.Writer {
	return o.log
}

func (o Option[T]) Lift(value T) Option[T] {
	if !o.some {
		return o
	}
	return Option[T]{value: value, some: true, env: o.env, log: o.log}
}

func (o Option[T]) Bind(fn func(T) Option[T]) Option[T] {
	return BindOption(o, fn)
}

func (o Option[T]) Map(fn func(T) T) Option[T] {
	return MapOption(o, fn)
}

func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

func (o Option[T]) InspectSome(fn func(T)) Option[T] {
	if o.some && fn != nil {
		fn(o.value)
	}
	return o
}

func (o Option[T]) InspectNone(fn func()) Option[T] {
	if !o.some && fn != nil {
		fn()
	}
	return o
}

// WithEnv registers deps in a new env; a nil dep yields None.
func (o Option[T]) WithEnv(deps ...any) Option[T] {
	next := o.env
	for _, d := range deps {
		var err error
		if next, err = next.With(d); err != nil {
			return noneLike[T, T](o)
		}
	}
	o.env = next
	return o
}

func (o Option[T]) WriteTo(channel string, value any) Option[T] {
	o.log = o.log.Write(channel, value)
	return o
}

func (o Option[T]) WriterOutput(channel string) []any {
	return o.log.Get(channel)
}

func (o Option[T]) WithTrace(message string) Option[T] {
	o.log = o.log.WithTrace(trace.New(message))
	return o
}

// ToResult converts None into Err(err).
func (o Option[T]) ToResult(err error) Result[T] {
	if o.some {
		return Ok(o.value, WithEnvironment(o.env), WithLog(o.log))
	}
	return Err[T](err, WithEnvironment(o.env), WithLog(o.log))
}

// ToOption drops the error of an Err Result.
func (r Result[T]) ToOption() Option[T] {
	if !r.isOk {
		return Option[T]{env: r.env, log: r.log}
	}
	return Option[T]{value: r.value, some: true, env: r.env, log: r.log}
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func BindOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some || fn == nil {
		return noneLike[T, U](o)
	}
	out, err := protect(opBind, func() Option[U] { return fn(o.value) })
	if err != nil {
		return noneLike[T, U](o)
	}
	return Option[U]{value: out.value, some: out.some, env: o.env, log: o.log.Merge(out.log)}
}

func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some || fn == nil {
		return noneLike[T, U](o)
	}
	out, err := protect(opMap, func() U { return fn(o.value) })
	if err != nil || isContainer(out) {
		return noneLike[T, U](o)
	}
	return Option[U]{value: out, some: true, env: o.env, log: o.log}
}

func BindOptionWithEnv[T, U any](o Option[T], keys []env.Key, fn func(T, env.Env) Option[U]) Option[U] {
	if !o.some || fn == nil {
		return noneLike[T, U](o)
	}
	view, err := o.env.Only(keys...)
	if err != nil {
		return noneLike[T, U](o)
	}
	return BindOption(o, func(v T) Option[U] { return fn(v, view) })
}

func MapOptionWithEnv[T, U any](o Option[T], keys []env.Key, fn func(T, env.Env) U) Option[U] {
	if !o.some || fn == nil {
		return noneLike[T, U](o)
	}
	view, err := o.env.Only(keys...)
	if err != nil {
		return noneLike[T, U](o)
	}
	return MapOption(o, func(v T) U { return fn(v, view) })
}
