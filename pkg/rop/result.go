package rop

import (
	"fmt"

	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/fault"
	"github.com/ib-77/rail/pkg/rop/trace"
	"github.com/ib-77/rail/pkg/rop/writer"
)

// Result is either Ok with a value or Err with an error, plus the env and
// writer side channels. The zero value is uninitialized: it is neither Ok nor
// a proper Err and is rejected when returned from a Bind callback.
type Result[T any] struct {
	value T
	err   error
	env   env.Env
	log   writer.Writer
	isOk  bool
}

type sides struct {
	env env.Env
	log writer.Writer
}

// SideChannel sets the env or writer of a newly constructed container.
type SideChannel func(*sides)

func WithEnvironment(e env.Env) SideChannel {
	return func(s *sides) {
		s.env = e
	}
}

func WithLog(w writer.Writer) SideChannel {
	return func(s *sides) {
		s.log = w
	}
}

func applySides(opts []SideChannel) sides {
	s := sides{env: env.Empty(), log: writer.Empty()}
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	return s
}

func Ok[T any](value T, opts ...SideChannel) Result[T] {
	s := applySides(opts)
	return Result[T]{value: value, isOk: true, env: s.env, log: s.log}
}

// Err builds a failed Result. A nil err is replaced by an InvalidArgument
// error so the error slot is never empty.
func Err[T any](err error, opts ...SideChannel) Result[T] {
	s := applySides(opts)
	if err == nil {
		err = fault.InvalidArgument("rop.Err", "nil error")
	}
	return Result[T]{err: err, env: s.env, log: s.log}
}

// FromPair converts a Go (value, error) pair.
func FromPair[T any](value T, err error, opts ...SideChannel) Result[T] {
	if err != nil {
		return Err[T](err, opts...)
	}
	return Ok(value, opts...)
}

func errWith[T any](err error, e env.Env, w writer.Writer) Result[T] {
	return Result[T]{err: err, env: e, log: w}
}

// carry re-types a non-Ok Result, keeping error and side channels.
func carry[T, U any](r Result[T]) Result[U] {
	return Result[U]{err: r.err, env: r.env, log: r.log}
}

func (r Result[T]) initialized() bool {
	return r.isOk || r.err != nil
}

func (r Result[T]) container() {}

func (r Result[T]) box() Result[any] {
	return Result[any]{value: r.value, err: r.err, env: r.env, log: r.log, isOk: r.isOk}
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

func (r Result[T]) Env() env.Env {
	return r.env
}

func (r Result[T]) Writer() writer.Writer {
	return r.log
}

// Lift replaces the value of an Ok Result. An Err is returned unchanged.
func (r Result[T]) Lift(value T) Result[T] {
	if !r.isOk {
		return r
	}
	return Result[T]{value: value, isOk: true, env: r.env, log: r.log}
}

// Fail turns r into an Err holding err, whatever its current state.
func (r Result[T]) Fail(err error) Result[T] {
	if err == nil {
		err = fault.InvalidArgument("rop.Fail", "nil error")
	}
	return errWith[T](err, r.env, r.log)
}

func (r Result[T]) Bind(fn func(T) Result[T]) Result[T] {
	return bind(opBind, r, fn)
}

func (r Result[T]) BindWithEnv(keys []env.Key, fn func(T, env.Env) Result[T]) Result[T] {
	return BindWithEnv(r, keys, fn)
}

func (r Result[T]) Map(fn func(T) T) Result[T] {
	return mapValue(opMap, r, fn)
}

func (r Result[T]) MapWithEnv(keys []env.Key, fn func(T, env.Env) T) Result[T] {
	return MapWithEnv(r, keys, fn)
}

// InspectOk calls fn with the value when Ok. r is returned as is.
func (r Result[T]) InspectOk(fn func(T)) Result[T] {
	if r.isOk && fn != nil {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the error when Err. r is returned as is.
func (r Result[T]) InspectErr(fn func(error)) Result[T] {
	if !r.isOk && r.err != nil && fn != nil {
		fn(r.err)
	}
	return r
}

// Unwrap returns the value, or the stored error unchanged when r is Err.
func (r Result[T]) Unwrap() (T, error) {
	if r.isOk {
		return r.value, nil
	}
	var zero T
	if r.err == nil {
		return zero, fault.New(fault.ErrInvalidState, opUnwrap, "uninitialized result")
	}
	return zero, r.err
}

// Must returns the value or panics with the stored error.
func (r Result[T]) Must() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// UnwrapErr returns the stored error. Calling it on Ok is an InvalidState.
func (r Result[T]) UnwrapErr() (stored error, err error) {
	if r.isOk || r.err == nil {
		return nil, fault.New(fault.ErrInvalidState, opUnwrapErr, "cannot unwrap error of Ok")
	}
	return r.err, nil
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.isOk {
		return r.value
	}
	return def
}

func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.isOk {
		return r.value
	}
	return fn(r.err)
}

// Value returns the value and true when Ok.
func (r Result[T]) Value() (T, bool) {
	if r.isOk {
		return r.value, true
	}
	var zero T
	return zero, false
}

// Error returns the stored error, nil when Ok.
func (r Result[T]) Error() error {
	if r.isOk {
		return nil
	}
	return r.err
}

// WithEnv registers every dep in a new env. A nil dep turns the result into an
// InvalidArgument Err that keeps the original env and writer.
func (r Result[T]) WithEnv(deps ...any) Result[T] {
	next := r.env
	for i, d := range deps {
		var err error
		if next, err = next.With(d); err != nil {
			return Result[T]{
				value: r.value,
				err:   fault.InvalidArgument(opWithEnv, fmt.Sprintf("dependency #%d must be a non-nil instance", i)),
				env:   r.env,
				log:   r.log,
			}
		}
	}
	return Result[T]{value: r.value, err: r.err, isOk: r.isOk, env: next, log: r.log}
}

// MergeEnv combines r's env with e, e winning on conflicts.
func (r Result[T]) MergeEnv(e env.Env) Result[T] {
	return r.withEnvironment(r.env.Merge(e))
}

func (r Result[T]) withEnvironment(e env.Env) Result[T] {
	r.env = e
	return r
}

func (r Result[T]) WriteTo(channel string, value any) Result[T] {
	r.log = r.log.Write(channel, value)
	return r
}

func (r Result[T]) WriterOutput(channel string) []any {
	return r.log.Get(channel)
}

// WithTrace records a trace.Trace with message on the trace channel.
func (r Result[T]) WithTrace(message string) Result[T] {
	r.log = r.log.WithTrace(trace.New(message))
	return r
}

func (r Result[T]) String() string {
	switch {
	case r.isOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case r.err != nil:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Result(uninitialized)"
	}
}
