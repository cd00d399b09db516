package rop

import (
	"fmt"

	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/fault"
	"github.com/ib-77/rail/pkg/rop/writer"
)

const (
	opBind         = "bind"
	opBindAny      = "bindAny"
	opBindWithEnv  = "bindWithEnv"
	opMap          = "map"
	opMapWithEnv   = "mapWithEnv"
	opTry          = "try"
	opApply        = "apply"
	opApplyWithEnv = "applyWithEnv"
	opMapErr       = "mapErr"
	opOrElse       = "orElse"
	opUnwrap       = "unwrap"
	opUnwrapErr    = "unwrapErr"
	opWithEnv      = "withEnv"
)

// Bind runs fn on the value of an Ok Result and returns fn's outcome with r's
// env and r's writer merged with the outcome's writer. An Err is passed
// through. A panic in fn or an uninitialized returned Result yields an Err
// that keeps r's env and writer.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	return bind(opBind, r, fn)
}

func bind[T, U any](op string, r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	if fn == nil {
		return errWith[U](fault.New(fault.ErrNotCallable, op, "nil callback"), r.env, r.log)
	}

	out, err := protect(op, func() Result[U] { return fn(r.value) })
	if err != nil {
		return errWith[U](err, r.env, r.log)
	}
	if !out.initialized() {
		return errWith[U](fault.InvalidCallbackResult(op, "callback returned an uninitialized Result"), r.env, r.log)
	}

	return Result[U]{value: out.value, err: out.err, isOk: out.isOk, env: r.env, log: r.log.Merge(out.log)}
}

// BindAny is Bind for dynamically typed callbacks. fn must return a Result of
// any element type; any other value is an InvalidCallbackResult.
func BindAny[T any](r Result[T], fn func(T) any) Result[any] {
	if !r.isOk {
		return carry[T, any](r)
	}
	if fn == nil {
		return errWith[any](fault.New(fault.ErrNotCallable, opBindAny, "nil callback"), r.env, r.log)
	}

	out, err := protect(opBindAny, func() any { return fn(r.value) })
	if err != nil {
		return errWith[any](err, r.env, r.log)
	}

	res, ok := out.(boxer)
	if !ok {
		return errWith[any](fault.InvalidCallbackResult(opBindAny,
			"callback must return a Result, got "+describe(out)), r.env, r.log)
	}
	return bind(opBindAny, r, func(T) Result[any] { return res.box() })
}

// BindWithEnv resolves keys against r's env and calls fn with the value and
// the resolved view. A missing key short-circuits without calling fn.
func BindWithEnv[T, U any](r Result[T], keys []env.Key, fn func(T, env.Env) Result[U]) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	view, err := r.env.Only(keys...)
	if err != nil {
		return errWith[U](err, r.env, r.log)
	}
	if fn == nil {
		return errWith[U](fault.New(fault.ErrNotCallable, opBindWithEnv, "nil callback"), r.env, r.log)
	}
	return bind(opBindWithEnv, r, func(v T) Result[U] { return fn(v, view) })
}

// Map applies a plain-value transform. fn must not return a container
// (Result, Option or ResultList); use Bind for that.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	return mapValue(opMap, r, fn)
}

func mapValue[T, U any](op string, r Result[T], fn func(T) U) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	if fn == nil {
		return errWith[U](fault.New(fault.ErrNotCallable, op, "nil callback"), r.env, r.log)
	}

	out, err := protect(op, func() U { return fn(r.value) })
	if err != nil {
		return errWith[U](err, r.env, r.log)
	}
	if isContainer(out) {
		return errWith[U](fault.InvalidCallbackResult(op,
			"callback returned a container "+describe(out)+", use Bind"), r.env, r.log)
	}

	return Result[U]{value: out, isOk: true, env: r.env, log: r.log}
}

// MapWithEnv is Map with the dependency resolution of BindWithEnv.
func MapWithEnv[T, U any](r Result[T], keys []env.Key, fn func(T, env.Env) U) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	view, err := r.env.Only(keys...)
	if err != nil {
		return errWith[U](err, r.env, r.log)
	}
	if fn == nil {
		return errWith[U](fault.New(fault.ErrNotCallable, opMapWithEnv, "nil callback"), r.env, r.log)
	}
	return mapValue(opMapWithEnv, r, func(v T) U { return fn(v, view) })
}

// Try calls a Go style (U, error) function. A returned error becomes a
// PropagatedError wrapping it.
func Try[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	return bind(opTry, r, func(v T) Result[U] {
		out, err := fn(v)
		if err != nil {
			return Err[U](fault.Wrap(fault.ErrPropagated, opTry, err))
		}
		if isContainer(out) {
			return Err[U](fault.InvalidCallbackResult(opTry, "callback returned a container "+describe(out)))
		}
		return Ok(out)
	})
}

// Apply calls the function carried by fr with the value carried by r.
// The first Err among r and fr is returned. On success the Result has r's env
// and r's writer merged with fr's writer.
func Apply[T, U any](r Result[T], fr Result[func(T) U]) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	if fr.err != nil {
		return carry[func(T) U, U](fr)
	}

	log := r.log.Merge(fr.log)
	if !fr.isOk || fr.value == nil {
		return errWith[U](fault.New(fault.ErrNotCallable, opApply, "no function to apply"), r.env, log)
	}
	return applied(opApply, r, log, func() U { return fr.value(r.value) })
}

// ApplyWithEnv is Apply where the function also receives the resolved view of
// keys from r's env.
func ApplyWithEnv[T, U any](r Result[T], fr Result[func(T, env.Env) U], keys []env.Key) Result[U] {
	if !r.isOk {
		return carry[T, U](r)
	}
	if fr.err != nil {
		return carry[func(T, env.Env) U, U](fr)
	}

	log := r.log.Merge(fr.log)
	view, err := r.env.Only(keys...)
	if err != nil {
		return errWith[U](err, r.env, log)
	}
	if !fr.isOk || fr.value == nil {
		return errWith[U](fault.New(fault.ErrNotCallable, opApplyWithEnv, "no function to apply"), r.env, log)
	}
	return applied(opApplyWithEnv, r, log, func() U { return fr.value(r.value, view) })
}

func applied[T, U any](op string, r Result[T], log writer.Writer, call func() U) Result[U] {
	out, err := protect(op, call)
	if err != nil {
		return errWith[U](err, r.env, log)
	}
	if isContainer(out) {
		return errWith[U](fault.InvalidCallbackResult(op,
			"applied function returned a container "+describe(out)), r.env, log)
	}
	return Result[U]{value: out, isOk: true, env: r.env, log: log}
}

// MapErr rewrites the error of an Err Result. fn returning nil is an
// InvalidCallbackResult.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.isOk || r.err == nil {
		return r
	}
	out, err := protect(opMapErr, func() error { return fn(r.err) })
	if err != nil {
		return errWith[T](err, r.env, r.log)
	}
	if out == nil {
		return errWith[T](fault.InvalidCallbackResult(opMapErr, "callback returned a nil error"), r.env, r.log)
	}
	return errWith[T](out, r.env, r.log)
}

// OrElse gives an Err a chance to recover. fn's outcome is merged like Bind.
func (r Result[T]) OrElse(fn func(error) Result[T]) Result[T] {
	if r.isOk || r.err == nil {
		return r
	}
	out, err := protect(opOrElse, func() Result[T] { return fn(r.err) })
	if err != nil {
		return errWith[T](err, r.env, r.log)
	}
	if !out.initialized() {
		return errWith[T](fault.InvalidCallbackResult(opOrElse, "callback returned an uninitialized Result"), r.env, r.log)
	}
	return Result[T]{value: out.value, err: out.err, isOk: out.isOk, env: r.env, log: r.log.Merge(out.log)}
}

// Fold collapses r into a plain value.
func Fold[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.isOk {
		return onOk(r.value)
	}
	return onErr(r.err)
}

func describe(v any) string {
	return fmt.Sprintf("%T", v)
}
