package rop

import (
	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/writer"
)

// BindList binds every Ok item with fn. Ok items see the list env; Err items
// are passed through untouched.
func BindList[T, U any](l ResultList[T], fn func(T) Result[U]) ResultList[U] {
	return eachItem(l, func(r Result[T]) Result[U] { return bind(opBind, r, fn) })
}

func MapList[T, U any](l ResultList[T], fn func(T) U) ResultList[U] {
	return eachItem(l, func(r Result[T]) Result[U] { return mapValue(opMap, r, fn) })
}

func BindListWithEnv[T, U any](l ResultList[T], keys []env.Key, fn func(T, env.Env) Result[U]) ResultList[U] {
	return eachItem(l, func(r Result[T]) Result[U] { return BindWithEnv(r, keys, fn) })
}

func MapListWithEnv[T, U any](l ResultList[T], keys []env.Key, fn func(T, env.Env) U) ResultList[U] {
	return eachItem(l, func(r Result[T]) Result[U] { return MapWithEnv(r, keys, fn) })
}

// TryList runs a Go style (U, error) function on every Ok item.
func TryList[T, U any](l ResultList[T], fn func(T) (U, error)) ResultList[U] {
	return eachItem(l, func(r Result[T]) Result[U] { return Try(r, fn) })
}

// eachItem applies step item by item. The list writer receives, in item
// order, only what each step appended to the item's writer; the items'
// earlier entries were merged when they were added.
func eachItem[T, U any](l ResultList[T], step func(Result[T]) Result[U]) ResultList[U] {
	next := ResultList[U]{items: make([]Result[U], 0, len(l.items)), env: l.env}
	delta := writer.Empty()

	for _, item := range l.items {
		var out Result[U]
		if item.isOk {
			out = step(item.withEnvironment(l.env))
			delta = delta.Merge(out.log.Since(item.log))
		} else {
			out = carry[T, U](item)
		}
		if !out.isOk {
			next.failed++
		}
		next.items = append(next.items, out)
	}

	next.log = l.log.Merge(delta)
	return next
}

// Collect turns a list into a single Result holding every value, or the first
// error by position. The list env and writer are carried over.
func Collect[T any](l ResultList[T]) Result[[]T] {
	values, err := l.Unwrap()
	if err != nil {
		return errWith[[]T](err, l.env, l.log)
	}
	return Result[[]T]{value: values, isOk: true, env: l.env, log: l.log}
}
