package rop

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/fault"
	"github.com/ib-77/rail/pkg/rop/writer"
)

const (
	opHead = "head"
	opOnly = "only"
)

// ResultList is an ordered, immutable collection of Results sharing one env
// and one combined writer. It is Ok when every item is Ok; an empty list is Ok.
type ResultList[T any] struct {
	items  []Result[T]
	env    env.Env
	log    writer.Writer
	failed int
}

func NewList[T any](opts ...SideChannel) ResultList[T] {
	s := applySides(opts)
	return ResultList[T]{env: s.env, log: s.log}
}

// ListOf builds a list of Ok items.
func ListOf[T any](values ...T) ResultList[T] {
	l := NewList[T]()
	for _, v := range values {
		l = l.Add(v)
	}
	return l
}

// ListFrom builds a list from existing Results, Ok or Err.
func ListFrom[T any](items ...Result[T]) ResultList[T] {
	l := NewList[T]()
	for _, r := range items {
		l = l.AddResult(r)
	}
	return l
}

func (l ResultList[T]) container() {}

// Add appends value as an Ok item carrying the list env.
func (l ResultList[T]) Add(value T) ResultList[T] {
	return l.AddResult(Ok(value, WithEnvironment(l.env)))
}

// AddResult appends r as is and merges its writer into the list writer.
func (l ResultList[T]) AddResult(r Result[T]) ResultList[T] {
	next := ResultList[T]{
		items:  append(slices.Clip(l.items), r),
		env:    l.env,
		log:    l.log.Merge(r.log),
		failed: l.failed,
	}
	if !r.isOk {
		next.failed++
	}
	return next
}

func (l ResultList[T]) IsOk() bool {
	return l.failed == 0
}

func (l ResultList[T]) IsErr() bool {
	return l.failed > 0
}

func (l ResultList[T]) Len() int {
	return len(l.items)
}

func (l ResultList[T]) Env() env.Env {
	return l.env
}

func (l ResultList[T]) Writer() writer.Writer {
	return l.log
}

// Items returns a copy of the items.
func (l ResultList[T]) Items() []Result[T] {
	return slices.Clone(l.items)
}

// All iterates over index and item in insertion order.
func (l ResultList[T]) All() iter.Seq2[int, Result[T]] {
	return func(yield func(int, Result[T]) bool) {
		for i, r := range l.items {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (l ResultList[T]) Values() iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		for _, r := range l.items {
			if !yield(r) {
				return
			}
		}
	}
}

// Errors returns the errors of the Err items in order.
func (l ResultList[T]) Errors() []error {
	errs := make([]error, 0, l.failed)
	for _, r := range l.items {
		if !r.isOk {
			errs = append(errs, r.err)
		}
	}
	return errs
}

// FilterOk drops every Err item. The errors are discarded, so the returned
// list is Ok even when l was not.
func (l ResultList[T]) FilterOk() ResultList[T] {
	next := ResultList[T]{items: make([]Result[T], 0, len(l.items)-l.failed), env: l.env, log: l.log}
	for _, r := range l.items {
		if r.isOk {
			next.items = append(next.items, r)
		}
	}
	return next
}

// Unwrap returns the values in order, or the error of the first Err item.
func (l ResultList[T]) Unwrap() ([]T, error) {
	values := make([]T, 0, len(l.items))
	for _, r := range l.items {
		v, err := r.Unwrap()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// UnwrapOr returns every value, substituting def for Err items.
func (l ResultList[T]) UnwrapOr(def T) []T {
	values := make([]T, 0, len(l.items))
	for _, r := range l.items {
		values = append(values, r.UnwrapOr(def))
	}
	return values
}

// WithEnv replaces the shared env. A nil dep collapses the whole list into a
// single InvalidArgument Err item; env and writer are kept.
func (l ResultList[T]) WithEnv(deps ...any) ResultList[T] {
	next := l.env
	for i, d := range deps {
		var err error
		if next, err = next.With(d); err != nil {
			failure := errWith[T](fault.InvalidArgument(opWithEnv,
				fmt.Sprintf("dependency #%d must be a non-nil instance", i)), l.env, writer.Empty())
			return ResultList[T]{items: []Result[T]{failure}, env: l.env, log: l.log, failed: 1}
		}
	}
	return ResultList[T]{items: l.items, env: next, log: l.log, failed: l.failed}
}

// Head returns the first item, Ok or Err.
func (l ResultList[T]) Head() (Result[T], error) {
	if len(l.items) == 0 {
		return Result[T]{}, fault.New(fault.ErrEmptyCollection, opHead, "list has no items")
	}
	return l.items[0], nil
}

// Only returns the single item of a one-item list.
func (l ResultList[T]) Only() (Result[T], error) {
	if len(l.items) != 1 {
		return Result[T]{}, fault.New(fault.ErrWrongArity, opOnly,
			fmt.Sprintf("expected exactly 1 item, got %d", len(l.items)))
	}
	return l.items[0], nil
}

func (l ResultList[T]) WriteTo(channel string, value any) ResultList[T] {
	l.log = l.log.Write(channel, value)
	return l
}

func (l ResultList[T]) WriterOutput(channel string) []any {
	return l.log.Get(channel)
}

func (l ResultList[T]) InspectOk(fn func(T)) ResultList[T] {
	for _, r := range l.items {
		r.InspectOk(fn)
	}
	return l
}

func (l ResultList[T]) InspectErr(fn func(error)) ResultList[T] {
	for _, r := range l.items {
		r.InspectErr(fn)
	}
	return l
}

func (l ResultList[T]) Bind(fn func(T) Result[T]) ResultList[T] {
	return BindList(l, fn)
}

func (l ResultList[T]) Map(fn func(T) T) ResultList[T] {
	return MapList(l, fn)
}

func (l ResultList[T]) BindWithEnv(keys []env.Key, fn func(T, env.Env) Result[T]) ResultList[T] {
	return BindListWithEnv(l, keys, fn)
}

func (l ResultList[T]) MapWithEnv(keys []env.Key, fn func(T, env.Env) T) ResultList[T] {
	return MapListWithEnv(l, keys, fn)
}

func (l ResultList[T]) String() string {
	parts := make([]string, 0, len(l.items))
	for _, r := range l.items {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
