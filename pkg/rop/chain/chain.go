package chain

import (
	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/env"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T, opts ...rop.SideChannel) *Chain[T] {
	return &Chain[T]{result: rop.Ok(value, opts...)}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{result: rop.Bind(c.result, onSuccess)}
}

// ThenWithEnv chains a function that also receives the dependencies named by keys
func ThenWithEnv[T, U any](c *Chain[T], keys []env.Key, onSuccess func(T, env.Env) rop.Result[U]) *Chain[U] {
	return &Chain[U]{result: rop.BindWithEnv(c.result, keys, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: rop.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: rop.Map(c.result, onSuccess)}
}

func MapWithEnv[T, U any](c *Chain[T], keys []env.Key, onSuccess func(T, env.Env) U) *Chain[U] {
	return &Chain[U]{result: rop.MapWithEnv(c.result, keys, onSuccess)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: c.result.InspectOk(onSuccess)}
}

// OnError performs a side effect on failure without changing the result
func (c *Chain[T]) OnError(onFailure func(error)) *Chain[T] {
	return &Chain[T]{result: c.result.InspectErr(onFailure)}
}

// Log appends value to channel of the chain's writer
func (c *Chain[T]) Log(channel string, value any) *Chain[T] {
	return &Chain[T]{result: c.result.WriteTo(channel, value)}
}

// Trace records message on the trace channel
func (c *Chain[T]) Trace(message string) *Chain[T] {
	return &Chain[T]{result: c.result.WithTrace(message)}
}

// With adds dependencies to the chain's env
func (c *Chain[T]) With(deps ...any) *Chain[T] {
	return &Chain[T]{result: c.result.WithEnv(deps...)}
}

// Or returns the first Ok chain among c and alternatives, or the first
// failure when none is Ok.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt != nil && alt.result.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when every chain is Ok.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if ch == nil {
			continue
		}
		if ch.result.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil runs step at least once and keeps running it while the chain
// is Ok and until reports true for the current value.
func (c *Chain[T]) RepeatUntil(step func(T) rop.Result[T], until func(T) bool) *Chain[T] {
	if c.result.IsErr() {
		return c
	}

	for {
		c = Then(c, step)

		v, ok := c.result.Value()
		if !ok || !until(v) {
			return c
		}
	}
}

// While runs step as long as the chain is Ok and while reports true.
func (c *Chain[T]) While(step func(T) rop.Result[T], while func(T) bool) *Chain[T] {
	for {
		v, ok := c.result.Value()
		if !ok || !while(v) {
			return c
		}
		c = Then(c, step)
	}
}

// Finally collapses the chain into a final value using rop.Fold
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return rop.Fold(c.result, onSuccess, onFailure)
}
