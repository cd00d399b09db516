package env

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/rop/fault"
)

type counter struct {
	step int
}

func (c *counter) Inc(v int) int {
	return v + c.step
}

type clock struct {
	now string
}

type greeter interface {
	Greet(name string) string
}

type english struct{}

func (english) Greet(name string) string {
	return "hello " + name
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := Empty()
	next, err := base.With(&counter{step: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, base.Len())
	assert.Equal(t, 1, next.Len())
	assert.True(t, next.Has(KeyOf[*counter]()))
	assert.False(t, base.Has(KeyOf[*counter]()))
}

func TestWith_ReplacesSameType(t *testing.T) {
	t.Parallel()

	e := MustWith(&counter{step: 1}, &counter{step: 5})

	assert.Equal(t, 1, e.Len())
	c, err := Read[*counter](e)
	require.NoError(t, err)
	assert.Equal(t, 5, c.step)
}

func TestWith_RejectsNil(t *testing.T) {
	t.Parallel()

	var c *counter
	tests := []struct {
		name string
		dep  any
	}{
		{name: "untyped nil", dep: nil},
		{name: "nil pointer", dep: c},
		{name: "nil map", dep: map[string]int(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := MustWith(clock{now: "t0"})
			got, err := e.With(tt.dep)
			require.ErrorIs(t, err, fault.ErrInvalidArgument)
			assert.Equal(t, e.All(), got.All())
		})
	}
}

func TestWithAs_KeysByInterface(t *testing.T) {
	t.Parallel()

	e, err := WithAs[greeter](Empty(), english{})
	require.NoError(t, err)

	g, ok := Lookup[greeter](e)
	require.True(t, ok)
	assert.Equal(t, "hello bob", g.Greet("bob"))

	_, ok = Lookup[english](e)
	assert.False(t, ok, "concrete type key must not be registered")

	_, err = WithAs[greeter](Empty(), nil)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestReadAndGet(t *testing.T) {
	t.Parallel()

	e := MustWith(clock{now: "noon"})

	v, err := e.Read(KeyOf[clock]())
	require.NoError(t, err)
	assert.Equal(t, clock{now: "noon"}, v)

	_, err = e.Read(KeyOf[*counter]())
	require.ErrorIs(t, err, fault.ErrMissingDependency)
	assert.Contains(t, err.Error(), "*env.counter")

	missing, ok := e.Get(KeyOf[*counter]())
	assert.False(t, ok)
	assert.Nil(t, missing)

	_, err = Read[*counter](e)
	assert.ErrorIs(t, err, fault.ErrMissingDependency)
}

func TestMustRead_PanicsWithMissingDependency(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, fault.ErrMissingDependency)
	}()

	MustRead[clock](Empty())
	t.Fatalf("MustRead should have panicked")
}

func TestMerge_RightBiased(t *testing.T) {
	t.Parallel()

	a := MustWith(&counter{step: 1}, clock{now: "a"})
	b := MustWith(&counter{step: 2})

	merged := a.Merge(b)

	for _, k := range []Key{KeyOf[*counter](), KeyOf[clock]()} {
		want, inB := b.Get(k)
		if !inB {
			want, _ = a.Get(k)
		}
		got, _ := merged.Get(k)
		assert.Equal(t, want, got, "key %s", k)
	}

	assert.Equal(t, 2, a.Len(), "receiver untouched")
	assert.Equal(t, 1, b.Len(), "argument untouched")
	assert.Equal(t, a.All(), a.Merge(Empty()).All())
	assert.Equal(t, b.All(), Empty().Merge(b).All())
}

func TestOnly(t *testing.T) {
	t.Parallel()

	e := MustWith(&counter{step: 1}, clock{now: "a"})

	view, err := e.Only(KeyOf[clock]())
	require.NoError(t, err)
	assert.Equal(t, 1, view.Len())
	assert.True(t, view.Has(KeyOf[clock]()))

	_, err = e.Only(KeyOf[clock](), KeyOf[greeter]())
	require.ErrorIs(t, err, fault.ErrMissingDependency)
	assert.Contains(t, err.Error(), "env.greeter")
}

func TestLocal_ScopedOverride(t *testing.T) {
	t.Parallel()

	e := MustWith(&counter{step: 1})

	got, err := Local(e, func(scoped Env) int {
		return MustRead[*counter](scoped).Inc(10)
	}, &counter{step: 100})
	require.NoError(t, err)
	assert.Equal(t, 110, got)

	after := MustRead[*counter](e)
	assert.Equal(t, 1, after.step, "override must not leak")

	plain, err := Local(e, func(scoped Env) int { return scoped.Len() })
	require.NoError(t, err)
	assert.Equal(t, 1, plain)

	_, err = Local(e, func(Env) int { return 0 }, nil)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestAll_IsSnapshot(t *testing.T) {
	t.Parallel()

	e := MustWith(clock{now: "a"})
	snap := e.All()
	delete(snap, KeyOf[clock]())

	assert.True(t, e.Has(KeyOf[clock]()))
}

func TestKeysAndString(t *testing.T) {
	t.Parallel()

	e := MustWith(clock{now: "a"}, &counter{})
	keys := e.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "*env.counter", keys[0].String())
	assert.Equal(t, "env.clock", keys[1].String())
	assert.Equal(t, "Env{*env.counter, env.clock}", fmt.Sprint(e))
	assert.Equal(t, "<nil>", Key{}.String())
}
