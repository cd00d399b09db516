package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/fault"
	"github.com/ib-77/rail/pkg/rop/trace"
	"github.com/ib-77/rail/pkg/rop/writer"
)

type counter struct {
	step int
}

func (c *counter) Inc(v int) int {
	return v + c.step
}

type prefix struct {
	value string
}

func TestOk(t *testing.T) {
	t.Parallel()

	r := Ok(5)
	if !r.IsOk() || r.IsErr() {
		t.Fatalf("expected ok, got %v", r)
	}
	v, ok := r.Value()
	if !ok || v != 5 {
		t.Fatalf("expected 5, got %v (ok=%v)", v, ok)
	}
	if r.Error() != nil {
		t.Fatalf("expected no error, got %v", r.Error())
	}
	assert.True(t, r.Env().IsEmpty())
	assert.True(t, r.Writer().IsEmpty())
}

func TestErr(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Err[int](boom)

	if r.IsOk() || !r.IsErr() {
		t.Fatalf("expected err, got %v", r)
	}
	_, ok := r.Value()
	assert.False(t, ok)
	assert.Equal(t, boom, r.Error())
}

func TestErr_NilErrorIsReplaced(t *testing.T) {
	t.Parallel()

	r := Err[int](nil)
	require.True(t, r.IsErr())
	assert.ErrorIs(t, r.Error(), fault.ErrInvalidArgument)
}

func TestConstructors_SideChannels(t *testing.T) {
	t.Parallel()

	e := env.MustWith(&counter{step: 1})
	w := writer.Empty().Write("log", "boot")

	ok := Ok("v", WithEnvironment(e), WithLog(w))
	failed := Err[string](errors.New("x"), WithEnvironment(e), WithLog(w))

	for _, r := range []Result[string]{ok, failed} {
		assert.Equal(t, e.All(), r.Env().All())
		assert.True(t, w.Equal(r.Writer()))
	}
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, FromPair(3, nil).UnwrapOr(0))

	boom := errors.New("boom")
	r := FromPair(3, boom)
	require.True(t, r.IsErr())
	assert.Equal(t, boom, r.Error())
}

func TestLift(t *testing.T) {
	t.Parallel()

	w := writer.Empty().Write("log", "a")
	e := env.MustWith(prefix{value: "p"})

	lifted := Ok(1, WithEnvironment(e), WithLog(w)).Lift(2)
	assert.Equal(t, 2, lifted.UnwrapOr(0))
	assert.True(t, w.Equal(lifted.Writer()))
	assert.Equal(t, e.All(), lifted.Env().All())

	boom := errors.New("boom")
	failed := Err[int](boom).Lift(2)
	assert.True(t, failed.IsErr())
	assert.Equal(t, boom, failed.Error())
}

func TestFail(t *testing.T) {
	t.Parallel()

	w := writer.Empty().Write("log", "a")
	boom := errors.New("boom")

	r := Ok(1, WithLog(w)).Fail(boom)
	require.True(t, r.IsErr())
	assert.Equal(t, boom, r.Error())
	assert.True(t, w.Equal(r.Writer()))

	again := errors.New("again")
	assert.Equal(t, again, r.Fail(again).Error())

	f := fault.NewFault("E1", "declined", nil)
	assert.Equal(t, "[E1] declined", Ok(1).Fail(f).Error().Error())
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var seen []string
	ok := Ok("v").WriteTo("log", "a")

	got := ok.
		InspectOk(func(v string) { seen = append(seen, "ok:"+v) }).
		InspectErr(func(err error) { seen = append(seen, "err:"+err.Error()) })

	assert.Equal(t, []string{"ok:v"}, seen)
	assert.Equal(t, ok.UnwrapOr(""), got.UnwrapOr(""))
	assert.True(t, ok.Writer().Equal(got.Writer()))

	seen = nil
	Err[string](errors.New("x")).
		InspectOk(func(v string) { seen = append(seen, "ok:"+v) }).
		InspectErr(func(err error) { seen = append(seen, "err:"+err.Error()) })
	assert.Equal(t, []string{"err:x"}, seen)
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, err := Ok(7).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	boom := errors.New("boom")
	_, err = Err[int](boom).Unwrap()
	assert.Same(t, boom, err, "stored error must be returned unchanged")

	_, err = Result[int]{}.Unwrap()
	assert.ErrorIs(t, err, fault.ErrInvalidState)
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Ok(7).Must())

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		Err[int](boom).Must()
	})
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	stored, err := Err[int](boom).UnwrapErr()
	require.NoError(t, err)
	assert.Equal(t, boom, stored)

	stored, err = Ok(1).UnwrapErr()
	assert.Nil(t, stored)
	require.ErrorIs(t, err, fault.ErrInvalidState)
	assert.Contains(t, err.Error(), "cannot unwrap error of Ok")
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Ok(1).UnwrapOr(9))
	assert.Equal(t, 9, Err[int](errors.New("x")).UnwrapOr(9))

	assert.Equal(t, 1, Ok(1).UnwrapOrElse(func(error) int { return 9 }))
	assert.Equal(t, 1, Err[int](errors.New("x")).UnwrapOrElse(func(err error) int {
		return len(err.Error())
	}))
}

func TestWithEnv(t *testing.T) {
	t.Parallel()

	r := Ok(10).WithEnv(&counter{step: 1}, prefix{value: "p"})
	require.True(t, r.IsOk())
	assert.Equal(t, 2, r.Env().Len())

	c, err := env.Read[*counter](r.Env())
	require.NoError(t, err)
	assert.Equal(t, 1, c.step)
}

func TestWithEnv_NilDependency(t *testing.T) {
	t.Parallel()

	base := Ok(10).WithEnv(prefix{value: "p"}).WriteTo("log", "a")
	var missing *counter

	r := base.WithEnv(&counter{step: 1}, missing)

	require.True(t, r.IsErr())
	assert.ErrorIs(t, r.Error(), fault.ErrInvalidArgument)
	assert.Contains(t, r.Error().Error(), "dependency #1")
	assert.Equal(t, base.Env().All(), r.Env().All(), "original env kept")
	assert.True(t, base.Writer().Equal(r.Writer()), "original writer kept")
}

func TestWithEnv_OnErrStillUpdatesEnv(t *testing.T) {
	t.Parallel()

	r := Err[int](errors.New("x")).WithEnv(prefix{value: "p"})
	assert.True(t, r.IsErr())
	assert.True(t, r.Env().Has(env.KeyOf[prefix]()))
}

func TestMergeEnv(t *testing.T) {
	t.Parallel()

	r := Ok(1).WithEnv(&counter{step: 1}).MergeEnv(env.MustWith(&counter{step: 2}))
	assert.Equal(t, 2, env.MustRead[*counter](r.Env()).step)
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	base := Ok(1).WriteTo("log", "a")
	next := base.WriteTo("log", "b")

	assert.Equal(t, []any{"a"}, base.WriterOutput("log"))
	assert.Equal(t, []any{"a", "b"}, next.WriterOutput("log"))
	assert.Equal(t, []any{}, next.WriterOutput("none"))
}

func TestWithTrace(t *testing.T) {
	t.Parallel()

	r := Ok(1).WithTrace("loaded")
	out := r.WriterOutput(trace.Channel)
	require.Len(t, out, 1)
	tr, ok := out[0].(trace.Trace)
	require.True(t, ok)
	assert.Equal(t, "loaded", tr.Message())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(1)", Ok(1).String())
	assert.Equal(t, "Err(boom)", Err[int](errors.New("boom")).String())
	assert.Equal(t, "Result(uninitialized)", Result[int]{}.String())
}

func TestToOption(t *testing.T) {
	t.Parallel()

	assert.True(t, Ok(1).ToOption().IsSome())

	o := Err[int](errors.New("x")).WriteTo("log", "a").ToOption()
	assert.True(t, o.IsNone())
	assert.Equal(t, []any{"a"}, o.WriterOutput("log"))
}
