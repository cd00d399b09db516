package solo

import (
	"errors"

	"github.com/ib-77/rail/pkg/rop"
)

func Succeed[T any](input T, opts ...rop.SideChannel) rop.Result[T] {
	return rop.Ok(input, opts...)
}

func Fail[T any](err error, opts ...rop.SideChannel) rop.Result[T] {
	return rop.Err[T](err, opts...)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input rop.Result[T],
	validate func(in T) (valid bool, errMsg string)) rop.Result[T] {

	v, ok := input.Value()
	if !ok {
		return input
	}
	if isValid, errMsg := validate(v); !isValid {
		return input.Fail(errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator and joins their errors. With breakOnError
// it stops at the first failure.
func ValidateAll[T any](
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		input,
		breakOnError,
		func(current rop.Result[T]) rop.Result[T] {

			if current.IsErr() {
				e := rop.GetErrors(err)
				e = append(e, current.Error())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return current.Fail(err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	return rop.Bind(input, onSuccess)
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {
	return rop.Map(input, onSuccess)
}

func Tee[T any](input rop.Result[T],
	onSuccess func(r rop.Result[T])) rop.Result[T] {

	if input.IsOk() {
		onSuccess(input)
	}

	return input
}

func TeeIf[T any](input rop.Result[T],
	condition func(r rop.Result[T]) bool,
	onSuccessAndCondition func(r rop.Result[T])) rop.Result[T] {

	if input.IsOk() {
		if condition(input) {
			onSuccessAndCondition(input)
		}
	}

	return input
}

func DoubleTee[T any](input rop.Result[T],
	onSuccess func(r T),
	onError func(err error)) rop.Result[T] {

	return input.InspectOk(onSuccess).InspectErr(onError)
}

// DoubleMap maps the value on success and reports the error to onError
// otherwise; the error is carried forward either way.
func DoubleMap[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error)) rop.Result[Out] {

	if input.IsErr() && onError != nil {
		onError(input.Error())
	}

	return rop.Map(input, onSuccess)
}

func Try[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {
	return rop.Try(input, onTryExecute)
}

func FailOnError[T any](input rop.Result[T],
	maybeErr func(in T) error) rop.Result[T] {

	v, ok := input.Value()
	if !ok {
		return input
	}
	if err := maybeErr(v); err != nil {
		return input.Fail(err)
	}
	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {
	return rop.Fold(input, onSuccess, onError)
}

// Join folds inputsF over input, passing every step's outcome through concat.
func Join[T any](
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(current rop.Result[T]) rop.Result[T],
	inputsF ...func(in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(inputsF[0](input))

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			nextRes := concat(in(finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
