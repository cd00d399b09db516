package rop

import (
	"reflect"

	"github.com/ib-77/rail/pkg/rop/fault"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an errors.Join result into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		if _, typed := err.(*fault.Error); !typed {
			return e.Unwrap()
		}
	}

	return []error{err}
}

// protect runs fn and converts a panic into a PropagatedError.
func protect[U any](op string, fn func() U) (out U, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fault.Recovered(op, p)
		}
	}()
	return fn(), nil
}
