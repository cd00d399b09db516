package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingDependency     = errors.New("missing dependency")
	ErrInvalidCallbackResult = errors.New("invalid callback result")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrPropagated            = errors.New("propagated error")
	ErrEmptyCollection       = errors.New("empty collection")
	ErrWrongArity            = errors.New("wrong arity")
	ErrInvalidState          = errors.New("invalid state")
	ErrNotCallable           = errors.New("not callable")
)

// Error is a typed failure produced by a transform.
// Kind is always one of the Err* sentinels; Cause is the error that triggered
// it, if any (a callback error, a recovered panic value, ...).
type Error struct {
	Kind  error
	Op    string
	Msg   string
	Cause error
}

func New(kind error, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Wrap(kind error, op string, cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: kind, Op: op, Msg: msg, Cause: cause}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	}
	if e.Msg != "" {
		if e.Kind != nil {
			b.WriteString(": ")
		}
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// KindOf returns the sentinel kind of err, or nil when err carries none.
func KindOf(err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return nil
}

// Recovered converts a recovered panic value into a PropagatedError.
func Recovered(op string, v any) *Error {
	switch p := v.(type) {
	case error:
		return Wrap(ErrPropagated, op, p)
	case string:
		return Wrap(ErrPropagated, op, errors.New(p))
	default:
		return Wrap(ErrPropagated, op, fmt.Errorf("panic: %v", p))
	}
}

func MissingDependency(op, key string) *Error {
	return New(ErrMissingDependency, op, key)
}

func InvalidArgument(op, msg string) *Error {
	return New(ErrInvalidArgument, op, msg)
}

func InvalidCallbackResult(op, msg string) *Error {
	return New(ErrInvalidCallbackResult, op, msg)
}
