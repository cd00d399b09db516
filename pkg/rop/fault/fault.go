package fault

import "fmt"

// Fault is a domain failure with a machine readable code and an optional
// previous error.
type Fault struct {
	code     string
	message  string
	previous error
}

func NewFault(code, message string, previous error) *Fault {
	return &Fault{code: code, message: message, previous: previous}
}

func (f *Fault) Code() string {
	return f.code
}

func (f *Fault) Message() string {
	return f.message
}

func (f *Fault) Previous() error {
	return f.previous
}

func (f *Fault) Error() string {
	if f.code == "" {
		return f.message
	}
	return fmt.Sprintf("[%s] %s", f.code, f.message)
}

func (f *Fault) Unwrap() error {
	return f.previous
}
