package rop

import (
	"github.com/ib-77/rail/pkg/rop/env"
	"github.com/ib-77/rail/pkg/rop/writer"
)

// Container is implemented by Result, Option and ResultList only.
type Container interface {
	Env() env.Env
	Writer() writer.Writer
	container()
}

// boxer is implemented by every Result instantiation and lets dynamically
// typed callbacks hand back a Result of any element type.
type boxer interface {
	Container
	box() Result[any]
}

func isContainer(v any) bool {
	_, ok := v.(Container)
	return ok
}
