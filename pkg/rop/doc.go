// Package rop implements railway-oriented containers: Result, ResultList and
// Option. Each container carries two side channels next to its value: an
// env.Env with read-only dependencies and a writer.Writer with an append-only
// log. Every transform returns a new value; nothing is mutated in place.
//
// Transforms that change the value type (Bind, Map, Apply and their *WithEnv
// forms) are package functions because Go methods cannot declare type
// parameters. Same-type shortcuts exist as methods.
//
// Callback panics never cross a transform: they are recovered and stored as
// the error of the returned Result (fault.ErrPropagated). Unwrap is the exit
// point that hands the stored error back to ordinary Go error handling.
package rop
