// Package fault holds the error taxonomy shared by the rop packages and the
// Fault collaborator type. Every failure produced inside a transform is an
// *Error whose Kind is one of the sentinel errors below, so callers can
// branch with errors.Is without parsing messages.
package fault
