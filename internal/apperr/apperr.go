// Package apperr defines the error type used for the application's sentinel
// errors.
package apperr

import "fmt"

// Error is a sentinel error whose message may carry format verbs. Use Fmt to
// fill them in and Wrap to attach an underlying cause; both keep the result
// matchable against the sentinel with errors.Is.
type Error struct {
	Cause   error
	parent  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	for cur := e; cur != nil; cur = cur.parent {
		if cur == t {
			return true
		}
	}

	return false
}

// Fmt returns a copy of e with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		parent:  e,
	}
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		parent:  e,
	}
}
