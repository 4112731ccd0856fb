package domain

import "errors"

// Kind classifies a domain failure. Transport code maps kinds to HTTP
// status codes in exactly one place; services never see status codes.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

// Error is the failure type returned by all domain operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is makes two domain errors of the same kind match under errors.Is,
// so sentinel-style comparisons keep working at the boundary.
func (e *Error) Is(target error) bool {
	var de *Error
	if errors.As(target, &de) {
		return de.Kind == e.Kind
	}
	return false
}

func Validation(msg string) *Error      { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error        { return &Error{Kind: KindConflict, Message: msg} }
func Unauthenticated(msg string) *Error { return &Error{Kind: KindUnauthenticated, Message: msg} }
func Forbidden(msg string) *Error       { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error        { return &Error{Kind: KindNotFound, Message: msg} }

// KindOf returns the kind carried by err, or KindUnknown for errors that
// did not originate in the domain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// ErrInvalidCredentials is the single login failure: the message is
// identical for an unknown email and a wrong password so responses do not
// reveal which one it was.
var ErrInvalidCredentials = Unauthenticated("incorrect email or password")
