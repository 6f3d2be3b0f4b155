package domain

import "errors"

// ErrorKind classifies a failure so the transport layer can map it to a
// status code without inspecting messages.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindConflict
	KindNotFound
	KindInternal
)

// Error is a tagged domain error. Messages travel to the transport layer
// verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf classifies any error. Failures that did not originate in the
// domain (driver errors, I/O) are KindInternal.
func KindOf(err error) ErrorKind {
	var domainErr *Error

	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}

	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
