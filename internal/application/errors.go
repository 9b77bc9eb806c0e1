package application

import (
	"errors"
	"net/http"
)

// Error is a request outcome the transport layer can serialize directly:
// a status code plus the exact plain-text body. Anything that is not an
// *Error is treated as unexpected and collapses to 500 at the handler
// boundary.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unauthenticated covers requests with no resolved subject.
func Unauthenticated() *Error {
	return &Error{Status: http.StatusUnauthorized, Message: "Unauthorized"}
}

// Forbidden covers subjects that do not own the target store. The body text
// matches the 401 variant; only the status differs.
func Forbidden() *Error {
	return &Error{Status: http.StatusForbidden, Message: "Unauthorized"}
}

// Validation carries a field-specific message, e.g. "Name is required".
func Validation(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: msg}
}

// AsError unwraps err into *Error when it is one.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
