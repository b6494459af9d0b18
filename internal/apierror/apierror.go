// Package apierror defines failures that map directly onto an HTTP status.
package apierror

import (
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap keeps err as the cause; the client only sees message.
func Wrap(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrResourceNotFound = New(http.StatusNotFound, "Resource not found")
	ErrContactNotFound  = New(http.StatusNotFound, "Contact not found")
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "Method not allowed")
	ErrNotAllowedByCORS = New(http.StatusForbidden, "Not allowed by CORS")
	ErrPayloadTooLarge  = New(http.StatusRequestEntityTooLarge, "Payload too large")
	ErrMalformedBody    = New(http.StatusBadRequest, "Malformed request body")
	ErrTooManyRequests  = New(http.StatusTooManyRequests, "Too many requests, please try again later.")
	ErrInternal         = New(http.StatusInternalServerError, "Internal Server Error")
)
