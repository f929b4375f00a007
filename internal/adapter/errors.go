package adapter

import (
	"errors"
	"fmt"
)

// Transport errors, one per HTTP status family the server uses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrUnexpectedResponse = errors.New("unexpected server response")
)

// APIError is a failure envelope returned by the server. It unwraps to the
// transport error matching its HTTP status.
type APIError struct {
	Status  int
	Code    string
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
