package frontendtesting

import (
	"errors"
	"fmt"
)

const (
	ErrorKindTransport ErrorKind = iota
	ErrorKindAPI
	ErrorKindParse
	ErrorKindMissingField
)

type ErrorKind uint

//go:generate enumer -type=ErrorKind -trimprefix=ErrorKind -transform=snake

// TransportError is returned when the testing API could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Unable to reach testing API: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unable to decode testing API response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a field expected in the response that was absent or null.
type MissingFieldError struct {
	// Dotted path of the field, e.g. login.user.password.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Testing API response is missing %v", e.Field)
}

// KindOf classifies err. The second result is false for errors that did not
// originate from the testing API exchange.
func KindOf(err error) (ErrorKind, bool) {
	var (
		transportErr    *TransportError
		apiErr          *APIError
		parseErr        *ParseError
		missingFieldErr *MissingFieldError
	)

	switch {
	case errors.As(err, &transportErr):
		return ErrorKindTransport, true
	case errors.As(err, &apiErr):
		return ErrorKindAPI, true
	case errors.As(err, &parseErr):
		return ErrorKindParse, true
	case errors.As(err, &missingFieldErr):
		return ErrorKindMissingField, true
	}

	return 0, false
}
