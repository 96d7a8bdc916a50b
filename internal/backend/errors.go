package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork is returned when the request could not be completed
	ErrNetwork = errors.New("backend unreachable")
	// ErrMalformedResponse is returned when the body is not the expected JSON shape
	ErrMalformedResponse = errors.New("malformed backend response")
	// ErrUnexpectedStatus matches any *StatusError
	ErrUnexpectedStatus = errors.New("unexpected backend status")
)

// StatusError reports a non-2xx response
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s from %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Is lets errors.Is(err, ErrUnexpectedStatus) match
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
