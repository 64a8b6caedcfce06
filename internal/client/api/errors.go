package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// completed or the response body was not the documented shape.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401 responses. During session restore this
	// triggers a logout; elsewhere it is handled like any other rejection.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is an application-level rejection: the server answered with a
// non-2xx status. Message carries the server-provided explanation when the
// body contained one.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match expired-session
// rejections without callers inspecting status codes.
func (e *RequestError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// ErrorMessage extracts a user-facing message from a request error: the
// server message for application rejections, a generic fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
