package domain

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrNoData         = errors.New("no sleep data recorded")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidPeriod  = errors.New("unknown report period")
	ErrLLMUnavailable = errors.New("summary generation unavailable")
	ErrNoContent      = errors.New("no content available")
)

// TimeFieldError names the request field holding a malformed HH:MM time.
type TimeFieldError struct {
	Field string
	Err   error
}

func (e *TimeFieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *TimeFieldError) Unwrap() error {
	return e.Err
}
