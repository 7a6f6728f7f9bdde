package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit is a 429 from the vendor.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrRejected is a 4xx the vendor will keep returning for the same request,
// such as a bad key or an unknown model.
type ErrRejected struct {
	Status int
	Err    error
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("llm request rejected (status %d): %v", e.Status, e.Err)
}

func (e *ErrRejected) Unwrap() error { return e.Err }

// ErrUnavailable is any other transport or vendor failure.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err == nil {
		return "llm unavailable"
	}
	return fmt.Sprintf("llm unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrOutput is an answer that is not valid JSON for the requested Format.
type ErrOutput struct {
	Body json.RawMessage
	Err  error
}

func (e *ErrOutput) Error() string {
	return fmt.Sprintf("unusable llm answer: %v", e.Err)
}

func (e *ErrOutput) Unwrap() error { return e.Err }

// ErrTruncated is an answer cut off at MaxTokens.
var ErrTruncated = errors.New("llm answer truncated at max tokens")

// fromStatus maps a vendor HTTP status to the package errors.
func fromStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status == http.StatusRequestTimeout:
		return &ErrUnavailable{Err: err}
	case status >= 400 && status < 500:
		return &ErrRejected{Status: status, Err: err}
	}
	return &ErrUnavailable{Err: err}
}
