package birates

import (
	"errors"
	"fmt"

	"github.com/robotomize/birates/httputil"
)

var (
	// ErrRequestFailed matches every *RequestFailedError
	ErrRequestFailed = httputil.ErrStatusCode
	// ErrDeserialization matches every *DeserializationError
	ErrDeserialization = errors.New("response body can not be deserialized")
	// ErrInvalidArgument is returned before any request is made
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCancelled is returned when the context is done while a request is in flight
	ErrCancelled = errors.New("request cancelled")
)

// RequestFailedError is returned for a response with a status code outside 2xx. It carries the
// status code and the raw body, the client never retries
type RequestFailedError = httputil.StatusError

// DeserializationError wraps the decoder error of a body that is not valid JSON
// or does not have the expected shape
type DeserializationError struct {
	Endpoint string
	Err      error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserialize %s response: %v", e.Endpoint, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// cancelledError matches both ErrCancelled and the context error it unwraps to
type cancelledError struct {
	cause error
}

func (e *cancelledError) Error() string {
	return fmt.Sprintf("%v: %v", ErrCancelled, e.cause)
}

func (e *cancelledError) Unwrap() error {
	return e.cause
}

func (e *cancelledError) Is(target error) bool {
	return target == ErrCancelled
}
