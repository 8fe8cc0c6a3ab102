package llm

import "errors"

var (
	// ErrUnavailable means the model server could not be reached.
	ErrUnavailable = errors.New("llm server unavailable")

	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the response did not contain the expected JSON.
	ErrInvalidOutput = errors.New("invalid llm output format")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
