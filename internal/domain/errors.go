package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidReading is returned when a reading violates the weather service
// contract, e.g. a NaN or infinite temperature. It is fatal to the request
// and is never silently swallowed.
var ErrInvalidReading = errors.New("invalid weather reading")

// FetchError reports a failed weather lookup: network failure, provider
// error, unknown city or bad API key. Fetches are single-shot and never
// retried.
type FetchError struct {
	Query string // the location query that failed
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("weather fetch for %q failed: %v", e.Query, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
