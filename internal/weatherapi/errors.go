package weatherapi

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is matched by every error this package returns.
// Callers are not expected to tell network, auth or rate-limit failures apart.
var ErrFetchFailed = errors.New("failed to fetch weather data")

// Reason is diagnostic detail about a failed fetch
type Reason string

const (
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
)

// FetchError describes a failed API call
type FetchError struct {
	Op     string // "forecast" or "search"
	Reason Reason
	Status int // HTTP status when Reason is ReasonStatus
	Err    error
}

func (e *FetchError) Error() string {
	if e.Reason == ReasonStatus {
		return fmt.Sprintf("%s: API returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetchFailed) true for every FetchError
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
