package service

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is matched by every catalog failure. Callers only pick a
// fallback message; the wrapped cause is for logs.
var ErrFetchFailed = errors.New("fetch failed")

// FailureKind classifies a fetch failure for logging
type FailureKind string

const (
	FailureNetwork FailureKind = "network"
	FailureStatus  FailureKind = "status"
	FailureDecode  FailureKind = "decode"
)

// FetchError describes one failed catalog call
type FetchError struct {
	Op     string
	Kind   FailureKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == FailureStatus {
		return fmt.Sprintf("%s: %s: upstream returned status %d: %v", e.Op, ErrFetchFailed, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s): %v", e.Op, ErrFetchFailed, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
