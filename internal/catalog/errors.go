package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by GetProduct when the upstream answers 404.
// Callers render a not-found view instead of treating it as a failure.
var ErrNotFound = errors.New("catalog: product not found")

// NetworkError wraps a transport-level failure (DNS, connection, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx, non-404 response from the products API.
type UpstreamError struct {
	Op     string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog: %s: upstream returned status %d", e.Op, e.Status)
}

// DecodeError wraps a malformed or unexpected JSON body.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("catalog: %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
