package googleplaces

import (
	"context"
	"errors"
	"net"
)

// GeocodeError means a postal code could not be resolved to coordinates:
// zero results, a request denied by the provider, or the provider being
// unreachable. Timeout is set when the call exceeded its deadline.
type GeocodeError struct {
	Reason  string
	Timeout bool
	Err     error
}

func (e *GeocodeError) Error() string {
	return "geocoding failed: " + e.Reason
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// SearchError means the nearby-search call failed.
type SearchError struct {
	Reason  string
	Timeout bool
	Err     error
}

func (e *SearchError) Error() string {
	return "nearby search failed: " + e.Reason
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func newGeocodeError(reason string, err error) *GeocodeError {
	return &GeocodeError{Reason: reason, Timeout: isTimeout(err), Err: err}
}

func newSearchError(reason string, err error) *SearchError {
	return &SearchError{Reason: reason, Timeout: isTimeout(err), Err: err}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
