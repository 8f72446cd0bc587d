package connector

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/forgo/rango/api"
)

// Sentinel errors classifying every failure Execute can return.
// Use errors.Is() to check error classes in calling code.
var (
	// ErrCommunication indicates a transport-level failure: connection
	// refused, DNS failure, I/O error, TLS failure.
	ErrCommunication = errors.New("communication failed")

	// ErrTimeout indicates the request did not complete within the
	// configured deadline. Kept distinct from ErrCommunication so callers
	// can apply a different retry policy.
	ErrTimeout = errors.New("request timed out")

	// ErrSerialization indicates the request body could not be encoded.
	ErrSerialization = errors.New("request serialization failed")

	// ErrDeserialization indicates the response body could not be decoded
	// as expected.
	ErrDeserialization = errors.New("response deserialization failed")

	// ErrNotAuthenticated indicates the request requires (re-)authentication:
	// either JWT authentication is configured but no token is held, or the
	// server answered with a 401 envelope.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidURL indicates a datasource URL that could not be parsed.
	ErrInvalidURL = errors.New("invalid URL")
)

// apiError is embedded under an alias so the promoted Error() method is
// not shadowed by a field named Error.
type apiError = api.Error

// MethodError reports that the server understood the request but answered
// with an error envelope. This is the dominant expected-failure path for
// conditions like "document not found" or "duplicate name". The envelope
// status is authoritative even when the transport status was 2xx.
type MethodError struct {
	apiError
}

// Is makes a 401 envelope match ErrNotAuthenticated, so callers can
// recognize the unauthorized condition without string matching.
func (e *MethodError) Is(target error) bool {
	return target == ErrNotAuthenticated && e.StatusCode == http.StatusUnauthorized
}

// classifyTransport wraps a transport dispatch failure as ErrTimeout or
// ErrCommunication.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrCommunication, err)
}
