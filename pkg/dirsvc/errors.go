package dirsvc

import (
	"errors"
	"fmt"
)

// NetworkError represents a transport-level failure: a connection error or
// a non-success HTTP status from the directory API. Error response bodies
// are never interpreted as data.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}

	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError represents a payload that could not be interpreted as the
// expected directory document structure. The server was reachable; the
// response was nonsensical.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing directory document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingIdentityError indicates a record without a usable id field.
// Identity is load-bearing for per-id detail fetches, so construction of an
// object from such a record fails rather than degrading to an absent value.
type MissingIdentityError struct {
	Element string
}

// Error implements the error interface.
func (e *MissingIdentityError) Error() string {
	return fmt.Sprintf("%s record has no usable id field", e.Element)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIEndpointRequired  = errors.New("API endpoint is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrMalformedDocument    = errors.New("document contains no elements")
	ErrDetailRecordMissing  = errors.New("detail payload does not contain the expected record")
	ErrCacheKeyNotFound     = errors.New("key not found")
	ErrCacheEntryExpired    = errors.New("entry expired")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
)

// IsNetworkError checks if the error is a transport failure.
func IsNetworkError(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsParseError checks if the error is a document parse failure.
func IsParseError(err error) bool {
	parseErr := &ParseError{}

	return errors.As(err, &parseErr)
}

// IsMissingIdentity checks if the error is a missing record identity.
func IsMissingIdentity(err error) bool {
	idErr := &MissingIdentityError{}

	return errors.As(err, &idErr)
}
