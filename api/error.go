package api

import "fmt"

// Error is the error envelope reported by the server when a request was
// understood but failed at the application level. It is immutable once
// decoded.
type Error struct {
	// StatusCode is the HTTP-equivalent status the server reports in the
	// envelope, which is authoritative even when the transport status is
	// in the 2xx range.
	StatusCode int `json:"code"`

	// ErrorNum is the server's numeric error code, mapped through the
	// ErrorCode enumeration.
	ErrorNum ErrorCode `json:"errorNum"`

	// Message is the human-readable error message.
	Message string `json:"errorMessage"`
}

// NewError constructs an Error from its parts.
func NewError(statusCode int, errorNum ErrorCode, message string) *Error {
	return &Error{StatusCode: statusCode, ErrorNum: errorNum, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("error %d: %s (status %d)", int(e.ErrorNum), e.Message, e.StatusCode)
}
