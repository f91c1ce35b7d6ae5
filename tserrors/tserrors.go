// Package tserrors defines the error taxonomy shared by every layer of the
// client: validation, transport, the PlainBuffer and SimpleRowMatrix codecs,
// and server-side API failures. Every error bubbles up to the caller of
// Send() unmodified; nothing here recovers automatically.
package tserrors

import "fmt"

// ValidationFailed is returned when a request fails a §6/§4.5 naming or
// sizing rule, or a request-level invariant, before anything is sent.
type ValidationFailed struct {
	Msg string
}

func (e *ValidationFailed) Error() string { return "validation failed: " + e.Msg }

// NewValidationFailed builds a ValidationFailed with a formatted message.
func NewValidationFailed(format string, args ...interface{}) error {
	return &ValidationFailed{Msg: fmt.Sprintf(format, args...)}
}

// TransportError wraps a network, TLS, or deadline failure from the HTTP
// dispatch layer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtobufDecodeError means the response body did not parse as the expected
// envelope message.
type ProtobufDecodeError struct {
	Msg string
	Err error
}

func (e *ProtobufDecodeError) Error() string {
	if e.Err != nil {
		return "protobuf decode error: " + e.Msg + ": " + e.Err.Error()
	}
	return "protobuf decode error: " + e.Msg
}
func (e *ProtobufDecodeError) Unwrap() error { return e.Err }

// PlainBufferError means the PB header/tag/checksum/UTF-8 validation failed
// while decoding (or, less commonly, while computing a predicted size).
type PlainBufferError struct {
	Msg string
}

func (e *PlainBufferError) Error() string { return "plainbuffer error: " + e.Msg }

// NewPlainBufferError builds a PlainBufferError with a formatted message.
func NewPlainBufferError(format string, args ...interface{}) error {
	return &PlainBufferError{Msg: fmt.Sprintf(format, args...)}
}

// SrmDecodeError means the SimpleRowMatrix magic/tag/checksum/type/UTF-8
// validation failed while decoding.
type SrmDecodeError struct {
	Msg string
}

func (e *SrmDecodeError) Error() string { return "simple row matrix error: " + e.Msg }

// NewSrmDecodeError builds an SrmDecodeError with a formatted message.
func NewSrmDecodeError(format string, args ...interface{}) error {
	return &SrmDecodeError{Msg: fmt.Sprintf(format, args...)}
}

// FromUtf8Error means a string field in a decoded payload was not valid
// UTF-8.
type FromUtf8Error struct {
	Field string
}

func (e *FromUtf8Error) Error() string { return "field " + e.Field + " is not valid UTF-8" }

// IoError wraps an I/O failure reading from a response buffer/cursor.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return "io error: " + e.Err.Error() }
func (e *IoError) Unwrap() error { return e.Err }

// StatusError is a non-2xx HTTP response whose body did not decode as the
// server's Error message.
type StatusError struct {
	Status     int
	BodyExcerpt string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Status, e.BodyExcerpt)
}

// ApiError is a non-2xx HTTP response whose body decoded as the server's
// Error message; Code is the server's error code enum string (e.g.
// "OTSRowOperationConflict").
type ApiError struct {
	Code    string
	Message string
}

func (e *ApiError) Error() string { return fmt.Sprintf("api error %s: %s", e.Code, e.Message) }

// IsThrottling reports whether the API error code is one of the throttling
// codes a RetryPolicy is likely to want to retry.
func (e *ApiError) IsThrottling() bool {
	switch e.Code {
	case "OTSRequestTimeout", "OTSTableNotReady", "OTSPartitionUnavailable",
		"OTSServerBusy", "OTSCapacityExceeded":
		return true
	default:
		return false
	}
}

// IsRowConflict reports whether the API error code signals an optimistic
// concurrency conflict on a single row.
func (e *ApiError) IsRowConflict() bool {
	return e.Code == "OTSRowOperationConflict"
}
