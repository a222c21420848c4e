package domain

import "fmt"

// ValidationError reports a malformed input field. It maps to a client
// error at the API layer and never aborts other requests.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for feature %q: %s", e.Field, e.Reason)
}

// MissingFieldError reports a required feature absent from the input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required feature: %s", e.Field)
}

// TransportError reports that the call to the inference endpoint could
// not complete (connection refused, DNS failure, timeout). The
// underlying cause is kept for diagnostics.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("inference endpoint unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteRejectionError reports a non-2xx response from the inference
// endpoint. Status and body are kept so auth failures and malformed
// requests can be diagnosed from the gateway's own error output.
type RemoteRejectionError struct {
	StatusCode int
	Body       string
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("inference endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// ParseError reports a 2xx response whose body was not in the expected
// prediction envelope shape.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected inference response: %s", e.Reason)
}
