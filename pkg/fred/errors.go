package fred

import "fmt"

// UpstreamError reports a non-2xx response from the FRED API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("FRED API returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a response body that could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode FRED API response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
