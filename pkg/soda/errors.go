package soda

import "fmt"

// TransportError reports a network-level failure or a non-2xx response while
// fetching a page. StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("soda: unexpected status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("soda: fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError reports input that does not match the expected shape: a
// malformed floating timestamp, or a page body that is not a JSON array.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("soda: %s: %v", e.Reason, e.Err)
	}
	return "soda: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }
