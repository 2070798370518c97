package service

import "fmt"

// RemoteError is returned when a remote API answers with a non-success status.
type RemoteError struct {
	// Op names the failed operation, e.g. "read page".
	Op         string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("failed to %s: %d - %s", e.Op, e.StatusCode, e.Body)
}
