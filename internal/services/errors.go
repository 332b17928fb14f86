package services

import "fmt"

// TopicRejectedError is returned when the latest user message matches none
// of the allowed keywords. No upstream call has been made.
type TopicRejectedError struct{ Message string }

func (e *TopicRejectedError) Error() string { return e.Message }

// UpstreamError carries a non-2xx response from the completion API.
type UpstreamError struct {
	StatusCode int
	Details    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Details)
}
