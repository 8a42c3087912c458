package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFields is returned when a required booking field is missing or unknown.
	ErrInvalidFields = errors.New("booking: invalid fields")

	// ErrSubmitInFlight is returned when a submission is already loading or has
	// just succeeded; no request is sent.
	ErrSubmitInFlight = errors.New("booking: submission already in progress")

	// ErrEndpointRequired is returned when the submitter has no endpoint URL.
	ErrEndpointRequired = errors.New("booking: endpoint url required")
)

// ValidationError lists the form fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking: invalid fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFields
}

// RemoteError reports a non-2xx answer from the collection endpoint.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("booking: endpoint returned status %d", e.StatusCode)
}
