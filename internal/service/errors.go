package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEndpointNotFound means the webhook token matched no endpoint.
	ErrEndpointNotFound = errors.New("webhook endpoint not found")

	// ErrInvalidPayload means the top-level payload was neither a JSON object
	// nor an array of objects.
	ErrInvalidPayload = errors.New("invalid JSON payload")

	// ErrInvalidMapping means a saved field mapping was not a JSON object of
	// field/path string pairs.
	ErrInvalidMapping = errors.New("field mapping must be a JSON object of string pairs")

	// ErrLeadNotFound means the lead id matched no record.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrCampaignNotFound means the campaign id matched no record.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// DomainWriteError wraps a store rejection of an entity write (constraint or
// integrity violation). A batch hitting one is rolled back in full.
type DomainWriteError struct {
	Err error
}

func (e *DomainWriteError) Error() string {
	return fmt.Sprintf("domain write rejected: %v", e.Err)
}

func (e *DomainWriteError) Unwrap() error {
	return e.Err
}
