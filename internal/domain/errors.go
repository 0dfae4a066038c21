// Package domain defines the core business entities and errors.
package domain

import "errors"

// Errors describing why a call request could not be completed.
var (
	// ErrBadRequest is returned when the request body is absent, is not valid
	// JSON, or is not a non-empty JSON object.
	ErrBadRequest = errors.New("no valid JSON body received")

	// ErrIncompleteParameters is returned when from_number, agent_id, or the
	// nested to_number is missing or empty.
	ErrIncompleteParameters = errors.New("missing from_number, agent_id, or to_number in dynamic_variables")

	// ErrUpstreamCallFailure wraps any failure reported by the voice-call provider.
	ErrUpstreamCallFailure = errors.New("upstream call failure")
)
