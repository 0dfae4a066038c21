package domain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// ToNumberKey is the dynamic-variables key holding the destination number.
const ToNumberKey = "to_number"

var validate = validator.New()

// CallRequest is an inbound request to place an outbound phone call.
// It lives for a single HTTP request.
type CallRequest struct {
	FromNumber string `json:"from_number" validate:"required"`
	AgentID    string `json:"agent_id"    validate:"required"`

	// DynamicVariables is forwarded to the provider unmodified. Never nil
	// after parsing.
	DynamicVariables map[string]any `json:"retell_llm_dynamic_variables"`

	// ToNumber is extracted from DynamicVariables[ToNumberKey].
	ToNumber string `json:"-" validate:"required"`
}

// ParseCallRequest reads a JSON call request from body and validates it.
//
// It returns an error wrapping ErrBadRequest when the body is absent, is not
// a JSON object, is an empty object, or has top-level fields of the wrong
// type. It returns an error wrapping ErrIncompleteParameters when any of
// from_number, agent_id or dynamic_variables.to_number is missing or empty.
func ParseCallRequest(body io.Reader) (*CallRequest, error) {
	if body == nil {
		return nil, ErrBadRequest
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	// Covers both a literal null and an empty object.
	if len(fields) == 0 {
		return nil, ErrBadRequest
	}

	var req CallRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	if req.DynamicVariables == nil {
		req.DynamicVariables = map[string]any{}
	}
	// A non-string to_number is treated the same as a missing one.
	if toNumber, ok := req.DynamicVariables[ToNumberKey].(string); ok {
		req.ToNumber = toNumber
	}

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteParameters, err)
	}

	return &req, nil
}
