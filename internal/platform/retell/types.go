package retell

import (
	"encoding/json"
	"fmt"
)

// CreatePhoneCallParams are the parameters of Retell's create-phone-call operation.
type CreatePhoneCallParams struct {
	FromNumber string `json:"from_number"`
	ToNumber   string `json:"to_number"`
	// OverrideAgentID selects the agent for this call only.
	OverrideAgentID           string         `json:"override_agent_id,omitempty"`
	RetellLLMDynamicVariables map[string]any `json:"retell_llm_dynamic_variables,omitempty"`
}

// PhoneCall is a call object returned by Retell.
//
// Only the fields the relay inspects are decoded. The full provider payload
// is retained and is what MarshalJSON emits, so the call is relayed verbatim.
type PhoneCall struct {
	CallID     string `json:"call_id"`
	AgentID    string `json:"agent_id,omitempty"`
	CallStatus string `json:"call_status,omitempty"`
	FromNumber string `json:"from_number,omitempty"`
	ToNumber   string `json:"to_number,omitempty"`

	raw json.RawMessage
}

// NewPhoneCall decodes a provider payload into a PhoneCall, keeping the raw bytes.
func NewPhoneCall(data []byte) (*PhoneCall, error) {
	type decoded PhoneCall

	var d decoded
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if d.CallID == "" {
		return nil, ErrMissingCallID
	}

	call := PhoneCall(d)
	call.raw = append(json.RawMessage(nil), data...)
	return &call, nil
}

// MarshalJSON emits the provider payload exactly as received.
func (c *PhoneCall) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type plain PhoneCall
	return json.Marshal((*plain)(c))
}

// CallResult is the outcome of a create-call request: either the created call
// or the failure reported while creating it.
type CallResult struct {
	Call *PhoneCall
	Err  error
}

// Failed reports whether the call could not be created.
func (r CallResult) Failed() bool {
	return r.Err != nil || r.Call == nil
}
