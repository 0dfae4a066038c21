package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/retell-relay/internal/config"
)

const (
	createPhoneCallPath = "/v2/create-phone-call"

	// maxResponseBytes caps how much of a provider response is read.
	maxResponseBytes = 1 << 20

	defaultTimeout = 30 * time.Second
)

// HTTPDoer abstracts the HTTP client used to reach Retell.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Retell AI API. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	logger     *slog.Logger
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient HTTPDoer
}

// NewClient creates a Retell client from configuration.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: Retell configuration containing API key, base URL and timeout
//   - httpClient: The HTTP client to use; nil selects a default client
//
// Returns:
//   - A ready Client, or ErrMissingAPIKey if no key is configured
func NewClient(logger *slog.Logger, cfg config.RetellConfig, httpClient HTTPDoer) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultRetellBaseURL
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		logger:     logger,
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: httpClient,
	}, nil
}

// CreatePhoneCall asks Retell to place an outbound phone call.
//
// The request is bounded by the client timeout and is never retried.
// Transport failures, non-2xx responses and responses without a call_id
// are all reported through CallResult.Err.
func (c *Client) CreatePhoneCall(ctx context.Context, params CreatePhoneCallParams) CallResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(params)
	if err != nil {
		return CallResult{Err: fmt.Errorf("failed to encode create-call request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPhoneCallPath, bytes.NewReader(payload))
	if err != nil {
		return CallResult{Err: fmt.Errorf("failed to build create-call request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "sending create-call request to Retell",
		"override_agent_id", params.OverrideAgentID,
		"dynamic_variable_count", len(params.RetellLLMDynamicVariables))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CallResult{Err: fmt.Errorf("retell request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return CallResult{Err: fmt.Errorf("failed to read retell response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CallResult{Err: &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.Status),
		}}
	}

	call, err := NewPhoneCall(body)
	if err != nil {
		return CallResult{Err: err}
	}

	c.logger.DebugContext(ctx, "retell accepted create-call request",
		"call_id", call.CallID,
		"call_status", call.CallStatus)

	return CallResult{Call: call}
}

// errorMessage extracts a human-readable message from a Retell error body.
func errorMessage(body []byte, status string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return status
}
