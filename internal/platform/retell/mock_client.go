package retell

import (
	"context"
	"sync"
)

// MockClient is a test double for Client. It records every call it receives.
type MockClient struct {
	CreatePhoneCallFn func(ctx context.Context, params CreatePhoneCallParams) CallResult

	mu    sync.Mutex
	calls []CreatePhoneCallParams
}

// CreatePhoneCall records params and delegates to CreatePhoneCallFn when set.
func (m *MockClient) CreatePhoneCall(ctx context.Context, params CreatePhoneCallParams) CallResult {
	m.mu.Lock()
	m.calls = append(m.calls, params)
	m.mu.Unlock()

	if m.CreatePhoneCallFn != nil {
		return m.CreatePhoneCallFn(ctx, params)
	}
	return CallResult{Err: ErrMissingCallID}
}

// Calls returns a copy of the parameters received so far.
func (m *MockClient) Calls() []CreatePhoneCallParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CreatePhoneCallParams(nil), m.calls...)
}
