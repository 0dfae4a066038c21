package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/retell-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frontendOrigin = "http://localhost:3000"

func testConfig(retellURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 5001, LogLevel: "debug", ShutdownTimeoutSeconds: 2},
		CORS:   config.CORSConfig{AllowedOrigin: frontendOrigin},
		Retell: config.RetellConfig{APIKey: "key_test_123456", BaseURL: retellURL, TimeoutSeconds: 5},
	}
}

func newTestApp(t *testing.T, retellURL string) *application {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	app, err := newApplication(context.Background(), testConfig(retellURL), logger, nil)
	require.NoError(t, err)
	return app
}

// fakeRetell stands in for the Retell API and records the requests it receives.
func fakeRetell(t *testing.T, status int, body string) (*httptest.Server, func() []map[string]any) {
	t.Helper()
	var (
		mu       sync.Mutex
		received []map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		mu.Lock()
		received = append(received, payload)
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, func() []map[string]any {
		mu.Lock()
		defer mu.Unlock()
		return append([]map[string]any(nil), received...)
	}
}

func TestRouter_CreateCall(t *testing.T) {
	retellServer, received := fakeRetell(t, http.StatusCreated, `{"call_id":"call_123","call_status":"registered"}`)
	router := newTestApp(t, retellServer.URL).setupRouter()

	body := `{"from_number":"+15551234567","agent_id":"agent_abc",` +
		`"retell_llm_dynamic_variables":{"to_number":"+15559876543","name":"Alice"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/retell/call", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", frontendOrigin)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"call_id":"call_123","call_status":"registered"}`, rec.Body.String())
	assert.Equal(t, frontendOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Len(t, rec.Header().Get("X-Trace-ID"), 32)

	calls := received()
	require.Len(t, calls, 1)
	assert.Equal(t, "agent_abc", calls[0]["override_agent_id"])
	assert.Equal(t, "+15559876543", calls[0]["to_number"])
}

func TestRouter_ProviderFailure(t *testing.T) {
	retellServer, _ := fakeRetell(t, http.StatusUnauthorized, `{"message":"Invalid API key"}`)
	router := newTestApp(t, retellServer.URL).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/retell/call",
		strings.NewReader(`{"from_number":"+1","agent_id":"a","retell_llm_dynamic_variables":{"to_number":"+2"}}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error":"No se pudo procesar la llamada con Retell AI.","details":"retell API error (status 401): Invalid API key"}`,
		rec.Body.String())
}

func TestRouter_IncompleteParametersNeverReachProvider(t *testing.T) {
	retellServer, received := fakeRetell(t, http.StatusCreated, `{"call_id":"call_123"}`)
	router := newTestApp(t, retellServer.URL).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/retell/call", strings.NewReader(`{"agent_id":"agent_abc"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error":"Parámetros incompletos.","details":"Faltan 'from_number', 'agent_id', o 'to_number' (en dynamic_variables)."}`,
		rec.Body.String())
	assert.Empty(t, received())
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestApp(t, "http://127.0.0.1:1").setupRouter()

	for origin, allowed := range map[string]bool{frontendOrigin: true, "http://other.example": false} {
		req := httptest.NewRequest(http.MethodOptions, "/api/retell/call", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		}
	}
}

func TestRouter_AgentsHealthAndMetrics(t *testing.T) {
	router := newTestApp(t, "http://127.0.0.1:1").setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agents", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 4)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "relay_http_requests_total")
}

func TestNewApplication_Errors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Retell.APIKey = ""
	_, err := newApplication(context.Background(), cfg, logger, nil)
	assert.Error(t, err)

	cfg = testConfig("http://127.0.0.1:1")
	badCatalog := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(badCatalog, []byte("- name: no id\n"), 0o600))
	cfg.Agents.CatalogPath = badCatalog
	_, err = newApplication(context.Background(), cfg, logger, nil)
	assert.Error(t, err)
}

func TestInitializeApp_MissingAPIKey(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "")
	t.Setenv("RELAY_RETELL_API_KEY", "")

	app, err := initializeApp(context.Background())

	assert.Nil(t, app)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestServe_GracefulShutdown(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listener, app.setupRouter()) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
