package httpclient_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/yjkwon/todo-service/internal/platform/config"
	"github.com/yjkwon/todo-service/internal/platform/httpclient"
)

func testClientConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(t *testing.T, handler http.Handler, cfg func(*config.ClientConfig)) *httpclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clientCfg := testClientConfig(server.URL)
	if cfg != nil {
		cfg(clientCfg)
	}
	return httpclient.New(clientCfg, "todo-api", nil, slog.New(slog.DiscardHandler))
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}), nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL()+"/", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestDo_ExhaustedRetriesReturnResponse(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL()+"/", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}

	resp, err := client.Do(context.Background(), req)
	if err == nil {
		t.Fatal("Do err = nil, want error after exhausted retries")
	}
	if resp == nil {
		t.Fatal("resp = nil, want last response for error inspection")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestDo_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}), nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL()+"/", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want 1 (4xx is not retried)", got)
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), func(cfg *config.ClientConfig) {
		cfg.Retry.MaxAttempts = 1
		cfg.CircuitBreaker.MaxFailures = 2
	})

	for range 2 {
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL()+"/", http.NoBody)
		resp, err := client.Do(context.Background(), req)
		if err == nil {
			t.Fatal("Do err = nil, want error")
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
	}

	// Third call is rejected by the open breaker without touching the server.
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL()+"/", http.NoBody)
	_, err := client.Do(context.Background(), req)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Do err = %v, want ErrOpenState", err)
	}

	if client.HealthCheck(context.Background()) == nil {
		t.Error("HealthCheck = nil with open breaker, want error")
	}
}

func TestDo_InjectsContextHeaders(t *testing.T) {
	t.Parallel()

	var gotRequestID, gotCorrelationID string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotCorrelationID = r.Header.Get("X-Correlation-ID")
		w.WriteHeader(http.StatusOK)
	}), nil)

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	_ = resp.Body.Close()

	if gotRequestID != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", gotRequestID)
	}
	if gotCorrelationID != "corr-456" {
		t.Errorf("X-Correlation-ID = %q, want corr-456", gotCorrelationID)
	}
}
