package core

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"
)

const (
	testAppKey      = "app-key"
	testAppSecret   = "app-secret"
	testAccessToken = "access-token"
)

type recordingTransport struct {
	mu       sync.Mutex
	requests []TransportRequest
	response TransportResponse
	err      error
	gate     chan struct{}
}

func newRecordingTransport() *recordingTransport {
	return &recordingTransport{
		response: TransportResponse{StatusCode: http.StatusOK, Body: []byte(`{"Success":true}`)},
	}
}

func (r *recordingTransport) Kind() string { return "recording" }

func (r *recordingTransport) Do(ctx context.Context, req TransportRequest) (TransportResponse, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	gate := r.gate
	res, err := r.response, r.err
	r.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return TransportResponse{}, ctx.Err()
		}
	}
	return res, err
}

func (r *recordingTransport) last(t *testing.T) TransportRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		t.Fatalf("expected at least one transport request")
	}
	return r.requests[len(r.requests)-1]
}

func (r *recordingTransport) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

type stubLogger struct{}

func (stubLogger) Trace(string, ...any) {}
func (stubLogger) Debug(string, ...any) {}
func (stubLogger) Info(string, ...any)  {}
func (stubLogger) Warn(string, ...any)  {}
func (stubLogger) Error(string, ...any) {}
func (stubLogger) Fatal(string, ...any) {}
func (s stubLogger) WithContext(context.Context) Logger {
	return s
}

type stubLoggerProvider struct {
	logger Logger
}

func (s stubLoggerProvider) GetLogger(string) Logger {
	return s.logger
}

type mapRawLoader struct {
	values map[string]any
}

func (l mapRawLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.values))
	for key, value := range l.values {
		out[key] = value
	}
	return out, nil
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *recordingTransport) {
	t.Helper()
	transport := newRecordingTransport()
	base := []Option{WithTransport(transport), WithLogger(stubLogger{})}
	client, err := NewClient(Config{
		ApplicationKey:    testAppKey,
		ApplicationSecret: testAppSecret,
	}, append(base, opts...)...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, transport
}

func awaitCall(t *testing.T, start func(done Completion) error) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := Await(ctx, start)
	if err != nil {
		t.Fatalf("await call: %v", err)
	}
	return res
}

func bodyParams(t *testing.T, req TransportRequest) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(req.Body, &out); err != nil {
		t.Fatalf("decode request body %q: %v", string(req.Body), err)
	}
	return out
}

func assertStringMap(t *testing.T, got map[string]string, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d params %#v, got %d %#v", len(want), want, len(got), got)
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("expected %s=%q, got %q (all: %#v)", key, value, got[key], got)
		}
	}
}

func assertAnyMap(t *testing.T, got map[string]any, want map[string]any) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d params %#v, got %d %#v", len(want), want, len(got), got)
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("expected %s=%#v, got %#v (all: %#v)", key, value, got[key], got)
		}
	}
}

func noopCompletion(Result, error) {}
