package devkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/goliatone/go-dwolla/core"
)

// TransportScript is one canned outcome returned by FakeTransportAdapter.
type TransportScript struct {
	Response core.TransportResponse
	Err      error
}

// FakeTransportAdapter records every request and replies from scripts.
// Routed scripts, keyed by method and path, win over the sequential ones.
type FakeTransportAdapter struct {
	mu       sync.Mutex
	kind     string
	scripts  []TransportScript
	routes   map[string]TransportScript
	requests []core.TransportRequest
}

func NewFakeTransportAdapter(kind string, scripts ...TransportScript) *FakeTransportAdapter {
	return &FakeTransportAdapter{
		kind:    strings.TrimSpace(strings.ToLower(kind)),
		scripts: append([]TransportScript(nil), scripts...),
		routes:  map[string]TransportScript{},
	}
}

// Route answers requests matching method and URL path with script.
func (a *FakeTransportAdapter) Route(method, path string, script TransportScript) *FakeTransportAdapter {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routes[routeKey(method, path)] = script
	return a
}

func (a *FakeTransportAdapter) Kind() string {
	if a == nil {
		return ""
	}
	return a.kind
}

func (a *FakeTransportAdapter) Do(_ context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil {
		return core.TransportResponse{}, fmt.Errorf("devkit: fake transport adapter is nil")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requests = append(a.requests, cloneTransportRequest(req))
	if script, ok := a.routes[routeKey(req.Method, requestPath(req.URL))]; ok {
		return cloneTransportResponse(script.Response), script.Err
	}
	index := len(a.requests) - 1
	if index < len(a.scripts) {
		script := a.scripts[index]
		return cloneTransportResponse(script.Response), script.Err
	}
	if len(a.scripts) > 0 {
		last := a.scripts[len(a.scripts)-1]
		return cloneTransportResponse(last.Response), last.Err
	}
	return SuccessResponse(nil), nil
}

func (a *FakeTransportAdapter) Requests() []core.TransportRequest {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]core.TransportRequest, 0, len(a.requests))
	for _, item := range a.requests {
		out = append(out, cloneTransportRequest(item))
	}
	return out
}

// LastRequest returns the most recent request, or false when none was made.
func (a *FakeTransportAdapter) LastRequest() (core.TransportRequest, bool) {
	requests := a.Requests()
	if len(requests) == 0 {
		return core.TransportRequest{}, false
	}
	return requests[len(requests)-1], true
}

// SuccessResponse wraps payload in the remote API's success envelope.
func SuccessResponse(payload any) core.TransportResponse {
	return envelopeResponse(200, true, "Success", payload)
}

// FailureResponse mimics a rejected call: HTTP 200 with Success false.
func FailureResponse(message string) core.TransportResponse {
	return envelopeResponse(200, false, message, nil)
}

func envelopeResponse(status int, success bool, message string, payload any) core.TransportResponse {
	body, _ := json.Marshal(map[string]any{
		"Success":  success,
		"Message":  message,
		"Response": payload,
	})
	return core.TransportResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
		Metadata:   map[string]any{"kind": "fake"},
	}
}

// RequestParams returns the parameters a request carried, from the JSON
// body for write verbs and from the query otherwise.
func RequestParams(req core.TransportRequest) (map[string]any, error) {
	if len(req.Body) > 0 {
		out := map[string]any{}
		if err := json.Unmarshal(req.Body, &out); err != nil {
			return nil, fmt.Errorf("devkit: decode request body: %w", err)
		}
		return out, nil
	}
	out := make(map[string]any, len(req.Query))
	for key, value := range req.Query {
		out[key] = value
	}
	return out, nil
}

func routeKey(method, path string) string {
	return strings.ToUpper(strings.TrimSpace(method)) + " " + strings.TrimSpace(path)
}

func requestPath(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return parsed.Path
}

func cloneTransportRequest(in core.TransportRequest) core.TransportRequest {
	out := core.TransportRequest{
		Method:               in.Method,
		URL:                  in.URL,
		Headers:              map[string]string{},
		Query:                map[string]string{},
		Body:                 append([]byte(nil), in.Body...),
		Metadata:             map[string]any{},
		Timeout:              in.Timeout,
		MaxResponseBodyBytes: in.MaxResponseBodyBytes,
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Query {
		out.Query[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

func cloneTransportResponse(in core.TransportResponse) core.TransportResponse {
	out := core.TransportResponse{
		StatusCode: in.StatusCode,
		Headers:    map[string]string{},
		Body:       append([]byte(nil), in.Body...),
		Metadata:   map[string]any{},
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

var _ core.TransportAdapter = (*FakeTransportAdapter)(nil)
