package dwolla

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	gocmd "github.com/goliatone/go-command"
	dwollacommand "github.com/goliatone/go-dwolla/command"
	dwollaquery "github.com/goliatone/go-dwolla/query"
	"github.com/shopspring/decimal"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

type fakeRemote struct {
	mu       sync.Mutex
	requests []capturedRequest
	server   *httptest.Server
}

func newFakeRemote(t *testing.T, status int, body string) *fakeRemote {
	t.Helper()
	remote := &fakeRemote{}
	remote.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured := capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  map[string]string{},
		}
		for key := range r.URL.Query() {
			captured.Query[key] = r.URL.Query().Get(key)
		}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			captured.Body = map[string]any{}
			if err := json.Unmarshal(raw, &captured.Body); err != nil {
				t.Errorf("decode request body: %v", err)
			}
		}
		remote.mu.Lock()
		remote.requests = append(remote.requests, captured)
		remote.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Trace-Id", "trace-1")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(remote.server.Close)
	return remote
}

func (r *fakeRemote) last(t *testing.T) capturedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		t.Fatalf("expected the remote to receive a request")
	}
	return r.requests[len(r.requests)-1]
}

func newRemoteClient(t *testing.T, remote *fakeRemote, kind string) *Client {
	t.Helper()
	client, err := New(Config{
		BaseURL:           remote.server.URL + "/oauth/rest",
		ApplicationKey:    "app-key",
		ApplicationSecret: "app-secret",
		Transport:         kind,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNew_SendRoundTripOverEveryTransport(t *testing.T) {
	for _, kind := range []string{"rest", "fastshot"} {
		t.Run(kind, func(t *testing.T) {
			remote := newFakeRemote(t, http.StatusOK, `{"Success":true,"Message":"Success","Response":9876}`)
			client := newRemoteClient(t, remote, kind)
			client.SetAccessToken("user-token")

			result, err := Await(context.Background(), func(done Completion) error {
				return client.Send(context.Background(), SendInput{
					PIN:           "1234",
					DestinationID: "812-111-1111",
					Amount:        decimal.RequireFromString("2.5"),
					Options:       SendOptions{Notes: "lunch"},
				}, done)
			})
			if err != nil {
				t.Fatalf("send: %v", err)
			}
			if result.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", result.StatusCode)
			}
			if result.Headers["X-Trace-Id"] != "trace-1" {
				t.Fatalf("expected response headers to pass through, got %#v", result.Headers)
			}

			got := remote.last(t)
			if got.Method != http.MethodPost || got.Path != "/oauth/rest/transactions/send" {
				t.Fatalf("unexpected request %s %s", got.Method, got.Path)
			}
			want := map[string]any{
				"oauth_token":   "user-token",
				"pin":           "1234",
				"destinationId": "812-111-1111",
				"amount":        "2.50",
				"notes":         "lunch",
			}
			if len(got.Body) != len(want) {
				t.Fatalf("expected body %#v, got %#v", want, got.Body)
			}
			for key, value := range want {
				if got.Body[key] != value {
					t.Fatalf("expected %s=%v, got %v", key, value, got.Body[key])
				}
			}
		})
	}
}

func TestNew_RemoteErrorStatusReachesCompletion(t *testing.T) {
	remote := newFakeRemote(t, http.StatusUnauthorized, `{"Success":false,"Message":"Invalid access token."}`)
	client := newRemoteClient(t, remote, "")
	client.SetAccessToken("expired")

	var calls int
	var mu sync.Mutex
	finished := make(chan Result, 1)
	err := client.TransactionByID(context.Background(), "42", func(result Result, err error) {
		mu.Lock()
		calls++
		mu.Unlock()
		if err != nil {
			t.Errorf("expected no transport error, got %v", err)
		}
		finished <- result
	})
	if err != nil {
		t.Fatalf("transaction by id: %v", err)
	}
	result := <-finished
	if result.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected remote status to pass through, got %d", result.StatusCode)
	}
	if got := remote.last(t); got.Query["oauth_token"] != "expired" || got.Path != "/oauth/rest/transactions/42" {
		t.Fatalf("unexpected request %#v", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected one completion, got %d", calls)
	}
}

func TestNew_ErrorStatusPassesThroughEveryTransport(t *testing.T) {
	for _, kind := range []string{"rest", "fastshot"} {
		for _, status := range []int{http.StatusUnauthorized, http.StatusInternalServerError} {
			remote := newFakeRemote(t, status, `{"Success":false,"Message":"Invalid access token."}`)
			client := newRemoteClient(t, remote, kind)
			client.SetAccessToken("expired")

			result, err := Await(context.Background(), func(done Completion) error {
				return client.Transactions(context.Background(), ListOptions{}, done)
			})
			if err != nil {
				t.Fatalf("%s/%d: expected no transport error, got %v", kind, status, err)
			}
			if result.StatusCode != status {
				t.Fatalf("%s: expected status %d, got %d", kind, status, result.StatusCode)
			}
			if result.Headers["X-Trace-Id"] != "trace-1" {
				t.Fatalf("%s/%d: expected response headers, got %#v", kind, status, result.Headers)
			}
			var envelope struct {
				Success bool
				Message string
			}
			if err := result.DecodeJSON(&envelope); err != nil {
				t.Fatalf("%s/%d: decode body: %v", kind, status, err)
			}
			if envelope.Success || envelope.Message != "Invalid access token." {
				t.Fatalf("%s/%d: unexpected body %#v", kind, status, envelope)
			}
		}
	}
}

func TestNew_ValidationFailsWithoutContactingRemote(t *testing.T) {
	remote := newFakeRemote(t, http.StatusOK, `{}`)
	client := newRemoteClient(t, remote, "rest")

	err := client.Transactions(context.Background(), ListOptions{}, func(Result, error) {
		t.Errorf("completion must not run for a rejected call")
	})
	if !IsMissingCredential(err) {
		t.Fatalf("expected missing credential, got %v", err)
	}
	if err := client.Transactions(context.Background(), ListOptions{}, nil); !IsMissingCallback(err) {
		t.Fatalf("expected missing callback, got %v", err)
	}
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if len(remote.requests) != 0 {
		t.Fatalf("expected no remote traffic, got %d", len(remote.requests))
	}
}

func TestNew_UnknownTransportIsRejected(t *testing.T) {
	_, err := New(Config{ApplicationKey: "k", ApplicationSecret: "s", Transport: "carrier-pigeon"})
	if err == nil {
		t.Fatalf("expected unknown transport error")
	}
}

func TestNew_MissingApplicationCredentials(t *testing.T) {
	_, err := New(Config{ApplicationKey: "k"})
	if !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestFacade_CommandsAndQueriesReachRemote(t *testing.T) {
	remote := newFakeRemote(t, http.StatusOK, `{"Success":true,"Message":"Success","Response":[]}`)
	client := newRemoteClient(t, remote, "rest")
	client.SetAccessToken("user-token")

	facade, err := NewFacade(client)
	if err != nil {
		t.Fatalf("new facade: %v", err)
	}

	collector := gocmd.NewResult[Result]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	if err := facade.Commands().DeleteScheduledByID.Execute(ctx, dwollacommand.DeleteScheduledByIDMessage{
		ID:  "sch 1",
		PIN: "1234",
	}); err != nil {
		t.Fatalf("delete scheduled: %v", err)
	}
	if _, ok := collector.Load(); !ok {
		t.Fatalf("expected command result to be stored")
	}
	got := remote.last(t)
	if got.Method != http.MethodDelete || got.Path != "/oauth/rest/transactions/scheduled/sch 1" {
		t.Fatalf("unexpected delete request %s %s", got.Method, got.Path)
	}
	if got.Body["pin"] != "1234" || got.Body["oauth_token"] != "user-token" {
		t.Fatalf("unexpected delete body %#v", got.Body)
	}

	if _, err := facade.Queries().TransactionsByApp.Query(context.Background(), dwollaquery.TransactionsByAppMessage{}); err != nil {
		t.Fatalf("transactions by app: %v", err)
	}
	got = remote.last(t)
	if got.Query["client_id"] != "app-key" || got.Query["client_secret"] != "app-secret" {
		t.Fatalf("expected application credentials, got %#v", got.Query)
	}
	if _, ok := got.Query["oauth_token"]; ok {
		t.Fatalf("application listing must not carry a token")
	}
}

func TestNewFacade_RequiresClient(t *testing.T) {
	if _, err := NewFacade(nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
	var facade *Facade
	if facade.Commands().Send != nil || facade.Client() != nil {
		t.Fatalf("expected zero values from nil facade")
	}
}
