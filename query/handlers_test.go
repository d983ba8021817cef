package query

import (
	"context"
	"net/http"
	"testing"

	"github.com/goliatone/go-dwolla/core"
	"github.com/goliatone/go-dwolla/devkit"
)

func newTestClient(t *testing.T, token string, scripts ...devkit.TransportScript) (*core.Client, *devkit.FakeTransportAdapter) {
	t.Helper()
	fake := devkit.NewFakeTransportAdapter("fake", scripts...)
	client, err := core.NewClient(core.Config{
		ApplicationKey:    "app-key",
		ApplicationSecret: "app-secret",
		AccessToken:       token,
	}, core.WithTransport(fake))
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return client, fake
}

func TestTransactionByIDQuery_QueryReturnsRawResult(t *testing.T) {
	client, fake := newTestClient(t, "token", devkit.TransportScript{
		Response: devkit.SuccessResponse(map[string]any{"Id": 42, "Amount": 10.5}),
	})

	result, err := NewTransactionByIDQuery(client).Query(context.Background(), TransactionByIDMessage{ID: "42"})
	if err != nil {
		t.Fatalf("query transaction: %v", err)
	}
	var envelope struct {
		Success  bool
		Response struct {
			ID     int `json:"Id"`
			Amount float64
		}
	}
	if err := result.DecodeJSON(&envelope); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if envelope.Response.ID != 42 {
		t.Fatalf("unexpected transaction payload: %#v", envelope)
	}

	req, _ := fake.LastRequest()
	if req.Method != http.MethodGet || req.URL != core.DefaultBaseURL+"/transactions/42" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if req.Query["oauth_token"] != "token" {
		t.Fatalf("expected token in query, got %#v", req.Query)
	}
}

func TestReadQueries_ShapeRequests(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		query map[string]string
		run   func(ctx context.Context, client *core.Client) (core.Result, error)
	}{
		{
			name:  "transactions",
			path:  "/transactions/",
			query: map[string]string{"oauth_token": "token", "limit": "10", "types": "money_sent,deposit"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewTransactionsQuery(client).Query(ctx, TransactionsMessage{Options: core.ListOptions{
					Limit: 10, Types: []string{"money_sent", "deposit"},
				}})
			},
		},
		{
			name:  "transactions by app",
			path:  "/transactions/",
			query: map[string]string{"client_id": "app-key", "client_secret": "app-secret"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewTransactionsByAppQuery(client).Query(ctx, TransactionsByAppMessage{})
			},
		},
		{
			name:  "stats",
			path:  "/transactions/stats",
			query: map[string]string{"oauth_token": "token", "startDate": "2026-01-01"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewTransactionsStatsQuery(client).Query(ctx, TransactionsStatsMessage{Options: core.StatsOptions{StartDate: "2026-01-01"}})
			},
		},
		{
			name:  "scheduled",
			path:  "/transactions/scheduled",
			query: map[string]string{"oauth_token": "token", "status": "scheduled"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewScheduledQuery(client).Query(ctx, ScheduledMessage{Options: core.ScheduledListOptions{Status: "scheduled"}})
			},
		},
		{
			name:  "scheduled by id",
			path:  "/transactions/scheduled/sch_1",
			query: map[string]string{"oauth_token": "token"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewScheduledByIDQuery(client).Query(ctx, ScheduledByIDMessage{ID: "sch_1"})
			},
		},
		{
			name:  "contacts",
			path:  "/contacts/",
			query: map[string]string{"oauth_token": "token", "search": "Ben"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewContactsQuery(client).Query(ctx, ContactsMessage{Options: core.ContactsOptions{Search: "Ben"}})
			},
		},
		{
			name:  "nearby contacts",
			path:  "/contacts/nearby",
			query: map[string]string{"client_id": "app-key", "client_secret": "app-secret", "latitude": "40.7", "longitude": "-74.0"},
			run: func(ctx context.Context, client *core.Client) (core.Result, error) {
				return NewNearbyContactsQuery(client).Query(ctx, NearbyContactsMessage{Input: core.NearbyInput{Latitude: "40.7", Longitude: "-74.0"}})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, fake := newTestClient(t, "token")
			if _, err := tt.run(context.Background(), client); err != nil {
				t.Fatalf("run %s: %v", tt.name, err)
			}
			req, ok := fake.LastRequest()
			if !ok {
				t.Fatalf("expected a dispatched request")
			}
			if req.URL != core.DefaultBaseURL+tt.path {
				t.Fatalf("unexpected url %q", req.URL)
			}
			if len(req.Query) != len(tt.query) {
				t.Fatalf("expected query %#v, got %#v", tt.query, req.Query)
			}
			for key, want := range tt.query {
				if req.Query[key] != want {
					t.Fatalf("expected %s=%q, got %q", key, want, req.Query[key])
				}
			}
		})
	}
}

func TestTransactionsByAppQuery_NeedsNoToken(t *testing.T) {
	client, fake := newTestClient(t, "")
	if _, err := NewTransactionsByAppQuery(client).Query(context.Background(), TransactionsByAppMessage{}); err != nil {
		t.Fatalf("query by app without token: %v", err)
	}
	if len(fake.Requests()) != 1 {
		t.Fatalf("expected one request")
	}

	_, err := NewTransactionsQuery(client).Query(context.Background(), TransactionsMessage{})
	if !core.IsMissingCredential(err) {
		t.Fatalf("expected missing credential for user listing, got %v", err)
	}
}

func TestScheduledByIDQuery_MissingIDFailsBeforeDispatch(t *testing.T) {
	client, fake := newTestClient(t, "token")
	_, err := NewScheduledByIDQuery(client).Query(context.Background(), ScheduledByIDMessage{})
	if !core.IsMissingArgument(err) {
		t.Fatalf("expected missing argument, got %v", err)
	}
	if len(fake.Requests()) != 0 {
		t.Fatalf("expected no dispatch")
	}
}

func TestQueryMessageValidation(t *testing.T) {
	tests := []struct {
		name    string
		msg     interface{ Validate() error }
		wantErr bool
	}{
		{name: "transaction by id valid", msg: TransactionByIDMessage{ID: "1"}},
		{name: "transaction by id blank", msg: TransactionByIDMessage{ID: " "}, wantErr: true},
		{name: "transactions negative limit", msg: TransactionsMessage{Options: core.ListOptions{Limit: -1}}, wantErr: true},
		{name: "by app negative skip", msg: TransactionsByAppMessage{Options: core.ListOptions{Skip: -1}}, wantErr: true},
		{name: "stats empty", msg: TransactionsStatsMessage{}},
		{name: "scheduled valid", msg: ScheduledMessage{}},
		{name: "scheduled by id blank", msg: ScheduledByIDMessage{}, wantErr: true},
		{name: "contacts negative limit", msg: ContactsMessage{Options: core.ContactsOptions{Limit: -5}}, wantErr: true},
		{name: "nearby missing longitude", msg: NearbyContactsMessage{Input: core.NearbyInput{Latitude: "1"}}, wantErr: true},
		{name: "nearby valid", msg: NearbyContactsMessage{Input: core.NearbyInput{Latitude: "1", Longitude: "2"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
