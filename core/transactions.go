package core

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	transactionsPath = "/transactions/"
	statsPath        = "/transactions/stats"
	sendPath         = "/transactions/send"
	refundPath       = "/transactions/refund"
	scheduledPath    = "/transactions/scheduled"
)

// ListOptions filters transaction listings.
type ListOptions struct {
	SinceDate string
	Types     []string
	Limit     int
	Skip      int
	Extra     map[string]any
}

func (o ListOptions) params() Params {
	return NewParams(o.Extra).
		SetString("sinceDate", o.SinceDate).
		SetStrings("types", o.Types).
		SetInt("limit", o.Limit).
		SetInt("skip", o.Skip)
}

type StatsOptions struct {
	Types     []string
	StartDate string
	EndDate   string
	Extra     map[string]any
}

func (o StatsOptions) params() Params {
	return NewParams(o.Extra).
		SetStrings("types", o.Types).
		SetString("startDate", o.StartDate).
		SetString("endDate", o.EndDate)
}

type SendOptions struct {
	DestinationType   string
	FacilitatorAmount decimal.Decimal
	AssumeCosts       bool
	Notes             string
	Extra             map[string]any
}

type SendInput struct {
	PIN           string
	DestinationID string
	Amount        decimal.Decimal
	Options       SendOptions
}

type RefundOptions struct {
	Notes string
	Extra map[string]any
}

type RefundInput struct {
	PIN           string
	TransactionID string
	FundsSource   string
	Amount        decimal.Decimal
	Options       RefundOptions
}

type ScheduleOptions struct {
	DestinationType string
	Recurrence      string
	AssumeCosts     bool
	Notes           string
	Extra           map[string]any
}

type ScheduleInput struct {
	PIN           string
	DestinationID string
	Amount        decimal.Decimal
	ScheduleDate  string
	FundsSource   string
	Options       ScheduleOptions
}

type ScheduledListOptions struct {
	Status string
	Limit  int
	Skip   int
	Extra  map[string]any
}

// EditScheduledInput changes a scheduled transaction. Only ID and PIN are
// required; zero-valued fields are left untouched remotely.
type EditScheduledInput struct {
	ID           string
	PIN          string
	Amount       decimal.Decimal
	ScheduleDate string
	FundsSource  string
	Notes        string
	Extra        map[string]any
}

// TransactionByID retrieves one transaction of the token holder.
func (c *Client) TransactionByID(ctx context.Context, id string, done Completion) error {
	snapshot, err := c.userCall("transaction_by_id", done, stringArg("id", id))
	if err != nil {
		return err
	}
	params := withToken(Params{}, snapshot)
	return c.dispatcher.Get(ctx, transactionsPath+escapeID(id), params, done)
}

// Transactions lists the token holder's transactions, newest first.
func (c *Client) Transactions(ctx context.Context, opts ListOptions, done Completion) error {
	snapshot, err := c.userCall("transactions", done)
	if err != nil {
		return err
	}
	params := withToken(opts.params(), snapshot)
	return c.dispatcher.Get(ctx, transactionsPath, params, done)
}

// TransactionsByApp lists every transaction facilitated by the application.
// It authenticates with the application key and secret and needs no token.
func (c *Client) TransactionsByApp(ctx context.Context, opts ListOptions, done Completion) error {
	snapshot, err := c.appCall("transactions_by_app", done)
	if err != nil {
		return err
	}
	params := withApplication(opts.params(), snapshot)
	return c.dispatcher.Get(ctx, transactionsPath, params, done)
}

func (c *Client) TransactionsStats(ctx context.Context, opts StatsOptions, done Completion) error {
	snapshot, err := c.userCall("transactions_stats", done)
	if err != nil {
		return err
	}
	params := withToken(opts.params(), snapshot)
	return c.dispatcher.Get(ctx, statsPath, params, done)
}

// Send transfers funds from the token holder to DestinationID.
func (c *Client) Send(ctx context.Context, in SendInput, done Completion) error {
	snapshot, err := c.userCall("send", done,
		stringArg("pin", in.PIN),
		stringArg("destinationId", in.DestinationID),
		amountArg("amount", in.Amount),
	)
	if err != nil {
		return err
	}
	params := NewParams(in.Options.Extra).
		SetString("destinationType", in.Options.DestinationType).
		SetAmount("facilitatorAmount", in.Options.FacilitatorAmount).
		SetFlag("assumeCosts", in.Options.AssumeCosts).
		SetString("notes", in.Options.Notes)
	withToken(params, snapshot).
		Set("pin", in.PIN).
		Set("destinationId", in.DestinationID).
		Set("amount", FormatAmount(in.Amount))
	return c.dispatcher.Post(ctx, sendPath, params, done)
}

// Refund returns all or part of a received payment.
func (c *Client) Refund(ctx context.Context, in RefundInput, done Completion) error {
	snapshot, err := c.userCall("refund", done,
		stringArg("pin", in.PIN),
		stringArg("transactionId", in.TransactionID),
		stringArg("fundsSource", in.FundsSource),
		amountArg("amount", in.Amount),
	)
	if err != nil {
		return err
	}
	params := NewParams(in.Options.Extra).
		SetString("notes", in.Options.Notes)
	withToken(params, snapshot).
		Set("pin", in.PIN).
		Set("transactionId", in.TransactionID).
		Set("fundsSource", in.FundsSource).
		Set("amount", FormatAmount(in.Amount))
	return c.dispatcher.Post(ctx, refundPath, params, done)
}

// Schedule registers a send that the remote API executes on ScheduleDate.
func (c *Client) Schedule(ctx context.Context, in ScheduleInput, done Completion) error {
	snapshot, err := c.userCall("schedule", done,
		stringArg("pin", in.PIN),
		stringArg("destinationId", in.DestinationID),
		amountArg("amount", in.Amount),
		stringArg("scheduleDate", in.ScheduleDate),
		stringArg("fundsSource", in.FundsSource),
	)
	if err != nil {
		return err
	}
	params := NewParams(in.Options.Extra).
		SetString("destinationType", in.Options.DestinationType).
		SetString("recurrence", in.Options.Recurrence).
		SetFlag("assumeCosts", in.Options.AssumeCosts).
		SetString("notes", in.Options.Notes)
	withToken(params, snapshot).
		Set("pin", in.PIN).
		Set("destinationId", in.DestinationID).
		Set("amount", FormatAmount(in.Amount)).
		Set("scheduleDate", in.ScheduleDate).
		Set("fundsSource", in.FundsSource)
	return c.dispatcher.Post(ctx, scheduledPath, params, done)
}

func (c *Client) Scheduled(ctx context.Context, opts ScheduledListOptions, done Completion) error {
	snapshot, err := c.userCall("scheduled", done)
	if err != nil {
		return err
	}
	params := NewParams(opts.Extra).
		SetString("status", opts.Status).
		SetInt("limit", opts.Limit).
		SetInt("skip", opts.Skip)
	return c.dispatcher.Get(ctx, scheduledPath, withToken(params, snapshot), done)
}

func (c *Client) ScheduledByID(ctx context.Context, id string, done Completion) error {
	snapshot, err := c.userCall("scheduled_by_id", done, stringArg("id", id))
	if err != nil {
		return err
	}
	params := withToken(Params{}, snapshot)
	return c.dispatcher.Get(ctx, scheduledPath+"/"+escapeID(id), params, done)
}

func (c *Client) EditScheduled(ctx context.Context, in EditScheduledInput, done Completion) error {
	snapshot, err := c.userCall("edit_scheduled", done,
		stringArg("id", in.ID),
		stringArg("pin", in.PIN),
	)
	if err != nil {
		return err
	}
	params := NewParams(in.Extra).
		SetAmount("amount", in.Amount).
		SetString("scheduleDate", in.ScheduleDate).
		SetString("fundsSource", in.FundsSource).
		SetString("notes", in.Notes)
	withToken(params, snapshot).Set("pin", in.PIN)
	return c.dispatcher.Put(ctx, scheduledPath+"/"+escapeID(in.ID), params, done)
}

func (c *Client) DeleteScheduledByID(ctx context.Context, id string, pin string, done Completion) error {
	snapshot, err := c.userCall("delete_scheduled_by_id", done,
		stringArg("id", id),
		stringArg("pin", pin),
	)
	if err != nil {
		return err
	}
	params := withToken(Params{}, snapshot).Set("pin", pin)
	return c.dispatcher.Delete(ctx, scheduledPath+"/"+escapeID(id), params, done)
}

func (c *Client) DeleteAllScheduled(ctx context.Context, pin string, done Completion) error {
	snapshot, err := c.userCall("delete_all_scheduled", done, stringArg("pin", pin))
	if err != nil {
		return err
	}
	params := withToken(Params{}, snapshot).Set("pin", pin)
	return c.dispatcher.Delete(ctx, scheduledPath, params, done)
}

func escapeID(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
