package query

import (
	"context"

	"github.com/goliatone/go-dwolla/core"
)

type TransactionReader interface {
	TransactionByID(ctx context.Context, id string, done core.Completion) error
	Transactions(ctx context.Context, opts core.ListOptions, done core.Completion) error
	TransactionsByApp(ctx context.Context, opts core.ListOptions, done core.Completion) error
	TransactionsStats(ctx context.Context, opts core.StatsOptions, done core.Completion) error
}

type ScheduledReader interface {
	Scheduled(ctx context.Context, opts core.ScheduledListOptions, done core.Completion) error
	ScheduledByID(ctx context.Context, id string, done core.Completion) error
}

type ContactReader interface {
	Contacts(ctx context.Context, opts core.ContactsOptions, done core.Completion) error
	NearbyContacts(ctx context.Context, in core.NearbyInput, done core.Completion) error
}

type TransactionByIDQuery struct {
	reader TransactionReader
}

func NewTransactionByIDQuery(reader TransactionReader) *TransactionByIDQuery {
	return &TransactionByIDQuery{reader: reader}
}

func (q *TransactionByIDQuery) Query(ctx context.Context, msg TransactionByIDMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: transaction reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.TransactionByID(ctx, msg.ID, done)
	})
}

type TransactionsQuery struct {
	reader TransactionReader
}

func NewTransactionsQuery(reader TransactionReader) *TransactionsQuery {
	return &TransactionsQuery{reader: reader}
}

func (q *TransactionsQuery) Query(ctx context.Context, msg TransactionsMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: transaction reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.Transactions(ctx, msg.Options, done)
	})
}

type TransactionsByAppQuery struct {
	reader TransactionReader
}

func NewTransactionsByAppQuery(reader TransactionReader) *TransactionsByAppQuery {
	return &TransactionsByAppQuery{reader: reader}
}

func (q *TransactionsByAppQuery) Query(ctx context.Context, msg TransactionsByAppMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: transaction reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.TransactionsByApp(ctx, msg.Options, done)
	})
}

type TransactionsStatsQuery struct {
	reader TransactionReader
}

func NewTransactionsStatsQuery(reader TransactionReader) *TransactionsStatsQuery {
	return &TransactionsStatsQuery{reader: reader}
}

func (q *TransactionsStatsQuery) Query(ctx context.Context, msg TransactionsStatsMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: transaction reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.TransactionsStats(ctx, msg.Options, done)
	})
}

type ScheduledQuery struct {
	reader ScheduledReader
}

func NewScheduledQuery(reader ScheduledReader) *ScheduledQuery {
	return &ScheduledQuery{reader: reader}
}

func (q *ScheduledQuery) Query(ctx context.Context, msg ScheduledMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: scheduled reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.Scheduled(ctx, msg.Options, done)
	})
}

type ScheduledByIDQuery struct {
	reader ScheduledReader
}

func NewScheduledByIDQuery(reader ScheduledReader) *ScheduledByIDQuery {
	return &ScheduledByIDQuery{reader: reader}
}

func (q *ScheduledByIDQuery) Query(ctx context.Context, msg ScheduledByIDMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: scheduled reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.ScheduledByID(ctx, msg.ID, done)
	})
}

type ContactsQuery struct {
	reader ContactReader
}

func NewContactsQuery(reader ContactReader) *ContactsQuery {
	return &ContactsQuery{reader: reader}
}

func (q *ContactsQuery) Query(ctx context.Context, msg ContactsMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: contact reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.Contacts(ctx, msg.Options, done)
	})
}

type NearbyContactsQuery struct {
	reader ContactReader
}

func NewNearbyContactsQuery(reader ContactReader) *NearbyContactsQuery {
	return &NearbyContactsQuery{reader: reader}
}

func (q *NearbyContactsQuery) Query(ctx context.Context, msg NearbyContactsMessage) (core.Result, error) {
	if q == nil || q.reader == nil {
		return core.Result{}, queryDependencyError("query: contact reader is required")
	}
	return core.Await(ctx, func(done core.Completion) error {
		return q.reader.NearbyContacts(ctx, msg.Input, done)
	})
}
