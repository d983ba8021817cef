package dwolla

import (
	"fmt"

	dwollacommand "github.com/goliatone/go-dwolla/command"
	dwollaquery "github.com/goliatone/go-dwolla/query"
)

// CommandQueryClient is everything the facade needs from a client.
type CommandQueryClient interface {
	dwollacommand.MutatingClient
	dwollaquery.TransactionReader
	dwollaquery.ScheduledReader
	dwollaquery.ContactReader
}

type Commands struct {
	Send                *dwollacommand.SendCommand
	Refund              *dwollacommand.RefundCommand
	Schedule            *dwollacommand.ScheduleCommand
	EditScheduled       *dwollacommand.EditScheduledCommand
	DeleteScheduledByID *dwollacommand.DeleteScheduledByIDCommand
	DeleteAllScheduled  *dwollacommand.DeleteAllScheduledCommand
}

type Queries struct {
	TransactionByID   *dwollaquery.TransactionByIDQuery
	Transactions      *dwollaquery.TransactionsQuery
	TransactionsByApp *dwollaquery.TransactionsByAppQuery
	TransactionsStats *dwollaquery.TransactionsStatsQuery
	Scheduled         *dwollaquery.ScheduledQuery
	ScheduledByID     *dwollaquery.ScheduledByIDQuery
	Contacts          *dwollaquery.ContactsQuery
	NearbyContacts    *dwollaquery.NearbyContactsQuery
}

type Facade struct {
	client   CommandQueryClient
	commands Commands
	queries  Queries
}

func NewFacade(client CommandQueryClient) (*Facade, error) {
	if client == nil {
		return nil, fmt.Errorf("dwolla: command/query client is required")
	}

	facade := &Facade{client: client}
	facade.commands = Commands{
		Send:                dwollacommand.NewSendCommand(client),
		Refund:              dwollacommand.NewRefundCommand(client),
		Schedule:            dwollacommand.NewScheduleCommand(client),
		EditScheduled:       dwollacommand.NewEditScheduledCommand(client),
		DeleteScheduledByID: dwollacommand.NewDeleteScheduledByIDCommand(client),
		DeleteAllScheduled:  dwollacommand.NewDeleteAllScheduledCommand(client),
	}
	facade.queries = Queries{
		TransactionByID:   dwollaquery.NewTransactionByIDQuery(client),
		Transactions:      dwollaquery.NewTransactionsQuery(client),
		TransactionsByApp: dwollaquery.NewTransactionsByAppQuery(client),
		TransactionsStats: dwollaquery.NewTransactionsStatsQuery(client),
		Scheduled:         dwollaquery.NewScheduledQuery(client),
		ScheduledByID:     dwollaquery.NewScheduledByIDQuery(client),
		Contacts:          dwollaquery.NewContactsQuery(client),
		NearbyContacts:    dwollaquery.NewNearbyContactsQuery(client),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Client() CommandQueryClient {
	if f == nil {
		return nil
	}
	return f.client
}

var _ CommandQueryClient = (*Client)(nil)
