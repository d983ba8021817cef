package query

import (
	"strings"

	"github.com/goliatone/go-dwolla/core"
)

const (
	TypeTransactionByID   = "dwolla.query.transactions.get"
	TypeTransactions      = "dwolla.query.transactions.list"
	TypeTransactionsByApp = "dwolla.query.transactions.list_by_app"
	TypeTransactionsStats = "dwolla.query.transactions.stats"
	TypeScheduled         = "dwolla.query.scheduled.list"
	TypeScheduledByID     = "dwolla.query.scheduled.get"
	TypeContacts          = "dwolla.query.contacts.list"
	TypeNearbyContacts    = "dwolla.query.contacts.nearby"
)

type TransactionByIDMessage struct {
	ID string
}

func (TransactionByIDMessage) Type() string { return TypeTransactionByID }

func (m TransactionByIDMessage) Validate() error {
	return requireString("id", m.ID)
}

type TransactionsMessage struct {
	Options core.ListOptions
}

func (TransactionsMessage) Type() string { return TypeTransactions }

func (m TransactionsMessage) Validate() error {
	return validatePage(m.Options.Limit, m.Options.Skip)
}

type TransactionsByAppMessage struct {
	Options core.ListOptions
}

func (TransactionsByAppMessage) Type() string { return TypeTransactionsByApp }

func (m TransactionsByAppMessage) Validate() error {
	return validatePage(m.Options.Limit, m.Options.Skip)
}

type TransactionsStatsMessage struct {
	Options core.StatsOptions
}

func (TransactionsStatsMessage) Type() string { return TypeTransactionsStats }

func (TransactionsStatsMessage) Validate() error { return nil }

type ScheduledMessage struct {
	Options core.ScheduledListOptions
}

func (ScheduledMessage) Type() string { return TypeScheduled }

func (m ScheduledMessage) Validate() error {
	return validatePage(m.Options.Limit, m.Options.Skip)
}

type ScheduledByIDMessage struct {
	ID string
}

func (ScheduledByIDMessage) Type() string { return TypeScheduledByID }

func (m ScheduledByIDMessage) Validate() error {
	return requireString("id", m.ID)
}

type ContactsMessage struct {
	Options core.ContactsOptions
}

func (ContactsMessage) Type() string { return TypeContacts }

func (m ContactsMessage) Validate() error {
	return validatePage(m.Options.Limit, 0)
}

type NearbyContactsMessage struct {
	Input core.NearbyInput
}

func (NearbyContactsMessage) Type() string { return TypeNearbyContacts }

func (m NearbyContactsMessage) Validate() error {
	if err := requireString("latitude", m.Input.Latitude); err != nil {
		return err
	}
	if err := requireString("longitude", m.Input.Longitude); err != nil {
		return err
	}
	return validatePage(m.Input.Limit, 0)
}

func requireString(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return queryValidationError(field, field+" is required")
	}
	return nil
}

func validatePage(limit int, skip int) error {
	if limit < 0 {
		return queryValidationError("limit", "limit must be >= 0")
	}
	if skip < 0 {
		return queryValidationError("skip", "skip must be >= 0")
	}
	return nil
}
