package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-dwolla/core"
)

var (
	_ gocmd.Querier[TransactionByIDMessage, core.Result]   = (*TransactionByIDQuery)(nil)
	_ gocmd.Querier[TransactionsMessage, core.Result]      = (*TransactionsQuery)(nil)
	_ gocmd.Querier[TransactionsByAppMessage, core.Result] = (*TransactionsByAppQuery)(nil)
	_ gocmd.Querier[TransactionsStatsMessage, core.Result] = (*TransactionsStatsQuery)(nil)
	_ gocmd.Querier[ScheduledMessage, core.Result]         = (*ScheduledQuery)(nil)
	_ gocmd.Querier[ScheduledByIDMessage, core.Result]     = (*ScheduledByIDQuery)(nil)
	_ gocmd.Querier[ContactsMessage, core.Result]          = (*ContactsQuery)(nil)
	_ gocmd.Querier[NearbyContactsMessage, core.Result]    = (*NearbyContactsQuery)(nil)

	_ TransactionReader = (*core.Client)(nil)
	_ ScheduledReader   = (*core.Client)(nil)
	_ ContactReader     = (*core.Client)(nil)
)
