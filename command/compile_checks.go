package command

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-dwolla/core"
)

var (
	_ gocmd.Commander[SendMessage]                = (*SendCommand)(nil)
	_ gocmd.Commander[RefundMessage]              = (*RefundCommand)(nil)
	_ gocmd.Commander[ScheduleMessage]            = (*ScheduleCommand)(nil)
	_ gocmd.Commander[EditScheduledMessage]       = (*EditScheduledCommand)(nil)
	_ gocmd.Commander[DeleteScheduledByIDMessage] = (*DeleteScheduledByIDCommand)(nil)
	_ gocmd.Commander[DeleteAllScheduledMessage]  = (*DeleteAllScheduledCommand)(nil)

	_ MutatingClient = (*core.Client)(nil)
)
