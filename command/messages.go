package command

import (
	"strings"

	"github.com/goliatone/go-dwolla/core"
)

const (
	TypeSend                = "dwolla.command.transactions.send"
	TypeRefund              = "dwolla.command.transactions.refund"
	TypeSchedule            = "dwolla.command.scheduled.create"
	TypeEditScheduled       = "dwolla.command.scheduled.edit"
	TypeDeleteScheduledByID = "dwolla.command.scheduled.delete"
	TypeDeleteAllScheduled  = "dwolla.command.scheduled.delete_all"
)

type SendMessage struct {
	Input core.SendInput
}

func (SendMessage) Type() string { return TypeSend }

func (m SendMessage) Validate() error {
	if err := requireString("pin", m.Input.PIN); err != nil {
		return err
	}
	if err := requireString("destinationId", m.Input.DestinationID); err != nil {
		return err
	}
	if m.Input.Amount.IsZero() {
		return commandValidationError("amount", "amount is required")
	}
	return nil
}

type RefundMessage struct {
	Input core.RefundInput
}

func (RefundMessage) Type() string { return TypeRefund }

func (m RefundMessage) Validate() error {
	if err := requireString("pin", m.Input.PIN); err != nil {
		return err
	}
	if err := requireString("transactionId", m.Input.TransactionID); err != nil {
		return err
	}
	if err := requireString("fundsSource", m.Input.FundsSource); err != nil {
		return err
	}
	if m.Input.Amount.IsZero() {
		return commandValidationError("amount", "amount is required")
	}
	return nil
}

type ScheduleMessage struct {
	Input core.ScheduleInput
}

func (ScheduleMessage) Type() string { return TypeSchedule }

func (m ScheduleMessage) Validate() error {
	if err := requireString("pin", m.Input.PIN); err != nil {
		return err
	}
	if err := requireString("destinationId", m.Input.DestinationID); err != nil {
		return err
	}
	if m.Input.Amount.IsZero() {
		return commandValidationError("amount", "amount is required")
	}
	if err := requireString("scheduleDate", m.Input.ScheduleDate); err != nil {
		return err
	}
	return requireString("fundsSource", m.Input.FundsSource)
}

type EditScheduledMessage struct {
	Input core.EditScheduledInput
}

func (EditScheduledMessage) Type() string { return TypeEditScheduled }

func (m EditScheduledMessage) Validate() error {
	if err := requireString("id", m.Input.ID); err != nil {
		return err
	}
	return requireString("pin", m.Input.PIN)
}

type DeleteScheduledByIDMessage struct {
	ID  string
	PIN string
}

func (DeleteScheduledByIDMessage) Type() string { return TypeDeleteScheduledByID }

func (m DeleteScheduledByIDMessage) Validate() error {
	if err := requireString("id", m.ID); err != nil {
		return err
	}
	return requireString("pin", m.PIN)
}

type DeleteAllScheduledMessage struct {
	PIN string
}

func (DeleteAllScheduledMessage) Type() string { return TypeDeleteAllScheduled }

func (m DeleteAllScheduledMessage) Validate() error {
	return requireString("pin", m.PIN)
}

func requireString(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return commandValidationError(field, field+" is required")
	}
	return nil
}
