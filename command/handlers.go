package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-dwolla/core"
)

// MutatingClient is the subset of the client that moves money or changes
// scheduled transactions.
type MutatingClient interface {
	Send(ctx context.Context, in core.SendInput, done core.Completion) error
	Refund(ctx context.Context, in core.RefundInput, done core.Completion) error
	Schedule(ctx context.Context, in core.ScheduleInput, done core.Completion) error
	EditScheduled(ctx context.Context, in core.EditScheduledInput, done core.Completion) error
	DeleteScheduledByID(ctx context.Context, id string, pin string, done core.Completion) error
	DeleteAllScheduled(ctx context.Context, pin string, done core.Completion) error
}

type SendCommand struct {
	client MutatingClient
}

func NewSendCommand(client MutatingClient) *SendCommand {
	return &SendCommand{client: client}
}

func (c *SendCommand) Execute(ctx context.Context, msg SendMessage) error {
	if c == nil || c.client == nil {
		return commandDependencyError("command: send client is required")
	}
	return run(ctx, func(done core.Completion) error {
		return c.client.Send(ctx, msg.Input, done)
	})
}

type RefundCommand struct {
	client MutatingClient
}

func NewRefundCommand(client MutatingClient) *RefundCommand {
	return &RefundCommand{client: client}
}

func (c *RefundCommand) Execute(ctx context.Context, msg RefundMessage) error {
	if c == nil || c.client == nil {
		return commandDependencyError("command: refund client is required")
	}
	return run(ctx, func(done core.Completion) error {
		return c.client.Refund(ctx, msg.Input, done)
	})
}

type ScheduleCommand struct {
	client MutatingClient
}

func NewScheduleCommand(client MutatingClient) *ScheduleCommand {
	return &ScheduleCommand{client: client}
}

func (c *ScheduleCommand) Execute(ctx context.Context, msg ScheduleMessage) error {
	if c == nil || c.client == nil {
		return commandDependencyError("command: schedule client is required")
	}
	return run(ctx, func(done core.Completion) error {
		return c.client.Schedule(ctx, msg.Input, done)
	})
}

type EditScheduledCommand struct {
	client MutatingClient
}

func NewEditScheduledCommand(client MutatingClient) *EditScheduledCommand {
	return &EditScheduledCommand{client: client}
}

func (c *EditScheduledCommand) Execute(ctx context.Context, msg EditScheduledMessage) error {
	if c == nil || c.client == nil {
		return commandDependencyError("command: edit scheduled client is required")
	}
	return run(ctx, func(done core.Completion) error {
		return c.client.EditScheduled(ctx, msg.Input, done)
	})
}

type DeleteScheduledByIDCommand struct {
	client MutatingClient
}

func NewDeleteScheduledByIDCommand(client MutatingClient) *DeleteScheduledByIDCommand {
	return &DeleteScheduledByIDCommand{client: client}
}

func (c *DeleteScheduledByIDCommand) Execute(ctx context.Context, msg DeleteScheduledByIDMessage) error {
	if c == nil || c.client == nil {
		return commandDependencyError("command: delete scheduled client is required")
	}
	return run(ctx, func(done core.Completion) error {
		return c.client.DeleteScheduledByID(ctx, msg.ID, msg.PIN, done)
	})
}

type DeleteAllScheduledCommand struct {
	client MutatingClient
}

func NewDeleteAllScheduledCommand(client MutatingClient) *DeleteAllScheduledCommand {
	return &DeleteAllScheduledCommand{client: client}
}

func (c *DeleteAllScheduledCommand) Execute(ctx context.Context, msg DeleteAllScheduledMessage) error {
	if c == nil || c.client == nil {
		return commandDependencyError("command: delete all scheduled client is required")
	}
	return run(ctx, func(done core.Completion) error {
		return c.client.DeleteAllScheduled(ctx, msg.PIN, done)
	})
}

// run blocks on the client call and hands the raw result to any collector
// bound to ctx.
func run(ctx context.Context, start func(done core.Completion) error) error {
	out, err := core.Await(ctx, start)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
