package gocommand

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	dwolla "github.com/goliatone/go-dwolla"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return fmt.Errorf("gocommand: message must implement Type() string")
	}
	if strings.TrimSpace(m.Type()) == "" {
		return fmt.Errorf("gocommand: message type is required")
	}
	return nil
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Registry() *command.Registry {
	if a == nil {
		return nil
	}
	return a.registry
}

func (a *RegistryAdapter) Register(handler any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(handler)
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.Initialize()
}

// Binding holds the dispatcher subscriptions of one facade.
type Binding struct {
	mu            sync.Mutex
	subscriptions []commanddispatcher.Subscription
}

// Bind subscribes every command and query of facade to the go-command
// dispatcher. When adapter is not nil the handlers are also registered
// with its registry.
func Bind(adapter *RegistryAdapter, facade *dwolla.Facade, runnerOpts ...runner.Option) (*Binding, error) {
	if facade == nil {
		return nil, fmt.Errorf("gocommand: facade is required")
	}
	commands := facade.Commands()
	queries := facade.Queries()

	binding := &Binding{}
	binding.add(
		commanddispatcher.SubscribeCommand(commands.Send, runnerOpts...),
		commanddispatcher.SubscribeCommand(commands.Refund, runnerOpts...),
		commanddispatcher.SubscribeCommand(commands.Schedule, runnerOpts...),
		commanddispatcher.SubscribeCommand(commands.EditScheduled, runnerOpts...),
		commanddispatcher.SubscribeCommand(commands.DeleteScheduledByID, runnerOpts...),
		commanddispatcher.SubscribeCommand(commands.DeleteAllScheduled, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.TransactionByID, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.Transactions, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.TransactionsByApp, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.TransactionsStats, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.Scheduled, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.ScheduledByID, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.Contacts, runnerOpts...),
		commanddispatcher.SubscribeQuery(queries.NearbyContacts, runnerOpts...),
	)

	if adapter == nil {
		return binding, nil
	}
	handlers := []any{
		commands.Send, commands.Refund, commands.Schedule,
		commands.EditScheduled, commands.DeleteScheduledByID, commands.DeleteAllScheduled,
		queries.TransactionByID, queries.Transactions, queries.TransactionsByApp, queries.TransactionsStats,
		queries.Scheduled, queries.ScheduledByID, queries.Contacts, queries.NearbyContacts,
	}
	for _, handler := range handlers {
		if err := adapter.Register(handler); err != nil {
			binding.Unsubscribe()
			return nil, err
		}
	}
	return binding, nil
}

func (b *Binding) add(subscriptions ...commanddispatcher.Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, subscription := range subscriptions {
		if subscription != nil {
			b.subscriptions = append(b.subscriptions, subscription)
		}
	}
}

// Unsubscribe removes every subscription. It is safe to call twice.
func (b *Binding) Unsubscribe() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, subscription := range b.subscriptions {
		subscription.Unsubscribe()
	}
	b.subscriptions = nil
}

func (b *Binding) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscriptions)
}

func Dispatch[T any](ctx context.Context, msg T) error {
	return commanddispatcher.Dispatch(ctx, msg)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	return commanddispatcher.Query[T, R](ctx, msg)
}
