package dwolla

import (
	"github.com/goliatone/go-dwolla/core"
	"github.com/goliatone/go-dwolla/transport"
)

type Config = core.Config

type Option = core.Option

type Client = core.Client

type Credentials = core.Credentials

type Completion = core.Completion
type Result = core.Result
type Params = core.Params

type ListOptions = core.ListOptions
type StatsOptions = core.StatsOptions
type SendOptions = core.SendOptions
type SendInput = core.SendInput
type RefundOptions = core.RefundOptions
type RefundInput = core.RefundInput
type ScheduleOptions = core.ScheduleOptions
type ScheduleInput = core.ScheduleInput
type ScheduledListOptions = core.ScheduledListOptions
type EditScheduledInput = core.EditScheduledInput
type ContactsOptions = core.ContactsOptions
type NearbyInput = core.NearbyInput

var (
	WithLogger             = core.WithLogger
	WithLoggerProvider     = core.WithLoggerProvider
	WithErrorMapper        = core.WithErrorMapper
	WithConfigProvider     = core.WithConfigProvider
	WithOptionsResolver    = core.WithOptionsResolver
	WithTransport          = core.WithTransport
	WithTransportResolver  = core.WithTransportResolver
	WithCredentials        = core.WithCredentials
	WithRequestIDGenerator = core.WithRequestIDGenerator
)

var (
	IsMissingCallback    = core.IsMissingCallback
	IsMissingCredential  = core.IsMissingCredential
	IsMissingArgument    = core.IsMissingArgument
	IsConfigurationError = core.IsConfigurationError
	Await                = core.Await
	NewCredentials       = core.NewCredentials
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// New builds a client whose transport is resolved from cfg.Transport
// through the default registry unless an option supplies one.
func New(cfg Config, opts ...Option) (*Client, error) {
	options := make([]Option, 0, len(opts)+1)
	options = append(options, core.WithTransportResolver(transport.NewDefaultRegistry()))
	options = append(options, opts...)
	return core.NewClient(cfg, options...)
}
