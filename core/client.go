package core

import (
	"context"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Client binds one client context to one dispatcher. It is safe for
// concurrent use.
type Client struct {
	config      Config
	credentials *Credentials
	dispatcher  *Dispatcher
	logger      Logger
	errorMapper ErrorMapper
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	builder := defaultClientBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("dwolla", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("dwolla"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	credentials := builder.credentials
	if credentials == nil {
		credentials, err = NewCredentials(finalConfig.ApplicationKey, finalConfig.ApplicationSecret)
		if err != nil {
			return nil, mapBuildError(builder.errorMapper, err)
		}
	}
	if token := strings.TrimSpace(finalConfig.AccessToken); token != "" {
		credentials.SetAccessToken(token)
	}

	adapter := builder.transport
	if adapter == nil {
		if builder.transportResolver == nil {
			return nil, mapBuildError(builder.errorMapper, configurationError(
				"dwolla: transport adapter or transport resolver is required",
				map[string]any{"transport": finalConfig.Transport},
			))
		}
		adapter, err = builder.transportResolver.Build(finalConfig.Transport, map[string]any{
			"timeout":    finalConfig.Timeout,
			"user_agent": finalConfig.UserAgent,
		})
		if err != nil {
			return nil, mapBuildError(builder.errorMapper, err)
		}
	}

	dispatcher := NewDispatcher(finalConfig.BaseURL, adapter, logger)
	dispatcher.timeout = finalConfig.Timeout
	dispatcher.userAgent = strings.TrimSpace(finalConfig.UserAgent)
	if builder.requestIDs != nil {
		dispatcher.requestIDs = builder.requestIDs
	}

	logger.Debug("dwolla client configured",
		"base_url", finalConfig.BaseURL,
		"transport", adapter.Kind(),
	)

	return &Client{
		config:      finalConfig,
		credentials: credentials,
		dispatcher:  dispatcher,
		logger:      logger,
		errorMapper: builder.errorMapper,
	}, nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (c *Client) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.config
}

func (c *Client) Credentials() *Credentials {
	if c == nil {
		return nil
	}
	return c.credentials
}

func (c *Client) Dispatcher() *Dispatcher {
	if c == nil {
		return nil
	}
	return c.dispatcher
}

func (c *Client) Logger() Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

func (c *Client) SetAccessToken(token string) {
	if c == nil {
		return
	}
	c.credentials.SetAccessToken(token)
}

func (c *Client) AccessToken() string {
	if c == nil {
		return ""
	}
	return c.credentials.AccessToken()
}

func (c *Client) ApplicationKey() string {
	if c == nil {
		return ""
	}
	return c.credentials.ApplicationKey()
}

func (c *Client) ApplicationSecret() string {
	if c == nil {
		return ""
	}
	return c.credentials.ApplicationSecret()
}
