package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL       = "https://www.dwolla.com/oauth/rest"
	DefaultTransportKind = "rest"
)

type Config struct {
	ServiceName       string        `koanf:"service_name" mapstructure:"service_name"`
	BaseURL           string        `koanf:"base_url" mapstructure:"base_url"`
	ApplicationKey    string        `koanf:"application_key" mapstructure:"application_key"`
	ApplicationSecret string        `koanf:"application_secret" mapstructure:"application_secret"`
	AccessToken       string        `koanf:"access_token" mapstructure:"access_token"`
	Transport         string        `koanf:"transport" mapstructure:"transport"`
	Timeout           time.Duration `koanf:"timeout" mapstructure:"timeout"`
	UserAgent         string        `koanf:"user_agent" mapstructure:"user_agent"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "dwolla",
		BaseURL:     DefaultBaseURL,
		Transport:   DefaultTransportKind,
		UserAgent:   "go-dwolla",
	}
}

// Validate checks the shape of the configuration. Application credentials
// are validated separately when the client context is configured.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("core: base_url is required")
	}
	parsed, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("core: base_url %q is invalid", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("core: timeout is invalid")
	}
	return nil
}
