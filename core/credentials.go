package core

import (
	"strings"
	"sync"
)

// Credentials is the client context shared by every endpoint call: the
// application key and secret plus the current OAuth access token.
type Credentials struct {
	mu                sync.RWMutex
	applicationKey    string
	applicationSecret string
	accessToken       string
}

// CredentialSnapshot is the view of Credentials captured when a call is made.
type CredentialSnapshot struct {
	ApplicationKey    string
	ApplicationSecret string
	AccessToken       string
}

func NewCredentials(applicationKey, applicationSecret string) (*Credentials, error) {
	creds := &Credentials{}
	if err := creds.Configure(applicationKey, applicationSecret); err != nil {
		return nil, err
	}
	return creds, nil
}

// Configure replaces the application key and secret. The access token is
// left as is.
func (c *Credentials) Configure(applicationKey, applicationSecret string) error {
	if c == nil {
		return internalError("dwolla: credentials are nil")
	}
	applicationKey = strings.TrimSpace(applicationKey)
	applicationSecret = strings.TrimSpace(applicationSecret)
	if applicationKey == "" {
		return configurationError("dwolla: application key is required", map[string]any{"field": "application_key"})
	}
	if applicationSecret == "" {
		return configurationError("dwolla: application secret is required", map[string]any{"field": "application_secret"})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applicationKey = applicationKey
	c.applicationSecret = applicationSecret
	return nil
}

// SetAccessToken stores token unconditionally. An empty token revokes the
// previous one.
func (c *Credentials) SetAccessToken(token string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Credentials) AccessToken() string {
	return c.Snapshot().AccessToken
}

func (c *Credentials) ApplicationKey() string {
	return c.Snapshot().ApplicationKey
}

func (c *Credentials) ApplicationSecret() string {
	return c.Snapshot().ApplicationSecret
}

func (c *Credentials) Snapshot() CredentialSnapshot {
	if c == nil {
		return CredentialSnapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CredentialSnapshot{
		ApplicationKey:    c.applicationKey,
		ApplicationSecret: c.applicationSecret,
		AccessToken:       c.accessToken,
	}
}
