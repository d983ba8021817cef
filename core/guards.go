package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	paramOAuthToken   = "oauth_token"
	paramClientID     = "client_id"
	paramClientSecret = "client_secret"
)

type argument struct {
	name    string
	present bool
}

func stringArg(name string, value string) argument {
	return argument{name: name, present: strings.TrimSpace(value) != ""}
}

// amountArg treats a zero amount as missing.
func amountArg(name string, value decimal.Decimal) argument {
	return argument{name: name, present: !value.IsZero()}
}

// userCall runs the guard sequence for endpoints acting on behalf of the
// token holder: completion, access token, then args in order.
func (c *Client) userCall(operation string, done Completion, args ...argument) (CredentialSnapshot, error) {
	if done == nil {
		return CredentialSnapshot{}, missingCallbackError(operation)
	}
	if c == nil || c.dispatcher == nil {
		return CredentialSnapshot{}, internalError("dwolla: client is not initialised")
	}
	snapshot := c.credentials.Snapshot()
	if strings.TrimSpace(snapshot.AccessToken) == "" {
		return CredentialSnapshot{}, missingCredentialError(operation, paramOAuthToken)
	}
	if err := requireArgs(operation, args...); err != nil {
		return CredentialSnapshot{}, err
	}
	return snapshot, nil
}

// appCall runs the guard sequence for application-level endpoints, which
// authenticate with the application key and secret instead of a token.
func (c *Client) appCall(operation string, done Completion, args ...argument) (CredentialSnapshot, error) {
	if done == nil {
		return CredentialSnapshot{}, missingCallbackError(operation)
	}
	if c == nil || c.dispatcher == nil {
		return CredentialSnapshot{}, internalError("dwolla: client is not initialised")
	}
	snapshot := c.credentials.Snapshot()
	if strings.TrimSpace(snapshot.ApplicationKey) == "" {
		return CredentialSnapshot{}, missingCredentialError(operation, paramClientID)
	}
	if strings.TrimSpace(snapshot.ApplicationSecret) == "" {
		return CredentialSnapshot{}, missingCredentialError(operation, paramClientSecret)
	}
	if err := requireArgs(operation, args...); err != nil {
		return CredentialSnapshot{}, err
	}
	return snapshot, nil
}

func requireArgs(operation string, args ...argument) error {
	for _, arg := range args {
		if !arg.present {
			return missingArgumentError(operation, arg.name)
		}
	}
	return nil
}

func withToken(params Params, snapshot CredentialSnapshot) Params {
	return params.Set(paramOAuthToken, snapshot.AccessToken)
}

func withApplication(params Params, snapshot CredentialSnapshot) Params {
	return params.
		Set(paramClientID, snapshot.ApplicationKey).
		Set(paramClientSecret, snapshot.ApplicationSecret)
}
