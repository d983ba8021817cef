package core

import "context"

const (
	contactsPath = "/contacts/"
	nearbyPath   = "/contacts/nearby"
)

type ContactsOptions struct {
	Search string
	Types  []string
	Limit  int
	Extra  map[string]any
}

// NearbyInput locates spots around a coordinate. Latitude and Longitude are
// passed through as given.
type NearbyInput struct {
	Latitude  string
	Longitude string
	Range     int
	Limit     int
	Extra     map[string]any
}

// Contacts lists the token holder's contacts.
func (c *Client) Contacts(ctx context.Context, opts ContactsOptions, done Completion) error {
	snapshot, err := c.userCall("contacts", done)
	if err != nil {
		return err
	}
	params := NewParams(opts.Extra).
		SetString("search", opts.Search).
		SetStrings("types", opts.Types).
		SetInt("limit", opts.Limit)
	return c.dispatcher.Get(ctx, contactsPath, withToken(params, snapshot), done)
}

// NearbyContacts is an application-level lookup and needs no token.
func (c *Client) NearbyContacts(ctx context.Context, in NearbyInput, done Completion) error {
	snapshot, err := c.appCall("nearby_contacts", done,
		stringArg("latitude", in.Latitude),
		stringArg("longitude", in.Longitude),
	)
	if err != nil {
		return err
	}
	params := NewParams(in.Extra).
		SetInt("range", in.Range).
		SetInt("limit", in.Limit)
	withApplication(params, snapshot).
		Set("latitude", in.Latitude).
		Set("longitude", in.Longitude)
	return c.dispatcher.Get(ctx, nearbyPath, params, done)
}
