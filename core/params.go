package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Params is the flat parameter object sent with a request. It becomes the
// query string for GET and the JSON body for every other verb.
type Params map[string]any

// NewParams starts a parameter set from caller-supplied extra fields.
func NewParams(extra map[string]any) Params {
	params := make(Params, len(extra)+4)
	for key, value := range extra {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		params[key] = value
	}
	return params
}

// Set writes key unconditionally, replacing any earlier value.
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

func (p Params) SetString(key string, value string) Params {
	if strings.TrimSpace(value) == "" {
		return p
	}
	p[key] = value
	return p
}

func (p Params) SetInt(key string, value int) Params {
	if value <= 0 {
		return p
	}
	p[key] = value
	return p
}

func (p Params) SetStrings(key string, values []string) Params {
	joined := joinValues(values)
	if joined == "" {
		return p
	}
	p[key] = joined
	return p
}

func (p Params) SetAmount(key string, value decimal.Decimal) Params {
	if value.IsZero() {
		return p
	}
	p[key] = FormatAmount(value)
	return p
}

func (p Params) SetFlag(key string, value bool) Params {
	if !value {
		return p
	}
	p[key] = true
	return p
}

func (p Params) Clone() Params {
	return NewParams(p)
}

// Query renders every value with its default format. Slices are
// comma-joined the same way SetStrings joins them.
func (p Params) Query() map[string]string {
	query := make(map[string]string, len(p))
	for key, value := range p {
		if value == nil {
			continue
		}
		query[key] = queryValue(value)
	}
	return query
}

func queryValue(value any) string {
	switch typed := value.(type) {
	case []string:
		return joinValues(typed)
	case []any:
		values := make([]string, 0, len(typed))
		for _, item := range typed {
			if item != nil {
				values = append(values, fmt.Sprint(item))
			}
		}
		return joinValues(values)
	default:
		return fmt.Sprint(value)
	}
}

func joinValues(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			cleaned = append(cleaned, value)
		}
	}
	return strings.Join(cleaned, ",")
}

func (p Params) JSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(p))
}

// FormatAmount renders money with two fraction digits, the form the remote
// API expects.
func FormatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}
