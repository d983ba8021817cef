package core

import (
	"context"
	"encoding/json"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// Completion receives the outcome of one dispatched request. It is invoked
// exactly once per accepted call.
type Completion func(result Result, err error)

type TransportRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Query                map[string]string
	Body                 []byte
	Metadata             map[string]any
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// Request is what an endpoint hands to the dispatcher.
type Request struct {
	Method string
	Path   string
	Params Params
}

// Result is the transport response, passed through untouched.
type Result struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

func resultFromTransport(res TransportResponse) Result {
	return Result{
		StatusCode: res.StatusCode,
		Headers:    res.Headers,
		Body:       res.Body,
		Metadata:   res.Metadata,
	}
}

// DecodeJSON unmarshals the raw response body into target.
func (r Result) DecodeJSON(target any) error {
	if len(r.Body) == 0 {
		return internalError("dwolla: response body is empty")
	}
	return json.Unmarshal(r.Body, target)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
