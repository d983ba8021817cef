package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-dwolla/core"
	goerrors "github.com/goliatone/go-errors"
	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/header"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const KindFastShot = "fastshot"

// FastShotAdapter sends requests through fast-shot's builder API. A client
// is built per origin since requests carry absolute URLs.
type FastShotAdapter struct {
	DefaultHeaders       map[string]string
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

func NewFastShotAdapter(timeout time.Duration) *FastShotAdapter {
	return &FastShotAdapter{
		DefaultHeaders:       map[string]string{},
		Timeout:              timeout,
		MaxResponseBodyBytes: defaultResponseBodyLimit,
	}
}

func (*FastShotAdapter) Kind() string {
	return KindFastShot
}

func (a *FastShotAdapter) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil {
		return core.TransportResponse{}, transportError(
			"transport: fastshot adapter is nil",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"adapter": KindFastShot},
		)
	}

	method := normalizeMethod(req.Method)
	target, err := requestURL(KindFastShot, req)
	if err != nil {
		return core.TransportResponse{}, err
	}
	if target.Scheme == "" || target.Host == "" {
		return core.TransportResponse{}, transportError(
			"transport: fastshot adapter requires an absolute url",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"adapter": KindFastShot, "url": target.Path},
		)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = a.Timeout
	}
	requestCtx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	client := fastshot.NewClient(target.Scheme + "://" + target.Host).
		Header().AddAccept(mime.JSON).
		Build()

	builder, err := a.builder(client, method, target)
	if err != nil {
		return core.TransportResponse{}, err
	}
	builder = builder.Context().Set(requestCtx)
	if query := target.Query(); len(query) > 0 {
		params := make(map[string]string, len(query))
		for key := range query {
			params[key] = query.Get(key)
		}
		builder = builder.Query().AddParams(params)
	}
	for key, value := range mergeHeaders(a.DefaultHeaders, req.Headers) {
		builder = builder.Header().Add(header.Type(key), value)
	}
	if len(req.Body) > 0 {
		builder = builder.Body().AsString(string(req.Body))
	}

	startedAt := time.Now().UTC()
	res, err := builder.Send()
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			http.StatusBadGateway,
			map[string]any{"adapter": KindFastShot, "method": method, "url": target.Path},
		)
	}

	text, err := res.Body().AsString()
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusBadGateway,
			map[string]any{"adapter": KindFastShot, "status_code": res.Status().Code()},
		)
	}
	resBody := []byte(text)
	limit := resolveResponseBodyLimit(req.MaxResponseBodyBytes, a.MaxResponseBodyBytes)
	if err := checkBodyLimit(KindFastShot, res.Status().Code(), resBody, limit); err != nil {
		return core.TransportResponse{}, err
	}

	keys := res.Header().Keys()
	resHeaders := make(map[string]string, len(keys))
	for _, key := range keys {
		resHeaders[string(key)] = strings.Join(res.Header().GetAll(key), ",")
	}

	return core.TransportResponse{
		StatusCode: res.Status().Code(),
		Headers:    resHeaders,
		Body:       resBody,
		Metadata:   responseMetadata(KindFastShot, req, startedAt),
	}, nil
}

func (a *FastShotAdapter) builder(
	client fastshot.ClientHttpMethods,
	method string,
	target *url.URL,
) (*fastshot.RequestBuilder, error) {
	path := target.EscapedPath()
	switch method {
	case http.MethodGet:
		return client.GET(path), nil
	case http.MethodPost:
		return client.POST(path), nil
	case http.MethodPut:
		return client.PUT(path), nil
	case http.MethodDelete:
		return client.DELETE(path), nil
	default:
		return nil, transportError(
			"transport: fastshot adapter does not support method "+strings.ToLower(method),
			goerrors.CategoryBadInput,
			http.StatusMethodNotAllowed,
			map[string]any{"adapter": KindFastShot, "method": method},
		)
	}
}

var _ core.TransportAdapter = (*FastShotAdapter)(nil)
