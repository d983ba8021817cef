package core

import (
	"context"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

const requestIDHeader = "X-Request-ID"

// Dispatcher shapes endpoint parameters into transport requests and forwards
// the transport outcome to the caller's completion.
type Dispatcher struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	transport  TransportAdapter
	logger     Logger
	requestIDs RequestIDGenerator
}

func NewDispatcher(baseURL string, transport TransportAdapter, logger Logger) *Dispatcher {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Dispatcher{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		transport:  transport,
		logger:     logger,
		requestIDs: newRequestID,
	}
}

func (d *Dispatcher) Get(ctx context.Context, path string, params Params, done Completion) error {
	return d.Dispatch(ctx, Request{Method: http.MethodGet, Path: path, Params: params}, done)
}

func (d *Dispatcher) Post(ctx context.Context, path string, params Params, done Completion) error {
	return d.Dispatch(ctx, Request{Method: http.MethodPost, Path: path, Params: params}, done)
}

func (d *Dispatcher) Put(ctx context.Context, path string, params Params, done Completion) error {
	return d.Dispatch(ctx, Request{Method: http.MethodPut, Path: path, Params: params}, done)
}

func (d *Dispatcher) Delete(ctx context.Context, path string, params Params, done Completion) error {
	return d.Dispatch(ctx, Request{Method: http.MethodDelete, Path: path, Params: params}, done)
}

// Dispatch hands req to the transport on its own goroutine. Errors returned
// here mean nothing was sent and done will not be called.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, done Completion) error {
	if done == nil {
		return missingCallbackError(req.Method + " " + req.Path)
	}
	if d == nil || d.transport == nil {
		return internalError("dwolla: dispatcher requires a transport adapter")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	transportReq, err := d.shape(req)
	if err != nil {
		return err
	}

	fields := map[string]any{
		"request_id": transportReq.Metadata["request_id"],
		"method":     transportReq.Method,
		"path":       req.Path,
		"params":     req.Params,
	}
	d.log(ctx, "debug", "dwolla request dispatched", fields)

	go func() {
		startedAt := time.Now()
		res, err := d.transport.Do(ctx, transportReq)
		fields["duration_ms"] = time.Since(startedAt).Milliseconds()
		if err != nil {
			fields["error"] = err.Error()
			d.log(ctx, "error", "dwolla request failed", fields)
		} else {
			fields["status_code"] = res.StatusCode
			d.log(ctx, "debug", "dwolla request completed", fields)
		}
		done(resultFromTransport(res), err)
	}()
	return nil
}

func (d *Dispatcher) shape(req Request) (TransportRequest, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := strings.TrimSpace(req.Path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	requestID := d.nextRequestID()
	out := TransportRequest{
		Method:   method,
		URL:      d.baseURL + path,
		Headers:  map[string]string{"Accept": "application/json", requestIDHeader: requestID},
		Metadata: map[string]any{"request_id": requestID, "path": path},
		Timeout:  d.timeout,
	}
	if d.userAgent != "" {
		out.Headers["User-Agent"] = d.userAgent
	}

	params := req.Params
	if params == nil {
		params = Params{}
	}
	if method == http.MethodGet {
		out.Query = params.Query()
		return out, nil
	}
	body, err := params.JSON()
	if err != nil {
		return TransportRequest{}, goerrors.Wrap(err, goerrors.CategoryInternal, "dwolla: encode request body").
			WithCode(http.StatusInternalServerError).
			WithTextCode(ErrorInternal)
	}
	out.Body = body
	out.Headers["Content-Type"] = "application/json"
	return out, nil
}

func (d *Dispatcher) nextRequestID() string {
	if d.requestIDs == nil {
		return newRequestID()
	}
	if id := strings.TrimSpace(d.requestIDs()); id != "" {
		return id
	}
	return newRequestID()
}
