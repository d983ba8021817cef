package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-dwolla/core"
	goerrors "github.com/goliatone/go-errors"
)

const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB

func normalizeMethod(method string) string {
	method = strings.TrimSpace(strings.ToUpper(method))
	if method == "" {
		return http.MethodGet
	}
	return method
}

// requestURL parses req.URL and merges req.Query into it. Query values are
// kept verbatim; only keys are trimmed.
func requestURL(kind string, req core.TransportRequest) (*url.URL, error) {
	raw := strings.TrimSpace(req.URL)
	if raw == "" {
		return nil, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"adapter": kind},
		)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"adapter": kind, "url": raw},
		)
	}
	if len(req.Query) > 0 {
		query := parsed.Query()
		for key, value := range req.Query {
			if key = strings.TrimSpace(key); key != "" {
				query.Set(key, value)
			}
		}
		parsed.RawQuery = query.Encode()
	}
	return parsed, nil
}

func mergeHeaders(layers ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, layer := range layers {
		for key, value := range layer {
			if key = strings.TrimSpace(key); key != "" {
				merged[key] = strings.TrimSpace(value)
			}
		}
	}
	return merged
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

func resolveResponseBodyLimit(requestLimit int64, adapterLimit int64) int64 {
	if requestLimit > 0 {
		return requestLimit
	}
	if adapterLimit > 0 {
		return adapterLimit
	}
	return defaultResponseBodyLimit
}

func checkBodyLimit(kind string, statusCode int, body []byte, limit int64) error {
	if int64(len(body)) <= limit {
		return nil
	}
	return transportError(
		fmt.Sprintf("transport: response body exceeds limit of %d bytes", limit),
		goerrors.CategoryExternal,
		http.StatusBadGateway,
		map[string]any{
			"adapter":          kind,
			"status_code":      statusCode,
			"response_limit_b": limit,
		},
	)
}

func responseMetadata(kind string, req core.TransportRequest, startedAt time.Time) map[string]any {
	metadata := map[string]any{
		"duration_ms": time.Since(startedAt).Milliseconds(),
		"kind":        kind,
	}
	if requestID, ok := req.Metadata["request_id"]; ok {
		metadata["request_id"] = requestID
	}
	return metadata
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		flat[key] = strings.Join(values, ",")
	}
	return flat
}
