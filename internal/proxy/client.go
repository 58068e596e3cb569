package proxy

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"tripalert-gateway/internal/domain/identity"
	"tripalert-gateway/internal/metrics"
	xerrors "tripalert-gateway/internal/pkg/errors"

	"go.uber.org/zap"
)

// Result is one backend response, relayed verbatim: the gateway never
// renames fields, retries, or reinterprets statuses. A non-2xx status
// (409 duplicate, 404 gone in a create/update/delete race) is a normal
// Result, not an error.
type Result struct {
	Status int
	Body   []byte
}

// Client forwards requests to the internal backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics metrics.GatewayMetrics
}

func NewClient(baseURL string, logger *zap.Logger, m metrics.GatewayMetrics) *Client {
	return &Client{
		baseURL: baseURL,
		// No client-side timeout: a hung backend call hangs only this
		// request, until the inbound request context is done.
		http:    &http.Client{},
		logger:  logger,
		metrics: m,
	}
}

// Do performs one single-shot backend call with the identity's
// composed headers. Transport failures wrap xerrors.ErrBackend.
func (c *Client) Do(ctx context.Context, id identity.Identity, method, path string, body []byte) (*Result, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to build backend request")
	}
	req.Header = Headers(id)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, xerrors.Wrap(xerrors.ErrBackend, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrBackend, "failed to read backend response")
	}

	c.metrics.ObserveBackend(method, path, resp.StatusCode, time.Since(start))

	return &Result{Status: resp.StatusCode, Body: respBody}, nil
}
