// Package gateway is a thin client for the upstream fantasy api. Responses are returned
// raw so that they can be relayed without being re-encoded.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

var (
	ErrBaseURL = errors.New("invalid gateway base url")
	ErrRequest = errors.New("gateway request failed")
	ErrParam   = errors.New("invalid path parameter")
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Response is an upstream reply relayed verbatim.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Client struct {
	server     *url.URL
	httpClient HTTPDoer
	userAgent  string
}

func New(baseURL string, httpClient HTTPDoer, userAgent string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	server, errParse := url.Parse(baseURL)
	if errParse != nil {
		return nil, errors.Join(errParse, ErrBaseURL)
	}

	if server.Scheme == "" || server.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrBaseURL, baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{server: server, httpClient: httpClient, userAgent: userAgent}, nil
}

// BootstrapStatic fetches bootstrap-static/, the full player and team listing.
func (c *Client) BootstrapStatic(ctx context.Context) (Response, error) {
	return c.get(ctx, "bootstrap-static/")
}

// ElementSummary fetches element-summary/{id}/. The id is escaped but otherwise forwarded as given.
func (c *Client) ElementSummary(ctx context.Context, playerID string) (Response, error) {
	pathParam, errParam := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, playerID)
	if errParam != nil {
		return Response{}, errors.Join(errParam, ErrParam)
	}

	return c.get(ctx, fmt.Sprintf("element-summary/%s/", pathParam))
}

func (c *Client) get(ctx context.Context, operationPath string) (Response, error) {
	queryURL, errURL := c.server.Parse("./" + operationPath)
	if errURL != nil {
		return Response{}, errors.Join(errURL, ErrRequest)
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, queryURL.String(), nil)
	if errReq != nil {
		return Response{}, errors.Join(errReq, ErrRequest)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return Response{}, errors.Join(errResp, ErrRequest)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	body, errBody := io.ReadAll(resp.Body)
	if errBody != nil {
		return Response{}, errors.Join(errBody, ErrRequest)
	}

	slog.Debug("Gateway response", slog.String("path", queryURL.Path), slog.Int("status_code", resp.StatusCode),
		slog.Int("bytes", len(body)))

	return Response{StatusCode: resp.StatusCode, ContentType: resp.Header.Get("Content-Type"), Body: body}, nil
}
