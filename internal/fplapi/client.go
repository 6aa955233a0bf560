// Package fplapi is the dashboard's client for the proxy endpoints.
package fplapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leighmacdonald/fpl-tui/internal/encoding"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/oapi-codegen/runtime"
)

var (
	ErrBaseURL = errors.New("invalid api base url")
	ErrRequest = errors.New("api request failed")
	ErrStatus  = errors.New("unexpected api response status")
)

// StatusError carries the status code of a non 2xx response. It matches ErrStatus.
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrStatus.Error(), e.StatusCode)
}

func (e StatusError) Is(target error) bool {
	return target == ErrStatus //nolint:errorlint
}

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	server     *url.URL
	httpClient HTTPDoer
}

func New(baseURL string, httpClient HTTPDoer) (*Client, error) {
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

	return &Client{server: server, httpClient: httpClient}, nil
}

// Bootstrap fetches the player and team listing through /api/bootstrap-static.
func (c *Client) Bootstrap(ctx context.Context) (fpl.Bootstrap, error) {
	return get[fpl.Bootstrap](ctx, c, "api/bootstrap-static", nil)
}

// ElementSummary fetches a single player's history through /api/element-summary?id=.
func (c *Client) ElementSummary(ctx context.Context, playerID int) (fpl.ElementSummary, error) {
	queryFrag, errParam := runtime.StyleParamWithLocation("form", true, "id", runtime.ParamLocationQuery,
		strconv.Itoa(playerID))
	if errParam != nil {
		return fpl.ElementSummary{}, errors.Join(errParam, ErrRequest)
	}

	query, errQuery := url.ParseQuery(queryFrag)
	if errQuery != nil {
		return fpl.ElementSummary{}, errors.Join(errQuery, ErrRequest)
	}

	return get[fpl.ElementSummary](ctx, c, "api/element-summary", query)
}

func get[T any](ctx context.Context, client *Client, operationPath string, query url.Values) (T, error) {
	var empty T

	queryURL, errURL := client.server.Parse("./" + operationPath)
	if errURL != nil {
		return empty, errors.Join(errURL, ErrRequest)
	}

	if query != nil {
		queryURL.RawQuery = query.Encode()
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, queryURL.String(), nil)
	if errReq != nil {
		return empty, errors.Join(errReq, ErrRequest)
	}

	req.Header.Set("Accept", "application/json")

	resp, errResp := client.httpClient.Do(req)
	if errResp != nil {
		return empty, errors.Join(errResp, ErrRequest)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return empty, StatusError{StatusCode: resp.StatusCode}
	}

	return encoding.UnmarshalJSON[T](resp.Body)
}
