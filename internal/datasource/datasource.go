// Package datasource combines the api client with the session store so that each remote
// resource is fetched at most once per session.
package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"github.com/leighmacdonald/fpl-tui/internal/encoding"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/store"
	"golang.org/x/sync/singleflight"
)

var errEncode = errors.New("failed to encode payload")

// Fetcher is implemented by fplapi.Client.
type Fetcher interface {
	Bootstrap(ctx context.Context) (fpl.Bootstrap, error)
	ElementSummary(ctx context.Context, playerID int) (fpl.ElementSummary, error)
}

type Source struct {
	fetcher Fetcher
	queries *store.Queries
	group   singleflight.Group
}

func New(fetcher Fetcher, queries *store.Queries) *Source {
	return &Source{fetcher: fetcher, queries: queries}
}

// Bootstrap returns the player and team listing.
func (s *Source) Bootstrap(ctx context.Context) (fpl.Bootstrap, error) {
	return load(ctx, s, "bootstrap",
		s.queries.Bootstrap,
		s.fetcher.Bootstrap,
		s.queries.PutBootstrap)
}

// ElementSummary returns a player's history. Concurrent calls for the same player share a
// single request and the first stored result is returned to every later caller.
func (s *Source) ElementSummary(ctx context.Context, playerID int) (fpl.ElementSummary, error) {
	return load(ctx, s, "element-summary:"+strconv.Itoa(playerID),
		func(ctx context.Context) ([]byte, error) {
			return s.queries.ElementSummary(ctx, playerID)
		},
		func(ctx context.Context) (fpl.ElementSummary, error) {
			return s.fetcher.ElementSummary(ctx, playerID)
		},
		func(ctx context.Context, payload []byte) (bool, error) {
			return s.queries.PutElementSummary(ctx, playerID, payload)
		})
}

func load[T any](ctx context.Context, source *Source, key string,
	read func(context.Context) ([]byte, error),
	fetch func(context.Context) (T, error),
	write func(context.Context, []byte) (bool, error),
) (T, error) {
	var empty T

	if value, err := cached[T](ctx, read); err == nil || !errors.Is(err, store.ErrNotFound) {
		return value, err
	}

	result, err, _ := source.group.Do(key, func() (any, error) {
		// Another caller may have stored the value between the first read and now.
		if value, errCached := cached[T](ctx, read); errCached == nil || !errors.Is(errCached, store.ErrNotFound) {
			return value, errCached
		}

		value, errFetch := fetch(ctx)
		if errFetch != nil {
			return empty, errFetch
		}

		payload, errMarshal := json.Marshal(value)
		if errMarshal != nil {
			return empty, errors.Join(errMarshal, errEncode)
		}

		if _, errWrite := write(ctx, payload); errWrite != nil {
			return empty, errWrite
		}

		slog.Debug("Stored remote resource", slog.String("key", key), slog.Int("bytes", len(payload)))

		return cached[T](ctx, read)
	})
	if err != nil {
		return empty, err
	}

	value, _ := result.(T)

	return value, nil
}

func cached[T any](ctx context.Context, read func(context.Context) ([]byte, error)) (T, error) {
	var empty T

	payload, err := read(ctx)
	if err != nil {
		return empty, err
	}

	return encoding.UnmarshalJSON[T](bytes.NewReader(payload))
}
