package datasource_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/leighmacdonald/fpl-tui/internal/datasource"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/store"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

type fakeFetcher struct {
	bootstrapCalls atomic.Int32
	summaryCalls   atomic.Int32
	fail           atomic.Bool
}

func (f *fakeFetcher) Bootstrap(_ context.Context) (fpl.Bootstrap, error) {
	f.bootstrapCalls.Add(1)
	if f.fail.Load() {
		return fpl.Bootstrap{}, errUpstream
	}

	return fpl.Bootstrap{
		Elements: []fpl.Player{{ID: 7, FirstName: "Bukayo", SecondName: "Saka", Form: fpl.Some(7.5)}},
		Teams:    []fpl.Team{{ID: 1, Name: "Arsenal", ShortName: "ARS"}},
	}, nil
}

func (f *fakeFetcher) ElementSummary(_ context.Context, playerID int) (fpl.ElementSummary, error) {
	calls := f.summaryCalls.Add(1)
	if f.fail.Load() {
		return fpl.ElementSummary{}, errUpstream
	}

	return fpl.ElementSummary{History: []fpl.GameweekEntry{
		{Element: playerID, Round: 1, TotalPoints: fpl.Some(float64(calls)), Minutes: fpl.Null},
	}}, nil
}

func newSource(t *testing.T) (*datasource.Source, *fakeFetcher) {
	t.Helper()

	database, err := store.Open(t.Context())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, database.Close()) })

	fetcher := &fakeFetcher{}

	return datasource.New(fetcher, store.New(database)), fetcher
}

func TestBootstrapFetchedOnce(t *testing.T) {
	t.Parallel()

	source, fetcher := newSource(t)

	first, err := source.Bootstrap(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Bukayo Saka", first.Elements[0].Name())
	require.Equal(t, fpl.Some(7.5), first.Elements[0].Form)

	second, err := source.Bootstrap(t.Context())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, fetcher.bootstrapCalls.Load())
}

func TestElementSummaryFetchedOnce(t *testing.T) {
	t.Parallel()

	source, fetcher := newSource(t)

	var waitGroup sync.WaitGroup
	results := make([]fpl.ElementSummary, 8)
	for idx := range results {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()

			summary, err := source.ElementSummary(t.Context(), 7)
			if err == nil {
				results[idx] = summary
			}
		}()
	}
	waitGroup.Wait()

	require.EqualValues(t, 1, fetcher.summaryCalls.Load())
	for _, summary := range results {
		require.Len(t, summary.History, 1)
		require.Equal(t, fpl.Some(1), summary.History[0].TotalPoints)
		require.False(t, summary.History[0].Minutes.Valid)
	}

	other, err := source.ElementSummary(t.Context(), 9)
	require.NoError(t, err)
	require.Equal(t, 9, other.History[0].Element)
	require.EqualValues(t, 2, fetcher.summaryCalls.Load())
}

func TestFailedFetchIsRetried(t *testing.T) {
	t.Parallel()

	source, fetcher := newSource(t)
	fetcher.fail.Store(true)

	_, err := source.ElementSummary(t.Context(), 7)
	require.ErrorIs(t, err, errUpstream)

	fetcher.fail.Store(false)
	summary, err := source.ElementSummary(t.Context(), 7)
	require.NoError(t, err)
	require.Len(t, summary.History, 1)
	require.EqualValues(t, 2, fetcher.summaryCalls.Load())
}
