package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leighmacdonald/fpl-tui/internal/gateway"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/bootstrap-static/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "fpl-tui-test" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[],"teams":[]}`))
	})
	mux.HandleFunc("/api/element-summary/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "7" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found."}`))

			return
		}
		_, _ = w.Write([]byte(`{"history":[]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestBootstrapStatic(t *testing.T) {
	t.Parallel()

	upstream := newUpstream(t)
	client, err := gateway.New(upstream.URL+"/api", upstream.Client(), "fpl-tui-test")
	require.NoError(t, err)

	resp, errResp := client.BootstrapStatic(t.Context())
	require.NoError(t, errResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.ContentType)
	require.JSONEq(t, `{"elements":[],"teams":[]}`, string(resp.Body))
}

func TestElementSummary(t *testing.T) {
	t.Parallel()

	upstream := newUpstream(t)
	client, err := gateway.New(upstream.URL+"/api/", upstream.Client(), "fpl-tui-test")
	require.NoError(t, err)

	resp, errResp := client.ElementSummary(t.Context(), "7")
	require.NoError(t, errResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"history":[]}`, string(resp.Body))

	missing, errMissing := client.ElementSummary(t.Context(), "99999")
	require.NoError(t, errMissing)
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.NotFoundHandler())
	upstream.Close()

	client, err := gateway.New(upstream.URL, nil, "")
	require.NoError(t, err)

	_, errResp := client.BootstrapStatic(t.Context())
	require.ErrorIs(t, errResp, gateway.ErrRequest)
}

func TestInvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := gateway.New("not a url", nil, "")
	require.ErrorIs(t, err, gateway.ErrBaseURL)
}
