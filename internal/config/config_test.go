package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/fpl-tui/internal/config"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	conf, err := config.NewLoader(nil, filepath.Join(t.TempDir(), "missing.yaml")).Read()
	require.NoError(t, err)
	require.Equal(t, config.DefaultGatewayURL, conf.GatewayURL)
	require.Empty(t, conf.APIBaseURL)
	require.Equal(t, config.DefaultHTTPTimeout, conf.HTTPTimeout())
	require.Equal(t, config.DefaultListenAddr, conf.Proxy.ListenAddress)
	require.True(t, conf.Proxy.StatusPassthrough)
	require.Equal(t, []string{"*"}, conf.Proxy.AllowedOrigins)
	require.Equal(t, []string{"total_points"}, conf.DefaultMetrics)
	require.False(t, conf.Debug)
}

func TestReadFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fpl-tui.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
gateway_url: http://localhost:9999/api/
http_timeout_seconds: 3
debug: true
default_metrics: [total_points, value]
proxy:
  listen_address: 0.0.0.0:9000
  status_passthrough: false
  allowed_origins:
    - http://localhost:3000
`), 0o600))

	conf, err := config.NewLoader(nil, configPath).Read()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999/api/", conf.GatewayURL)
	require.Equal(t, 3*time.Second, conf.HTTPTimeout())
	require.True(t, conf.Debug)
	require.Equal(t, []string{"total_points", "value"}, conf.DefaultMetrics)
	require.Equal(t, "0.0.0.0:9000", conf.Proxy.ListenAddress)
	require.False(t, conf.Proxy.StatusPassthrough)
	require.Equal(t, []string{"http://localhost:3000"}, conf.Proxy.AllowedOrigins)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("FPLTUI_GATEWAY_URL", "http://upstream.test/api/")
	t.Setenv("FPLTUI_PROXY_LISTEN_ADDRESS", "127.0.0.1:7777")

	conf, err := config.NewLoader(nil, filepath.Join(t.TempDir(), "missing.yaml")).Read()
	require.NoError(t, err)
	require.Equal(t, "http://upstream.test/api/", conf.GatewayURL)
	require.Equal(t, "127.0.0.1:7777", conf.Proxy.ListenAddress)
}

func TestReadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fpl-tui.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("proxy: [unclosed"), 0o600))

	_, err := config.NewLoader(nil, configPath).Read()
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b", "c"}, config.SplitList([]string{"a, b", "", " c "}))
	require.Nil(t, config.SplitList(nil))
}
