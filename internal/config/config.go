package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigRead = errors.New("failed to read config file")
	errLoggerInit = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "fpl-tui"
	DefaultConfigName  = "fpl-tui"
	DefaultLogName     = "fpl-tui.log"
	EnvPrefix          = "fpltui"
	DefaultGatewayURL  = "https://fantasy.premierleague.com/api/"
	DefaultListenAddr  = "127.0.0.1:8085"
	DefaultUserAgent   = "fpl-tui"
	DefaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	// GatewayURL is the upstream fantasy api that the proxy forwards to.
	GatewayURL string `mapstructure:"gateway_url"`
	// APIBaseURL points the dashboard at a running proxy. When empty an in-process proxy
	// is started on a loopback port.
	APIBaseURL         string   `mapstructure:"api_base_url"`
	HTTPTimeoutSeconds int      `mapstructure:"http_timeout_seconds"`
	UserAgent          string   `mapstructure:"user_agent"`
	Proxy              Proxy    `mapstructure:"proxy"`
	DefaultMetrics     []string `mapstructure:"default_metrics"`
	Debug              bool     `mapstructure:"debug"`
}

type Proxy struct {
	ListenAddress string `mapstructure:"listen_address"`
	// StatusPassthrough forwards the upstream status code. When disabled every upstream
	// response is answered with a 200.
	StatusPassthrough bool     `mapstructure:"status_passthrough"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
}

// HTTPTimeout returns the configured client timeout, falling back to DefaultHTTPTimeout.
func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSeconds <= 0 {
		return DefaultHTTPTimeout
	}

	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// ExportDir is where charts exported from the dashboard are written.
func ExportDir() string {
	return path.Join(xdg.DataHome, ConfigDirName, "charts")
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

// LoggerInitStderr is used by the headless commands which still own the terminal.
func LoggerInitStderr(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// SplitList accepts either repeated values or a single comma separated value, as env vars provide.
func SplitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
