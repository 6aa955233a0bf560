package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching the xdg config dir and the working directory. A nil
// changes channel disables live reloading.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("gateway_url", DefaultGatewayURL)
	loader.SetDefault("api_base_url", "")
	loader.SetDefault("http_timeout_seconds", int(DefaultHTTPTimeout.Seconds()))
	loader.SetDefault("user_agent", DefaultUserAgent)
	loader.SetDefault("proxy.listen_address", DefaultListenAddr)
	loader.SetDefault("proxy.status_passthrough", true)
	loader.SetDefault("proxy.allowed_origins", []string{"*"})
	loader.SetDefault("default_metrics", []string{"total_points"})
	loader.SetDefault("debug", false)
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()
	if changes != nil {
		loader.WatchConfig()
		loader.OnConfigChange(loader.onConfigChange)
	}

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	// Nobody is listening once the ui has exited, drop the update rather than block the watcher.
	select {
	case cl.changes <- config:
	default:
		slog.Warn("Dropped config reload, no listener")
	}
}

// Read loads the config file when one exists. A missing file is not an error, the
// defaults and environment are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	config.DefaultMetrics = SplitList(config.DefaultMetrics)
	config.Proxy.AllowedOrigins = SplitList(config.Proxy.AllowedOrigins)

	return config, nil
}
