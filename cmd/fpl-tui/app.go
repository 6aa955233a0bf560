package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/config"
	"github.com/leighmacdonald/fpl-tui/internal/datasource"
	"github.com/leighmacdonald/fpl-tui/internal/fplapi"
	"github.com/leighmacdonald/fpl-tui/internal/gateway"
	"github.com/leighmacdonald/fpl-tui/internal/proxy"
	"github.com/leighmacdonald/fpl-tui/internal/store"
	"github.com/leighmacdonald/fpl-tui/internal/ui"
	"golang.org/x/sync/errgroup"
)

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for wiring the data source into the ui and forwarding config changes to it.
type App struct {
	ui            *ui.UI
	configUpdates chan config.Config
	closers       []func() error
}

// NewApp builds the data path (proxy, api client, session store) and the ui. The in-process
// proxy, when needed, is started on group.
func NewApp(ctx context.Context, group *errgroup.Group, conf config.Config, configPath string,
	configUpdates chan config.Config,
) (*App, error) {
	client, errClient := newAPIClient(ctx, group, conf)
	if errClient != nil {
		return nil, errClient
	}

	// Setup the session scoped sqlite database.
	database, errDB := store.Open(ctx)
	if errDB != nil {
		return nil, errDB
	}

	source := datasource.New(client, store.New(database))
	build := ui.BuildInfo{Version: BuildVersion, Date: BuildDate, Commit: BuildCommit}

	return &App{
		ui: ui.New(ctx, source, chart.NewSelection(conf.DefaultMetrics...), build,
			configPath, config.ExportDir()),
		configUpdates: configUpdates,
		closers:       []func() error{database.Close},
	}, nil
}

// Run blocks until the ui exits.
func (app *App) Run() error {
	defer app.close()

	return app.ui.Run()
}

// Start forwards config reloads to the ui until ctx is done.
func (app *App) Start(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) close() {
	for _, closer := range app.closers {
		if err := closer(); err != nil {
			slog.Error("Error closing resource", slog.String("error", err.Error()))
		}
	}
}

func newProxy(conf config.Config) (*proxy.Server, error) {
	httpClient := &http.Client{Timeout: conf.HTTPTimeout()}

	upstream, errUpstream := gateway.New(conf.GatewayURL, httpClient, conf.UserAgent)
	if errUpstream != nil {
		return nil, errUpstream
	}

	return proxy.New(upstream, proxy.Options{
		StatusPassthrough: conf.Proxy.StatusPassthrough,
		AllowedOrigins:    conf.Proxy.AllowedOrigins,
		Timeout:           conf.HTTPTimeout(),
	}), nil
}

// newAPIClient returns a dashboard client for api_base_url. When it is unset a proxy is
// started on a loopback port for the lifetime of ctx and the client points at it.
func newAPIClient(ctx context.Context, group *errgroup.Group, conf config.Config) (*fplapi.Client, error) {
	httpClient := &http.Client{Timeout: conf.HTTPTimeout()}

	baseURL := conf.APIBaseURL
	if baseURL == "" {
		server, errServer := newProxy(conf)
		if errServer != nil {
			return nil, errServer
		}

		listener, errListen := proxy.Listen(ctx, "127.0.0.1:0")
		if errListen != nil {
			return nil, errListen
		}

		group.Go(func() error {
			if err := server.Serve(ctx, listener); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		})

		baseURL = "http://" + listener.Addr().String() + "/"
	}

	return fplapi.New(baseURL, httpClient)
}
