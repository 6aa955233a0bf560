package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/config"
	"github.com/leighmacdonald/fpl-tui/internal/proxy"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	chartID        int
	chartMetrics   []string
	chartFormat    string
	chartOut       string
	rootCmd        = &cobra.Command{
		Use:   "fpl-tui",
		Short: "Fantasy Premier League player dashboard",
		Long:  `fpl-tui - Browse, filter and chart Fantasy Premier League player statistics`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about fpl-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the api proxy",
		Long:  "Run the api proxy on proxy.listen_address, forwarding requests to the fantasy api",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "Export a player history chart",
		Long:  "Fetch a single player's gameweek history and render the selected metrics to a png or svg file",
		Args:  cobra.NoArgs,
		RunE:  exportChart,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName + ".yaml")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file path")

	chartCmd.Flags().IntVar(&chartID, "id", 0, "Player id")
	chartCmd.Flags().StringSliceVar(&chartMetrics, "metrics", nil, "Comma separated metrics to chart")
	chartCmd.Flags().StringVar(&chartFormat, "format", "png", "Output format, png or svg")
	chartCmd.Flags().StringVar(&chartOut, "out", "", "Output file path, defaults to <id>.<format>")
	_ = chartCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(versionCmd, serveCmd, chartCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("fpl-tui - Fantasy Premier League Terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)                    //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                     //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                       //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)                //nolint:forbidigo
}

// run is the main entry point of fpl-tui.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config, 1)

	loader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.LogLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting fpl-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	app, errApplication := NewApp(groupCtx, group, userConfig, loader.Path(), configUpdates)
	if errApplication != nil {
		return errors.Join(errApplication, errApp)
	}

	group.Go(func() error {
		app.Start(groupCtx)

		return nil
	})

	group.Go(func() error {
		// Stop the proxy and config forwarder once the ui exits.
		defer cancel()

		return app.Run()
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// serve runs the standalone proxy until interrupted.
func serve(cmd *cobra.Command, _ []string) error {
	userConfig, errConfig := config.NewLoader(nil, cfgFile).Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	config.LoggerInitStderr(userConfig.LogLevel())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, errServer := newProxy(userConfig)
	if errServer != nil {
		return errors.Join(errServer, errApp)
	}

	listener, errListen := proxy.Listen(ctx, userConfig.Proxy.ListenAddress)
	if errListen != nil {
		return errors.Join(errListen, errApp)
	}

	if err := server.Serve(ctx, listener); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// exportChart renders a single player's history without starting the ui.
func exportChart(cmd *cobra.Command, _ []string) error {
	userConfig, errConfig := config.NewLoader(nil, cfgFile).Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	config.LoggerInitStderr(userConfig.LogLevel())

	format, errFormat := chart.ParseFormat(chartFormat)
	if errFormat != nil {
		return errors.Join(errFormat, errApp)
	}

	metrics := chart.NewSelection(config.SplitList(chartMetrics)...)
	if len(metrics) == 0 {
		metrics = chart.NewSelection(userConfig.DefaultMetrics...)
	}

	outPath := chartOut
	if outPath == "" {
		outPath = fmt.Sprintf("%d.%s", chartID, strings.ToLower(strings.TrimPrefix(chartFormat, ".")))
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		// Stop the in-process proxy, if any, once the chart is written.
		defer cancel()

		client, errClient := newAPIClient(groupCtx, group, userConfig)
		if errClient != nil {
			return errClient
		}

		summary, errSummary := client.ElementSummary(groupCtx, chartID)
		if errSummary != nil {
			return errSummary
		}

		return writeChart(outPath, fmt.Sprintf("Player %d", chartID), chart.Bind(summary.History, metrics), format)
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	fmt.Printf("Chart saved to %s\n", outPath) //nolint:forbidigo

	return nil
}

func writeChart(outPath string, title string, series []chart.Series, format chart.Format) error {
	file, errCreate := os.Create(outPath)
	if errCreate != nil {
		return errCreate
	}

	if err := chart.Render(file, series, chart.Options{Title: title, Format: format}); err != nil {
		_ = file.Close()
		_ = os.Remove(outPath)

		return err
	}

	return file.Close()
}
