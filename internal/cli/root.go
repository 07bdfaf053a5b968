// Package cli implements dashctl, a terminal client for the dashboard: it
// runs the same search and price analytics as the HTTP API and prints
// tables instead of JSON.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/celesia/flight-insights/internal/adapter/upstream"
	"github.com/celesia/flight-insights/internal/config"
	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/logger"
	"github.com/celesia/flight-insights/internal/infrastructure/timeutil"
	"github.com/celesia/flight-insights/internal/usecase"
)

// globalFlags holds the persistent flag values shared by every command.
type globalFlags struct {
	Upstream string
	Timeout  time.Duration
	TZ       string
	NoSample bool
	JSON     bool
	Verbose  bool
}

// ServiceFactory builds the flight search service for a resolved config.
type ServiceFactory func(cfg *config.Config, log zerolog.Logger) domain.FlightSearchService

// Option customizes the command tree.
type Option func(*app)

// WithServiceFactory replaces the HTTP upstream client.
func WithServiceFactory(f ServiceFactory) Option {
	return func(a *app) { a.newService = f }
}

// WithConfigLoader replaces config.Load.
func WithConfigLoader(load func() (*config.Config, error)) Option {
	return func(a *app) { a.loadConfig = load }
}

// WithClock sets the clock used for timestamps.
func WithClock(c timeutil.Clock) Option {
	return func(a *app) { a.clock = c }
}

type app struct {
	flags      globalFlags
	newService ServiceFactory
	loadConfig func() (*config.Config, error)
	clock      timeutil.Clock
}

// deps is what a command needs once flags and config are resolved.
type deps struct {
	cfg     *config.Config
	log     zerolog.Logger
	useCase usecase.DashboardUseCase
	loc     *time.Location
	clock   timeutil.Clock
}

func defaultServiceFactory(cfg *config.Config, log zerolog.Logger) domain.FlightSearchService {
	return upstream.NewClient(upstream.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		Timeout:     cfg.Upstream.Timeout,
		RatePerSec:  cfg.Upstream.RatePerSec,
		Burst:       cfg.Upstream.Burst,
		MaxAttempts: cfg.Upstream.MaxAttempts,
	}, upstream.WithLogger(log.With().Str("component", "upstream").Logger()))
}

// NewRootCommand builds the dashctl command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		newService: defaultServiceFactory,
		loadConfig: config.Load,
		clock:      timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "dashctl",
		Short: "dashctl: flight search and price insights in the terminal",
		Long: `dashctl queries the flight search service and prints offers, price
statistics and booking advice.

Settings come from the same environment variables as the server
(UPSTREAM_BASE_URL, DISPLAY_TIMEZONE, ...); flags override them.

Quick start:
  dashctl search GRU PTY 2025-12-15 --passengers 2
  dashctl trends GRU PTY --days 60
  dashctl summarize history.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.Upstream, "upstream", "",
		"flight search service base URL (overrides UPSTREAM_BASE_URL)")
	pf.DurationVar(&a.flags.Timeout, "timeout", 0,
		"per-call timeout, e.g. 3s (overrides TIMEOUT_SEARCH and TIMEOUT_TRENDS)")
	pf.StringVar(&a.flags.TZ, "tz", "",
		"display time zone, e.g. America/Panama or Local (overrides DISPLAY_TIMEZONE)")
	pf.BoolVar(&a.flags.NoSample, "no-sample", false,
		"never substitute sample price history for an empty series")
	pf.BoolVar(&a.flags.JSON, "json", false,
		"print JSON instead of tables")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false,
		"log upstream calls and retries to stderr")

	root.AddCommand(
		newSearchCommand(a),
		newTrendsCommand(a),
		newSummarizeCommand(a),
		newCompareCommand(a),
	)
	return root
}

// Execute runs dashctl with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildDeps loads config, applies flag overrides and wires the use case.
// Called at the start of each command's RunE.
func (a *app) buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	if a.flags.Upstream != "" {
		cfg.Upstream.BaseURL = a.flags.Upstream
	}
	if a.flags.Timeout > 0 {
		cfg.Timeouts.Search = a.flags.Timeout
		cfg.Timeouts.Trends = a.flags.Timeout
		cfg.Upstream.Timeout = a.flags.Timeout
	}
	if a.flags.TZ != "" {
		cfg.Analytics.DisplayTimezone = a.flags.TZ
	}
	if a.flags.NoSample {
		cfg.Analytics.SampleFallback = false
	}

	loc, err := timeutil.DisplayLocation(cfg.Analytics.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("--tz: %w", err)
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Format = "console"
	logCfg.ServiceName = "dashctl"
	logCfg.Level = "warn"
	if a.flags.Verbose {
		logCfg.Level = "debug"
	}
	log := logger.NewWithOutput(logCfg, cmd.ErrOrStderr()).Logger

	uc := usecase.NewDashboardUseCase(a.newService(cfg, log), &usecase.Config{
		SearchTimeout:  cfg.Timeouts.Search,
		TrendsTimeout:  cfg.Timeouts.Trends,
		TrendsDaysBack: cfg.Analytics.TrendsDaysBack,
		SampleFallback: cfg.Analytics.SampleFallback,
		Location:       loc,
	}, usecase.WithLogger(log), usecase.WithClock(a.clock))

	return &deps{cfg: cfg, log: log, useCase: uc, loc: loc, clock: a.clock}, nil
}
