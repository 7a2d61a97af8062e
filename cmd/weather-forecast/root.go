package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/i474232898/weather-forecast/internal/config"
	"github.com/i474232898/weather-forecast/internal/store"
	"github.com/i474232898/weather-forecast/internal/weather"
	"github.com/i474232898/weather-forecast/internal/weather/providers"
)

var globalFlags struct {
	Backend string
	Debug   bool
}

var rootCmd = &cobra.Command{
	Use:   "weather-forecast",
	Short: "Seven-day forecast service with unit conversion",
	Long: `weather-forecast fetches a multi-day forecast from WeatherAPI.com for the
last saved location, normalizes it into days, hours and a rolling 24-hour
window, and keeps every temperature in the preferred unit.

Quick start:
  weather-forecast location 38.72,-9.13
  weather-forecast refresh
  weather-forecast serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalFlags.Backend, "store", "", "store backend: bolt, redis or memory (overrides STORE_BACKEND)")
	pf.BoolVar(&globalFlags.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, refreshCmd, showCmd, unitCmd, themeCmd, locationCmd)
}

// deps is everything a command needs, built once per invocation.
type deps struct {
	cfg     *config.AppConfig
	logger  *zap.Logger
	service *weather.Service
	closers []func() error
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

// buildDeps resolves config, logging, the store backend and the service,
// then restores the stored forecast.
func buildDeps(ctx context.Context) (*deps, error) {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if globalFlags.Backend != "" {
		cfg.StoreBackend = globalFlags.Backend
	}
	if globalFlags.Debug {
		cfg.LogLevel = "debug"
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	if !envLoaded {
		logger.Debug("No .env file found, using environment only")
	}

	d := &deps{cfg: cfg, logger: logger}
	d.closers = append(d.closers, func() error { _ = logger.Sync(); return nil })

	st, err := openBackend(ctx, cfg)
	if err != nil {
		d.Close()
		return nil, err
	}
	if c, ok := st.(interface{ Close() error }); ok {
		d.closers = append(d.closers, c.Close)
	}
	if b, ok := st.(*store.BoltStore); ok {
		logger.Debug("Opened bolt store", zap.String("path", b.Path()))
	} else {
		logger.Debug("Opened store", zap.String("backend", cfg.StoreBackend))
	}

	if err := weather.SeedSettings(ctx, st, cfg.DefaultUnit, cfg.Location); err != nil {
		d.Close()
		return nil, fmt.Errorf("seeding settings: %w", err)
	}

	provider := providers.NewWeatherAPIProvider(
		&http.Client{Timeout: cfg.HTTPTimeout},
		providers.WeatherAPIOptions{
			APIKey:  cfg.WeatherAPIKey,
			BaseURL: cfg.WeatherAPIBaseURL,
			RPS:     cfg.ProviderRPS,
			Burst:   cfg.ProviderBurst,
		},
		logger.Named("provider"),
	)

	d.service = weather.NewService(
		weather.NewEngine(cfg.DefaultUnit),
		provider,
		st,
		st,
		logger.Named("service"),
		weather.WithForecastDays(cfg.ForecastDays),
	)
	if err := d.service.Start(ctx); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// backend is a store that also keeps the preferences.
type backend interface {
	weather.Store
	weather.Preferences
}

func openBackend(ctx context.Context, cfg *config.AppConfig) (backend, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendRedis:
		return store.OpenRedis(ctx, store.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
	case config.BackendBolt:
		return store.OpenBolt(cfg.StorePath)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	return zcfg.Build()
}
