// Package main is the entry point for the flight insights dashboard API.
//
//	@title						Celes.ia Flight Insights API
//	@version					1.0.0
//	@description				Normalizes flight searches, queries the flight search service and returns display-ready offers with price statistics and booking advice.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/celesia/flight-insights/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/celesia/flight-insights/docs"

	"github.com/celesia/flight-insights/internal/adapter/cache"
	dashhttp "github.com/celesia/flight-insights/internal/adapter/http"
	"github.com/celesia/flight-insights/internal/adapter/http/middleware"
	"github.com/celesia/flight-insights/internal/adapter/upstream"
	"github.com/celesia/flight-insights/internal/config"
	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/logger"
	"github.com/celesia/flight-insights/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.LoggerConfig())
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("timezone", cfg.Analytics.DisplayTimezone).
		Msg("Configuration loaded")

	service, closeCache := setupService(cfg, log)
	defer closeCache()

	uc := usecase.NewDashboardUseCase(service, &usecase.Config{
		SearchTimeout:  cfg.Timeouts.Search,
		TrendsTimeout:  cfg.Timeouts.Trends,
		TrendsDaysBack: cfg.Analytics.TrendsDaysBack,
		SampleFallback: cfg.Analytics.SampleFallback,
		Location:       cfg.Location(),
	}, usecase.WithLogger(log.WithComponent("dashboard").Logger))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	dashhttp.RegisterRoutes(e, dashhttp.NewDashboardHandler(uc))
	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log.Logger)
}

// setupService builds the upstream client and, when enabled, puts the Redis
// cache in front of it. A cache that cannot be reached at startup is skipped
// so the dashboard still serves live data.
func setupService(cfg *config.Config, log *logger.Logger) (domain.FlightSearchService, func()) {
	var service domain.FlightSearchService = upstream.NewClient(upstream.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		Timeout:     cfg.Upstream.Timeout,
		RatePerSec:  cfg.Upstream.RatePerSec,
		Burst:       cfg.Upstream.Burst,
		MaxAttempts: cfg.Upstream.MaxAttempts,
	}, upstream.WithLogger(log.WithComponent("upstream").Logger))

	if !cfg.Cache.Enabled {
		return service, func() {}
	}

	store, err := cache.NewRedisStore(context.Background(), cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Redis unavailable, caching disabled")
		return service, func() {}
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("Upstream cache enabled")
	cached := cache.NewCachedService(service, store, cfg.Cache.TTL, log.Logger)
	return cached, func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis connection")
		}
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
