package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wolfman30/smilebright-dental/internal/api/router"
	"github.com/wolfman30/smilebright-dental/internal/app/bootstrap"
	"github.com/wolfman30/smilebright-dental/internal/booking"
	appconfig "github.com/wolfman30/smilebright-dental/internal/config"
	"github.com/wolfman30/smilebright-dental/internal/media"
	"github.com/wolfman30/smilebright-dental/internal/observability/metrics"
	"github.com/wolfman30/smilebright-dental/internal/site"
	"github.com/wolfman30/smilebright-dental/internal/visitor"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

func main() {
	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting smilebright site",
		"env", cfg.Env,
		"port", cfg.Port,
		"session_store", cfg.SessionStore,
	)

	srv, err := newApp(context.Background(), cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("failed to initialize site", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.server.Addr)
		if err := srv.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// app owns the HTTP server and the resources released on shutdown.
type app struct {
	server  *http.Server
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newApp(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, reg *prometheus.Registry) (*app, error) {
	a := &app{}

	secret, err := bootstrap.ResolveSessionSecret(cfg, logger)
	if err != nil {
		return nil, err
	}
	signer, err := visitor.NewSigner(secret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	redisClient, err := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if err != nil {
		return nil, err
	}
	var health site.Pinger
	if redisClient != nil {
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		health = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	siteMetrics := metrics.NewSiteMetrics(reg)

	submitter, err := booking.NewFormSubmitter(cfg.BookingEndpointURL, cfg.BookingTimeout, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	deps := bootstrap.BuildBookingDeps(cfg, redisClient, submitter, siteMetrics, logger)
	registry := booking.NewRegistry(deps, cfg.VisitorIdleTTL)
	a.closers = append(a.closers, registry.Close)

	siteHandler, err := site.NewHandler(site.Options{
		Registry:        registry,
		Avatars:         media.NewAvatars(cfg.AvatarBaseURL),
		Catalog:         siteMetrics,
		Logger:          logger,
		BaseURL:         cfg.PublicBaseURL,
		GAMeasurementID: cfg.GAMeasurementID,
		ClinicPhone:     cfg.ClinicPhone,
		AutoClose:       cfg.BookingAutoClose,
		SecureCookies:   cfg.IsProduction(),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		Site:               siteHandler,
		Signer:             signer,
		Health:             health,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SecureCookies:      cfg.IsProduction(),
		BookingRateLimit:   cfg.BookingRateLimit,
	})

	// Submissions can hold a request for the full booking timeout.
	writeTimeout := 15 * time.Second
	if cfg.BookingTimeout+5*time.Second > writeTimeout {
		writeTimeout = cfg.BookingTimeout + 5*time.Second
	}
	a.server = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return a, nil
}
