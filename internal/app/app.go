package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vpsworth/internal/adapters"
	"vpsworth/internal/adapters/cache"
	"vpsworth/internal/adapters/httpclient"
	"vpsworth/internal/adapters/postgres"
	"vpsworth/internal/api"
	"vpsworth/internal/config"
	"vpsworth/internal/domain"
	"vpsworth/internal/metrics"
	"vpsworth/internal/platform/db"
	httpserver "vpsworth/internal/platform/http"
	"vpsworth/internal/qr"
	"vpsworth/internal/rate"
	ratehandler "vpsworth/internal/rate/handler"
	"vpsworth/internal/render"
	"vpsworth/internal/worth"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the warmer
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Rate cache
	rateCache, err := cache.NewRateCache(256)
	if err != nil {
		logrus.WithError(err).Error("Failed to create rate cache")
		return err
	}
	defer rateCache.Close()

	// Optional snapshot store
	var snapshotRepo adapters.RateSnapshotRepository
	if appCfg.DbServer.Enabled() {
		if err = db.Migrate(startupCtx, appCfg.DbServer.GetConnectionStr()); err != nil {
			logrus.WithError(err).Error("Failed to run migrations")
			return err
		}
		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		snapshotRepo = postgres.NewSnapshotRepository(pool)
		logrus.Info("✅ Postgres snapshot store connected")
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Rate providers in priority order
	providers := []adapters.RateProvider{
		httpclient.NewExchangeRateAPIClient(baseHTTPClient, appCfg.Providers.ExchangeRateAPIBaseURL),
		httpclient.NewOpenERAPIClient(baseHTTPClient, appCfg.Providers.OpenERAPIBaseURL),
		httpclient.NewExchangeRateHostClient(baseHTTPClient, appCfg.Providers.ExchangeRateHostBaseURL),
	}

	// Resolver
	rateMetrics := metrics.NewRateMetrics()
	resolver := rate.NewResolver(providers, rateCache, snapshotRepo, rateMetrics)
	if err = resolver.WarmFromSnapshots(startupCtx); err != nil {
		// A cold cache is not fatal.
		logrus.WithError(err).Warn("Failed to pre-seed cache from snapshots")
	}

	// Cache warmer
	if appCfg.Warmer.IntervalSeconds > 0 {
		pairs := warmerPairs(appCfg.Warmer.Pairs)
		warmer := rate.NewWarmer(resolver, pairs, time.Duration(appCfg.Warmer.IntervalSeconds)*time.Second)
		defer func() {
			if shutDownErr := warmer.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Warmer shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := warmer.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start cache warmer")
			return startErr
		}
		logrus.Info("✅ Cache warmer activation successful")
	}

	// Handlers and router
	validator := rate.NewValidator(rate.SupportedCurrencies)
	rateHandler := ratehandler.NewRateHandler(validator, resolver)
	worthHandler := worth.NewHandler(validator, resolver)
	renderHandler := render.NewHandler(validator, resolver)
	qrHandler := qr.NewHandler()
	router := api.NewRouter(rateHandler, worthHandler, renderHandler, qrHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// warmerPairs parses "USD-CNY" strings, dropping anything unsupported.
func warmerPairs(raw []string) []domain.CurrencyPair {
	validator := rate.NewValidator(rate.SupportedCurrencies)
	pairs := make([]domain.CurrencyPair, 0, len(raw))
	for _, s := range raw {
		from, to, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "-")
		if !ok || validator.ValidateCurrencyPair(from, to) != nil || from == to {
			logrus.Warnf("Skipping invalid warmer pair %q", s)
			continue
		}
		pairs = append(pairs, domain.CurrencyPair{From: from, To: to})
	}
	return pairs
}
