package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/meaeduarda/cronossolutions/internal/catalog"
	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/http/handlers"
	httpapi "github.com/meaeduarda/cronossolutions/internal/http/httpapi"
	"github.com/meaeduarda/cronossolutions/internal/infra"
	"github.com/meaeduarda/cronossolutions/internal/infra/geoip"
	"github.com/meaeduarda/cronossolutions/internal/middleware"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
	"github.com/meaeduarda/cronossolutions/internal/visits"
	"github.com/meaeduarda/cronossolutions/internal/whatsapp"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg)

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("failed to load plan catalog")
		}
	}
	logger.Info().Str("version", cat.Version()).Int("plans", len(cat.Keys())).Msg("plan catalog loaded")

	format, err := pricing.NewFormatter(cfg.DisplayLocale, cfg.DisplayCurrency, cfg.CurrencySymbol)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid display currency")
	}
	dispatcher, err := whatsapp.NewDispatcher(cfg.WhatsAppEndpoint, cfg.WhatsAppPhone)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid whatsapp settings")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, country hints disabled")
	} else if resolver != nil {
		defer resolver.Close()
		lookup = resolver.Lookup
	}

	ctx := context.Background()
	var visitStore domain.VisitRepository = visits.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		store := visits.NewPostgresStore(infra.NewSQLRunner(dbpool, infra.Component(logger, "sql")))
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare visits table")
		}
		visitStore = store
	}

	app := handlers.NewApp(cat, format, dispatcher, visitStore, logger)
	router := httpapi.NewRouter(app, httpapi.Options{
		DefaultLocale:   cfg.DisplayLocale,
		CountryLookup:   lookup,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("pricing site listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
