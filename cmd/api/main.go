package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/storefront-gate/api/routes"
	"github.com/angelmondragon/storefront-gate/internal/accounts"
	"github.com/angelmondragon/storefront-gate/internal/cart"
	"github.com/angelmondragon/storefront-gate/internal/gate"
	"github.com/angelmondragon/storefront-gate/internal/guard"
	"github.com/angelmondragon/storefront-gate/internal/profiles"
	"github.com/angelmondragon/storefront-gate/internal/theme"
	"github.com/angelmondragon/storefront-gate/pkg/auth/session"
	"github.com/angelmondragon/storefront-gate/pkg/config"
	"github.com/angelmondragon/storefront-gate/pkg/db"
	"github.com/angelmondragon/storefront-gate/pkg/kv"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
	"github.com/angelmondragon/storefront-gate/pkg/metrics"
	"github.com/angelmondragon/storefront-gate/pkg/migrate"
	"github.com/angelmondragon/storefront-gate/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-gate"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-gate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionChecker, err := session.NewChecker(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create session checker", err)
		os.Exit(1)
	}

	store, err := kv.NewDBStore(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create kv store", err)
		os.Exit(1)
	}

	accountsClient, err := accounts.NewClient(cfg.JWT, store, sessionChecker, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts client", err)
		os.Exit(1)
	}

	readinessGate := gate.New(accountsClient)

	profileRepo, err := profiles.NewRepository(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create profiles repository", err)
		os.Exit(1)
	}

	routeGuard, err := guard.New(readinessGate, accountsClient, profileRepo, guard.NewTable(guard.DefaultRoutes()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create route guard", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(context.Background(), store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	themeStore, err := theme.NewStore(context.Background(), store, logg, cfg.Theme.DefaultDark)
	if err != nil {
		logg.Error(context.Background(), "failed to create theme store", err)
		os.Exit(1)
	}

	navigationMetrics := metrics.NewNavigationMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront gate")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg,
			dbClient, redisClient,
			routeGuard, readinessGate,
			cartStore, themeStore,
			navigationMetrics,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "server stopped unexpectedly", err)
		os.Exit(1)
	}
}
