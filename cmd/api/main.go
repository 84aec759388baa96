package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/makerstech/storefront-backend/api/routes"
	cartsvc "github.com/makerstech/storefront-backend/internal/cart"
	catalogsvc "github.com/makerstech/storefront-backend/internal/catalog"
	chatsvc "github.com/makerstech/storefront-backend/internal/chat"
	contactsvc "github.com/makerstech/storefront-backend/internal/contact"
	inventorysvc "github.com/makerstech/storefront-backend/internal/inventory"
	"github.com/makerstech/storefront-backend/pkg/auth/session"
	"github.com/makerstech/storefront-backend/pkg/config"
	"github.com/makerstech/storefront-backend/pkg/db"
	"github.com/makerstech/storefront-backend/pkg/logger"
	"github.com/makerstech/storefront-backend/pkg/metrics"
	"github.com/makerstech/storefront-backend/pkg/migrate"
	"github.com/makerstech/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
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

	sessionManager, err := session.NewManager(redisClient, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	chatMetrics := metrics.NewChatMetrics(registry)

	catalogRepo := catalogsvc.NewRepository(dbClient.DB())

	catalogService, err := catalogsvc.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.NewStore(), catalogRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	inventoryService, err := inventorysvc.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	chatService, err := chatsvc.NewService(cfg.Chat, http.DefaultClient, logg, chatMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create chat service", err)
		os.Exit(1)
	}

	contactService, err := contactsvc.NewService(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Cache:       redisClient,
			Sessions:    sessionManager,
			Catalog:     catalogService,
			Cart:        cartService,
			Inventory:   inventoryService,
			Chat:        chatService,
			Contact:     contactService,
			HTTPMetrics: httpMetrics,
			Registry:    registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
