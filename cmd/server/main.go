package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/maitighar/kagaj/internal"
	"github.com/maitighar/kagaj/internal/catalog"
	"github.com/maitighar/kagaj/internal/cookie"
	"github.com/maitighar/kagaj/internal/domain"
	"github.com/maitighar/kagaj/internal/handler"
	"github.com/maitighar/kagaj/internal/handler/storefront"
	"github.com/maitighar/kagaj/internal/middleware"
	"github.com/maitighar/kagaj/internal/postgres"
	"github.com/maitighar/kagaj/internal/router"
	"github.com/maitighar/kagaj/internal/telemetry"
)

const release = "kagaj-storefront"

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Optional error tracking
	flush, err := telemetry.InitSentry(telemetry.Config(cfg.Sentry), release)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flush()

	// Initialize the product catalog
	var products domain.Catalog
	switch cfg.Catalog.Backend {
	case "postgres":
		logger.Info("Connecting to database...")
		sqlDB, err := sql.Open("pgx", cfg.Catalog.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("Running database migrations...")
		if err := internal.RunMigrations(ctx, sqlDB); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		pool, err := pgxpool.New(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create connection pool: %w", err)
		}
		defer pool.Close()

		products = postgres.NewCatalog(pool)
	default:
		logger.Info("Loading product catalog", "path", cfg.Catalog.CSVPath)
		products, err = catalog.LoadCSV(cfg.Catalog.CSVPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	// Load templates with renderer
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer("web/templates")
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize handlers
	cookieCfg := cookie.NewConfig(cfg.Cookie.Domain, cfg.Cookie.Secure)
	catalogHandler := storefront.NewCatalogHandler(products, renderer)
	cartHandler := storefront.NewCartHandler(cookieCfg, renderer)

	// Build router
	metrics := middleware.NewMetrics("kagaj")
	r := router.New(
		middleware.RequestID,
		middleware.WithRequestLogger(logger),
		metrics.Middleware,
	)

	r.Get("/shop", catalogHandler.List)
	r.Get("/shop/products/{page}", catalogHandler.Detail)
	r.Get("/shop/products/{page}/variant", catalogHandler.SelectVariant)
	r.Post("/cart/add", cartHandler.Add)
	r.Post("/cart/clear", cartHandler.Clear)
	r.Get("/cart", cartHandler.View)
	r.Handle(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Static("/static", "web/static")

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Env, "catalog", cfg.Catalog.Backend)
	return http.ListenAndServe(addr, r)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
