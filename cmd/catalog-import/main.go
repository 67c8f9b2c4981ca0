// Command catalog-import loads a products CSV into the PostgreSQL catalog.
// Run it once when switching a shop from the csv backend to postgres, and
// again whenever the data pipeline produces a new export.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/maitighar/kagaj/internal"
	"github.com/maitighar/kagaj/internal/catalog"
	"github.com/maitighar/kagaj/internal/postgres"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	logger.Info("Loading product catalog", "path", cfg.Catalog.CSVPath)
	csv, err := catalog.LoadCSV(cfg.Catalog.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	sqlDB, err := sql.Open("pgx", cfg.Catalog.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(ctx, sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Catalog.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	products := csv.Products()
	if err := postgres.NewCatalog(pool).Import(ctx, products); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info("Catalog imported", "products", len(products))
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
