package internal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maitighar/kagaj/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations brings the catalog schema up to date from the embedded
// migration files. Both the server's postgres backend and the import command
// run this before touching the catalog tables.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.MigrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run catalog migrations: %w", err)
	}

	return nil
}
