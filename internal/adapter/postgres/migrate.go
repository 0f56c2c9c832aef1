package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/lexdb/migrations"
)

// WithMigrator opens dsn through database/sql (goose requires *sql.DB) and
// calls fn with a goose provider over the embedded migrations.
func WithMigrator(ctx context.Context, dsn string, fn func(p *goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}

// MigrateUp applies every pending migration.
func MigrateUp(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	var results []*goose.MigrationResult
	err := WithMigrator(ctx, dsn, func(p *goose.Provider) error {
		var err error
		results, err = p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		return nil
	})
	return results, err
}
