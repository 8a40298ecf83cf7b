// Package localdb opens the client's SQLite database and applies the
// embedded goose migrations.
package localdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/sitecms/internal/client/migrations"
	"github.com/dmitrijs2005/sitecms/internal/filex"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// RunMigrations brings db up to the latest schema. Safe to call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	inMemory := path == MemoryDSN || strings.Contains(path, "mode=memory")
	if !inMemory {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("failed to prepare database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if inMemory {
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
