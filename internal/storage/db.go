// Package storage opens the local SQLite database, applies schema migrations,
// and vends the collection repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/complaintdesk/internal/repositories/complaints"
	"github.com/dmitrijs2005/complaintdesk/internal/repositories/users"
	"github.com/dmitrijs2005/complaintdesk/internal/storage/migrations"
	"github.com/pressly/goose/v3"
)

// Store bundles the open database handle with the two collection
// repositories. One Store backs one session.
type Store struct {
	DB         *sql.DB
	Users      users.Repository
	Complaints complaints.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, runs
// migrations, and returns a ready Store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{
		DB:         db,
		Users:      users.NewSQLiteRepository(db),
		Complaints: complaints.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
