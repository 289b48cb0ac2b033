package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB handle together with the SQL dialect details
// the repositories need: a squirrel statement builder configured with the
// driver's placeholder format and a driver-specific error classificator.
//
// The handle is constructed once at startup, injected into every repository,
// and closed on shutdown; no package-level connection state exists.
type DB struct {
	*sql.DB

	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens and pings a PostgreSQL connection described by cfg.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driver:             "pgx",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}

	return db, nil
}

// Migrate applies all embedded schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
