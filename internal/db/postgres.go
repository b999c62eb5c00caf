package db

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Options identifies the PostgreSQL database backing the slot store.
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN renders the lib/pq connection string.
func (o Options) DSN() string {
	port := o.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		o.Host, port, o.User, o.Password, o.Name,
	)
}

// Connect creates a connection to PostgreSQL with OpenTelemetry instrumentation
func Connect(opts Options) (*sql.DB, error) {
	if opts.Host == "" || opts.User == "" || opts.Name == "" {
		return nil, fmt.Errorf("missing required database settings")
	}

	db, err := otelsql.Open("postgres", opts.DSN(),
		otelsql.WithAttributes(
			semconv.DBSystemPostgreSQL,
			semconv.DBName(opts.Name),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = otelsql.RegisterDBStatsMetrics(db,
		otelsql.WithAttributes(
			semconv.DBSystemPostgreSQL,
			semconv.DBName(opts.Name),
		),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to register database stats metrics")
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Slot writes are whole-document upserts.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)

	log.Info().Str("db", opts.Name).Msg("✓ Connected to PostgreSQL database (OpenTelemetry enabled)")
	return db, nil
}
