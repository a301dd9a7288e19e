package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dtroode/diagnosis-server/internal/repository/postgres/migrations"
)

const driverName = "pgx"

type Connection struct {
	*sql.DB
}

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// NewConnection opens the database, checks it is reachable and applies migrations.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	conn := &Connection{DB: db}
	if err := conn.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := conn.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return conn, nil
}

// Migrate applies all pending migrations.
func (c *Connection) Migrate(ctx context.Context) error {
	if err := gooseUp(ctx, c.DB); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
