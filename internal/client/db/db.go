// Package db открывает *sql.DB для SQLite или Postgres и применяет миграции.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" // драйвер "pgx" для database/sql
	_ "modernc.org/sqlite"             // драйвер "sqlite" без cgo
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)"
)

//go:embed migrations
var migrationsFS embed.FS

type Client struct {
	db     *sql.DB
	driver string
}

// Open открывает соединение и проверяет его пингом.
// SQLite работает через одно соединение, запись сериализуется драйвером
func Open(ctx context.Context, driver, dsn string) (*Client, error) {
	var (
		db  *sql.DB
		err error
	)

	switch driver {
	case DriverSQLite:
		db, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
	case DriverPostgres:
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return &Client{db: db, driver: driver}, nil
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}
	return dsn + "?" + sqlitePragmas
}

// Migrate применяет все неприменённые миграции
func (c *Client) Migrate(ctx context.Context) error {
	dialect := goose.DialectSQLite3
	dir := "migrations/sqlite"
	if c.driver == DriverPostgres {
		dialect = goose.DialectPostgres
		dir = "migrations/postgres"
	}

	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migrations sub-fs: %w", err)
	}

	provider, err := goose.NewProvider(dialect, c.db, fsys)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Driver() string {
	return c.driver
}

// Placeholder формат плейсхолдеров squirrel для текущего диалекта
func (c *Client) Placeholder() sq.PlaceholderFormat {
	if c.driver == DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Close() error {
	return c.db.Close()
}
