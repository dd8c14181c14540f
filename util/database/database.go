package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	migratedb "github.com/golang-migrate/migrate/v4/database"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// New opens the store and applies pending migrations. A postgres:// DSN goes
// through the pgx stdlib driver; anything else is treated as a SQLite file
// path (":memory:" included).
func New(dsn string) (*sql.DB, error) {
	db, backend, err := open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, backend); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func open(dsn string) (*sql.DB, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}
		return db, "pgx5", nil
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}
	// Every pool slot is a separate connection; a second connection to
	// :memory: would see an empty database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	return db, "sqlite", nil
}

// Migrate applies all pending embedded migrations.
func Migrate(db *sql.DB, backend string) error {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	var driver migratedb.Driver
	switch backend {
	case "pgx5":
		driver, err = pgx.WithInstance(db, &pgx.Config{})
	case "sqlite":
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, backend, driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
