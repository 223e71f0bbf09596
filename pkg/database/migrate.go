package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SscSPs/erp_backoffice/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Migration drivers accepted by MigrateUp and MigrateDown.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MigrateUp applies every pending migration. It reports whether anything changed.
func MigrateUp(driver, dsn string) (bool, error) {
	return runMigrations(driver, dsn, (*migrate.Migrate).Up)
}

// MigrateDown reverts every applied migration.
func MigrateDown(driver, dsn string) (bool, error) {
	return runMigrations(driver, dsn, (*migrate.Migrate).Down)
}

func runMigrations(driver, dsn string, step func(*migrate.Migrate) error) (changed bool, err error) {
	m, err := newMigrator(driver, dsn)
	if err != nil {
		return false, err
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(sourceErr, dbErr)
		}
	}()

	if err := step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return true, nil
}

// newMigrator opens a dedicated connection; closing the migrator closes it.
func newMigrator(driver, dsn string) (*migrate.Migrate, error) {
	var (
		sqlDriver string
		files     fs.FS
		dir       string
	)
	switch driver {
	case DriverPostgres:
		sqlDriver, files, dir = "pgx", migrations.Postgres, "postgres"
	case DriverSQLite:
		sqlDriver, files, dir = "sqlite", migrations.SQLite, "sqlite"
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var instance migratedb.Driver
	if driver == DriverPostgres {
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	} else {
		instance, err = sqlite.WithInstance(db, &sqlite.Config{})
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	source, err := iofs.New(files, dir)
	if err != nil {
		instance.Close()
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		instance.Close()
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}
