package db

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/diewo77/pier2-orders/internal/config"
	"github.com/diewo77/pier2-orders/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres and sqlite3 drivers for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the schema up to date. With cfg.Migrations set it runs the
// embedded SQL migrations through golang-migrate; otherwise it falls back to
// gorm AutoMigrate (dev convenience). Either way the four tables must exist after.
func Migrate(gdb *gorm.DB, cfg config.DatabaseConfig) error {
	if cfg.Migrations {
		if err := runSQLMigrations(cfg); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range models.All() {
			if err := gdb.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}
	for _, table := range models.TableNames {
		if !gdb.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// migrationURL turns the app DSN into the URL golang-migrate expects.
func migrationURL(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return ToURLDSN(NormalizeDSN(cfg.DSN)), nil
	case config.DriverSQLite, "":
		if strings.Contains(cfg.DSN, "mode=memory") || cfg.DSN == ":memory:" {
			return "", errors.New("sql migrations need a file backed sqlite database")
		}
		return "sqlite3://" + strings.TrimPrefix(cfg.DSN, "file:"), nil
	}
	return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func migrationSource(driver string) (fs.FS, error) {
	dir := "migrations/sqlite"
	if driver == config.DriverPostgres {
		dir = "migrations/postgres"
	}
	return fs.Sub(migrationsFS, dir)
}

// runSQLMigrations applies every pending up migration for the configured driver.
func runSQLMigrations(cfg config.DatabaseConfig) error {
	dbURL, err := migrationURL(cfg)
	if err != nil {
		return err
	}
	sub, err := migrationSource(cfg.Driver)
	if err != nil {
		return err
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("[DB] closing migrator: source=%v db=%v", srcErr, dbErr)
		}
	}()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	version, dirty, verr := m.Version()
	if verr == nil {
		log.Printf("[DB] schema at version %d (dirty=%v)", version, dirty)
	}
	return nil
}
