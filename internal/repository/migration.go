// filepath: internal/repository/migration.go
package repository

import (
	"errors"
	"fmt"

	"habithub/internal/db/migrations"
	"habithub/internal/logging"

	"github.com/pressly/goose/v3"
)

// MigrationsDir is the root of the embedded migrations FS.
const MigrationsDir = "."

// ConfigureGoose points goose at the embedded migrations and the SQLite dialect.
func ConfigureGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// MigrateUp applies all pending migrations.
func (s *Repository) MigrateUp() error {
	if err := ConfigureGoose(); err != nil {
		return err
	}
	return goose.Up(s.DB, MigrationsDir)
}

// MigrateDown rolls back the most recent migration.
func (s *Repository) MigrateDown() error {
	if err := ConfigureGoose(); err != nil {
		return err
	}
	return goose.Down(s.DB, MigrationsDir)
}

// MigrationStatus logs the state of every migration.
func (s *Repository) MigrationStatus() error {
	if err := ConfigureGoose(); err != nil {
		return err
	}
	return goose.Status(s.DB, MigrationsDir)
}

// EnsureSchemaBootstrapped migrates a brand-new database to the latest
// version. A database that already has a goose version table is left
// alone; upgrading it is the job of `habithub migrate up`.
func (s *Repository) EnsureSchemaBootstrapped() error {
	exists, err := s.versionTableExists()
	if err != nil {
		return err
	}
	if exists {
		logging.Log.Debug("Database already initialized, skipping bootstrap.")
		return nil
	}

	logging.Log.Info("Fresh database detected, applying all migrations...")
	if err := s.MigrateUp(); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// ValidateSchema returns an error unless the database is at the latest
// embedded migration version.
func (s *Repository) ValidateSchema() error {
	exists, err := s.versionTableExists()
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("database schema is outdated: no migrations applied, run 'habithub migrate up'")
	}

	if err := ConfigureGoose(); err != nil {
		return err
	}
	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	all, err := goose.CollectMigrations(MigrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	latest, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to determine latest migration: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("database schema is outdated: version %d, expected %d, run 'habithub migrate up'", current, latest.Version)
	}
	return nil
}

func (s *Repository) versionTableExists() (bool, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return count > 0, nil
}
