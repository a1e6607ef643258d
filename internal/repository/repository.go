// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"habithub/internal/config"
	"habithub/internal/logging"
	"habithub/internal/streak"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite" // SQLite driver
)

// ErrHabitNotFound is returned when a habit id does not exist.
var ErrHabitNotFound = errors.New("habit not found")

// defaultCacheTTL is used when the config carries no parsed TTL.
const defaultCacheTTL = 5 * time.Minute

// The repository is the completion store the streak engine reads from.
var _ streak.Store = (*Repository)(nil)

// Repository wraps the SQLite connection, a read cache and the query builder.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens (or creates) the SQLite database at cfg.Database.Path.
// Foreign keys are enabled so deleting a habit cascades to its completions.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	logging.Log.Debugf("Opened database at %s (cache ttl %s)", cfg.Database.Path, ttl)
	return &Repository{
		DB:      db,
		Cache:   cache.New(ttl, 2*ttl),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the database connection.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// BeginTx starts a transaction.
func (s *Repository) BeginTx() (*Tx, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, builder: s.Builder}, nil
}
