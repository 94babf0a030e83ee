package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Config selects and locates the store. SQLite is the default file-backed
// store; Postgres is accepted for deployments that already run one.
type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DB is the shared store handle
type DB struct {
	*sqlx.DB
	dialect dialect
	metrics *metrics.Metrics
}

// Open connects to the configured store and verifies the connection.
func Open(cfg Config, m *metrics.Metrics) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	var dsn string
	switch driver {
	case DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store requires a path")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	case DriverPostgres:
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One writer at a time for the file-backed store
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, dialect: dialectFor(driver), metrics: m}, nil
}

// WithTx executes a function within a transaction. The transaction is
// rolled back on every path that does not commit.
func (db *DB) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// insert runs one INSERT ... RETURNING id in its own transaction.
func (db *DB) insert(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	start := time.Now()

	var id int64
	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, tx.Rebind(query), args...).Scan(&id)
	})

	db.metrics.ObserveDB(op, time.Since(start).Seconds(), err)
	if err != nil {
		return 0, errors.NewStorage(fmt.Errorf("failed to %s: %w", op, err))
	}
	return id, nil
}
