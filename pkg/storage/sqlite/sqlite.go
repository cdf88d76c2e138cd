// Package sqlite implements the storage interfaces on top of SQLite using the
// pure Go modernc.org/sqlite driver and goqu. It is meant for local runs and
// hermetic tests; the schema and behavior match the postgres backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"cosmic/pkg/logger"
	"cosmic/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const dialect = "sqlite3"

// Options defines the configuration parameters for the SQLite database.
type Options struct {
	// Path is the database file. MemoryPath keeps the database in memory for
	// the lifetime of the storage instance.
	Path string
	// BusyTimeout is how long a connection waits on a locked database.
	BusyTimeout time.Duration
	// MaxOpenConnections is the maximum number of open connections to the
	// database file. In-memory databases always use a single connection.
	MaxOpenConnections int
	// ConnMaxLifetime is the maximum amount of time a connection may be reused.
	ConnMaxLifetime time.Duration
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the subset of goqu used to construct queries. Both a goqu
// database handle and a transaction handle implement it.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// Ensure SQLite implements storage.Storage and storage.TxStorage.
var (
	_ storage.Storage   = (*SQLite)(nil)
	_ storage.TxStorage = (*SQLite)(nil)
)

// SQLite implements storage.Storage and storage.TxStorage.
type SQLite struct {
	// DB is either a *sql.DB or, inside a transaction, a *sql.Tx.
	DB DB
	// Builder is the goqu handle bound to DB.
	Builder Builder
}

// dsn builds the driver connection string. Foreign keys are off by default in
// SQLite and have to be enabled on every connection.
func dsn(options Options) string {
	busy := options.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))

	if options.Path == MemoryPath {
		return "file::memory:?" + q.Encode()
	}

	return "file:" + options.Path + "?" + q.Encode()
}

// New opens (and creates when missing) the SQLite database described by options.
func New(ctx context.Context, options Options) (*SQLite, error) {
	if options.Path == "" {
		options.Path = MemoryPath
	}
	if options.Path != MemoryPath {
		dir := filepath.Dir(options.Path)
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("could not create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(options))
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite: %w", err)
	}

	if options.Path == MemoryPath {
		// every connection would see its own empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		if options.MaxOpenConnections > 0 {
			db.SetMaxOpenConns(options.MaxOpenConnections)
		}
		if options.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(options.ConnMaxLifetime)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not reach sqlite: %w", err)
	}

	return &SQLite{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
	}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("could not close sqlite: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called outside a transaction.
func (s *SQLite) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called outside a transaction.
func (s *SQLite) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction. It returns storage.ErrAlreadyInTx when called
// on a transactional handle.
func (s *SQLite) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &SQLite{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx runs cb inside a transaction, committing when cb returns nil and
// rolling back otherwise.
func (s *SQLite) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Warn(ctx, "could not rollback tx", zap.Error(rbErr))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// changed reports whether res touched at least one row.
func changed(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
