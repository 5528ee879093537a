// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/monitoring"
	"github.com/canonical/diagram-service/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type txContextKey struct{}

var txKey txContextKey

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx holds per-request transaction state. The transaction itself is only
// opened on the first statement that runs against it, so read-only code paths
// inside a WithTx scope never pay for one.
type lazyTx struct {
	db        *sql.DB
	tx        TxInterface
	err       error
	committed bool
	cancel    context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}
	// A failed open is sticky so a later statement cannot open a fresh
	// transaction halfway through a scope whose earlier statements failed.
	if lt.err != nil {
		return nil, lt.err
	}

	// Detached from the request context so a client abort rolls back through
	// our defer instead of leaving the driver to cancel mid-commit. The
	// timeout bounds abandoned transactions.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		lt.err = err
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

type DBClient struct {
	pool     *pgxpool.Pool
	db       *sql.DB
	dbRunner sq.BaseRunner

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a statement builder bound to the transaction scoped to
// ctx, or to the shared pool when no transaction scope is active. If a scope
// is active but the transaction cannot be opened, the builder fails every
// statement with that error: running the scope's statements on the pool
// instead would auto-commit them outside the transaction.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lt, ok := ctx.Value(txKey).(*lazyTx); ok {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("failed to open transaction: %v", err)
			return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(errRunner{err: fmt.Errorf("failed to open transaction: %w", err)})
		}

		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.dbRunner)
}

// errRunner satisfies a transaction scope whose transaction never opened.
type errRunner struct {
	err error
}

func (r errRunner) Exec(query string, args ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r errRunner) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r errRunner) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r errRunner) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r errRunner) QueryRowContext(ctx context.Context, query string, args ...interface{}) sq.RowScanner {
	return errRow{err: r.err}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...interface{}) error {
	return r.err
}

// WithTx runs fn inside a transaction scope. The transaction is committed if
// fn succeeds, rolled back otherwise. If fn never touched the database, no
// transaction is opened at all.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db}

	defer func() {
		if lt.tx != nil && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, lt)); err != nil {
		return err
	}

	if lt.tx != nil {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		lt.committed = true
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db
	d.dbRunner = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
