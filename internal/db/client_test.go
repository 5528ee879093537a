// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/diagram-service/internal/logging"
)

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use the connector")
}

type fakeConnector struct {
	conn *fakeConn
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return c.conn, nil
}

func (c *fakeConnector) Driver() driver.Driver {
	return fakeDriver{}
}

// fakeConn auto-commits anything executed outside a transaction, which is
// what makes it suitable for asserting that no statement escapes a
// transaction scope.
type fakeConn struct {
	beginErr  error
	commitErr error
	execs     []string
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *fakeConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if c.beginErr != nil {
		return nil, c.beginErr
	}

	return &fakeTx{commitErr: c.commitErr}, nil
}

func (c *fakeConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.execs = append(c.execs, query)
	return driver.RowsAffected(1), nil
}

type fakeTx struct {
	commitErr error
}

func (t *fakeTx) Commit() error {
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	return nil
}

func newFakeClient(conn *fakeConn) *DBClient {
	sqlDB := sql.OpenDB(&fakeConnector{conn: conn})

	d := new(DBClient)
	d.db = sqlDB
	d.dbRunner = sqlDB
	d.logger = logging.NewNoopLogger()

	return d
}

func TestStatementTransactionOpenFailure(t *testing.T) {
	beginErr := errors.New("connection reset by peer")

	tests := []struct {
		name string
		run  func(ctx context.Context, d *DBClient) error
	}{
		{
			name: "exec fails with the open error",
			run: func(ctx context.Context, d *DBClient) error {
				_, err := d.Statement(ctx).Update("invitations").Set("status", "accepted").Where(sq.Eq{"id": "inv-1"}).ExecContext(ctx)
				return err
			},
		},
		{
			name: "query row fails with the open error",
			run: func(ctx context.Context, d *DBClient) error {
				var id string
				return d.Statement(ctx).Select("id").From("invitations").Where(sq.Eq{"id": "inv-1"}).QueryRowContext(ctx).Scan(&id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeConn{beginErr: beginErr}
			d := newFakeClient(conn)

			err := d.WithTx(context.Background(), func(ctx context.Context) error {
				return tt.run(ctx, d)
			})

			if !errors.Is(err, beginErr) {
				t.Fatalf("expected error %v, got %v", beginErr, err)
			}

			if len(conn.execs) != 0 {
				t.Fatalf("statements ran outside the transaction scope: %v", conn.execs)
			}
		})
	}
}

func TestStatementMultiStepTransactionOpenFailure(t *testing.T) {
	beginErr := errors.New("too many clients")
	conn := &fakeConn{beginErr: beginErr}
	d := newFakeClient(conn)

	// Both steps of a two-step mutation have to fail, not just the first.
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := d.Statement(ctx).Update("invitations").Set("status", "accepted").Where(sq.Eq{"id": "inv-1"}).ExecContext(ctx); !errors.Is(err, beginErr) {
			t.Fatalf("expected first statement to fail with %v, got %v", beginErr, err)
		}

		_, err := d.Statement(ctx).Insert("collaborators").Columns("diagram_id", "user_id").Values("d-1", "u-1").ExecContext(ctx)
		return err
	})

	if !errors.Is(err, beginErr) {
		t.Fatalf("expected error %v, got %v", beginErr, err)
	}

	if len(conn.execs) != 0 {
		t.Fatalf("statements ran outside the transaction scope: %v", conn.execs)
	}
}

func TestStatementOutsideScope(t *testing.T) {
	conn := &fakeConn{}
	d := newFakeClient(conn)

	if _, err := d.Statement(context.Background()).Insert("diagrams").Columns("id").Values("d-1").ExecContext(context.Background()); err != nil {
		t.Fatalf("expected statement on the pool to succeed, got %v", err)
	}

	if len(conn.execs) != 1 {
		t.Fatalf("expected 1 statement on the pool, got %v", conn.execs)
	}
}
