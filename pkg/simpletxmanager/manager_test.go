package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDriver минимальный драйвер: только транзакции, без запросов
type stubDriver struct {
	begins    int
	commitErr error
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{d: d}, nil
}

type stubConn struct {
	d *stubDriver
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("stub: queries are not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *stubConn) BeginTx(_ context.Context, _ driver.TxOptions) (driver.Tx, error) {
	c.d.begins++
	return &stubTx{d: c.d}, nil
}

type stubTx struct {
	d *stubDriver
}

func (t *stubTx) Commit() error   { return t.d.commitErr }
func (t *stubTx) Rollback() error { return nil }

var stub = &stubDriver{}

func init() {
	sql.Register("stubtx", stub)
}

func openStubDB(t *testing.T, commitErr error) *sql.DB {
	t.Helper()
	stub.begins = 0
	stub.commitErr = commitErr

	db, err := sql.Open("stubtx", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDoSerializable_RetriesOnCommitFailure(t *testing.T) {
	db := openStubDB(t, &pq.Error{Code: "40001"})
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 3, stub.begins)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestDoSerializable_RetriesOnFnFailure(t *testing.T) {
	db := openStubDB(t, nil)
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40001"}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 3, stub.begins)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	db := openStubDB(t, nil)
	m := NewTransactionManager(db)

	wantErr := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, stub.begins)
}

func TestDo_CommitSuccess(t *testing.T) {
	db := openStubDB(t, nil)
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, stub.begins)
}
