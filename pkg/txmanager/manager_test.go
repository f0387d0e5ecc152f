package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rxdxy/grooming-booking/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error
	committed bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	begins    int
	commitErr error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return &fakeTx{commitErr: b.commitErr}, nil
}

func serializationErr() error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesOnFnFailure(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return serializationErr()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 3, db.begins)
}

func TestDoSerializable_RetriesOnCommitFailure(t *testing.T) {
	db := &fakeBeginner{commitErr: serializationErr()}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 3, db.begins)
}

func TestDoSerializable_CommitFailureKeepsCause(t *testing.T) {
	db := &fakeBeginner{commitErr: serializationErr()}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestDoSerializable_SucceedsAfterRetry(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return serializationErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, db.begins)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	wantErr := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, db.begins)
}

func TestDo_RollsBackOnFnFailure(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{}
	m := NewTransactionManager(&staticBeginner{tx: tx, counter: db})

	wantErr := errors.New("boom")
	err := m.Do(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

type staticBeginner struct {
	tx      *fakeTx
	counter *fakeBeginner
}

func (b *staticBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.counter.begins++
	return b.tx, nil
}
