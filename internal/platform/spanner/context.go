package spanner

import (
	"context"

	"cloud.google.com/go/spanner"
)

// ReadTransaction is the read surface shared by Spanner read-only and
// read-write transactions. Repositories accept it so reads work inside
// either scope.
type ReadTransaction interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Read(ctx context.Context, table string, keys spanner.KeySet, columns []string) *spanner.RowIterator
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

type readWriteTxKey struct{}
type readOnlyTxKey struct{}

// withReadWriteTx embeds a ReadWriteTransaction in the context.
// Returns ErrNestedTransaction if a transaction is already present.
func withReadWriteTx(ctx context.Context, tx *spanner.ReadWriteTransaction) (context.Context, error) {
	if _, ok := ReadWriteTxFromContext(ctx); ok {
		return nil, ErrNestedTransaction
	}
	if _, ok := readOnlyTxFromContext(ctx); ok {
		return nil, ErrNestedTransaction
	}
	return context.WithValue(ctx, readWriteTxKey{}, tx), nil
}

// withReadOnlyTx embeds a ReadOnlyTransaction in the context.
// Returns ErrNestedTransaction if a transaction is already present.
func withReadOnlyTx(ctx context.Context, tx *spanner.ReadOnlyTransaction) (context.Context, error) {
	if _, ok := ReadWriteTxFromContext(ctx); ok {
		return nil, ErrNestedTransaction
	}
	if _, ok := readOnlyTxFromContext(ctx); ok {
		return nil, ErrNestedTransaction
	}
	return context.WithValue(ctx, readOnlyTxKey{}, tx), nil
}

// ReadWriteTxFromContext extracts a ReadWriteTransaction from context.
// Returns (nil, false) if no read-write transaction is present.
func ReadWriteTxFromContext(ctx context.Context) (*spanner.ReadWriteTransaction, bool) {
	tx, ok := ctx.Value(readWriteTxKey{}).(*spanner.ReadWriteTransaction)
	return tx, ok
}

func readOnlyTxFromContext(ctx context.Context) (*spanner.ReadOnlyTransaction, bool) {
	tx, ok := ctx.Value(readOnlyTxKey{}).(*spanner.ReadOnlyTransaction)
	return tx, ok
}

// ReadTransactionFromContext extracts the read surface of whichever
// transaction is embedded in the context, preferring the read-write one.
func ReadTransactionFromContext(ctx context.Context) (ReadTransaction, bool) {
	if tx, ok := ReadWriteTxFromContext(ctx); ok {
		return tx, true
	}
	if tx, ok := readOnlyTxFromContext(ctx); ok {
		return tx, true
	}
	return nil, false
}
