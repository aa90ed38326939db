package postgres

import (
	"context"
	"fmt"
)

// TxManager runs a unit of work in one transaction. The transaction travels
// in the context; repositories pick it up through QuerierFromCtx.
// RunInTx must not be nested: an inner call opens an unrelated transaction.
type TxManager struct {
	db DB
}

// NewTxManager creates a TxManager over a pool (or any DB).
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn at Read Committed. It commits when fn returns nil and
// rolls back on error or panic (the panic is re-raised). Begin and commit
// failures go through MapError, so a dropped connection surfaces as
// domain.ErrStoreUnavailable.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return MapError(err, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return MapError(tx.Commit(ctx), "commit transaction")
}
