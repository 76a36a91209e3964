package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5"
)

// Querier — подмножество pgxpool.Pool и pgx.Tx, которым пользуются репозитории.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// querierFromCtx возвращает транзакцию из контекста, если она открыта, иначе db.
func querierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}

	return db
}
