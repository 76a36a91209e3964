package pgdb

import (
	"context"
	"slices"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// DB реализуется pgxpool.Pool.
type DB interface {
	Querier
	transaction.Transactional
}

// CatalogSource объединяет репозитории товаров и категорий в источник каталога.
type CatalogSource struct {
	*ProductRepo
	*CategoryRepo
	db DB
}

func NewCatalogSource(db DB) *CatalogSource {
	return &CatalogSource{
		ProductRepo:  NewProductRepo(db),
		CategoryRepo: NewCategoryRepo(db),
		db:           db,
	}
}

// Snapshot читает товары и категории в одной read-only транзакции REPEATABLE READ,
// чтобы каталог не собрался из двух разных версий таблиц.
func (s *CatalogSource) Snapshot(ctx context.Context) (*CatalogSnapshot, error) {
	const op = "CatalogSource.Snapshot"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, s.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return nil, e.Wrap(op, e.ErrTransactionNotFound)
	}
	ctx = tr.WithTx(ctx, pgxTx)

	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CatalogSnapshot{products: products, categories: categories}, nil
}

// CatalogSnapshot отдаёт прочитанный из базы каталог без повторных запросов.
type CatalogSnapshot struct {
	products   []domain.Product
	categories []domain.Category
}

func (s *CatalogSnapshot) ListProducts(context.Context) ([]domain.Product, error) {
	return slices.Clone(s.products), nil
}

func (s *CatalogSnapshot) ListCategories(context.Context) ([]domain.Category, error) {
	return slices.Clone(s.categories), nil
}
