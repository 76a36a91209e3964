package pgdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productColumns  = []string{"id", "name", "price", "slug", "image", "created_at", "updated_at", "is_archived"}
	categoryColumns = []string{"id", "slug", "name", "created_at", "updated_at", "is_archived"}
	createdAt       = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func TestProductRepo_ListProducts(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM products pr\s+JOIN categories cat`).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(int64(1), "FARM", "199.00", "electronics", "https://cdn.example.com/farm.jpg", createdAt, nil, false).
			AddRow(int64(4), "Рюкзак городской", "2990.50", "accessories", "🎒", createdAt, nil, false))

	products, err := NewProductRepo(mock).ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(199)))
	assert.Equal(t, domain.ImageKindURL, products[0].ImageKind())
	assert.Equal(t, "accessories", products[1].Category)
	assert.Equal(t, "2990.5", products[1].Price.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_InvalidPrice(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM products`).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(int64(1), "FARM", "free", "electronics", "", createdAt, nil, false))

	_, err := NewProductRepo(mock).ListProducts(context.Background())
	assert.Error(t, err)
}

func TestProductRepo_QueryError(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("connection refused")
	mock.ExpectQuery(`FROM products`).WillReturnError(boom)

	_, err := NewProductRepo(mock).ListProducts(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCatalogSource_ListCategories(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM categories`).
		WillReturnRows(pgxmock.NewRows(categoryColumns).
			AddRow(int64(1), "electronics", "Электроника", createdAt, nil, false).
			AddRow(int64(2), "accessories", "Аксессуары", createdAt, nil, false))

	categories, err := NewCatalogSource(mock).ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Category{
		domain.NewCategory("electronics", "Электроника"),
		domain.NewCategory("accessories", "Аксессуары"),
	}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogSource_Snapshot(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	mock.ExpectQuery(`FROM products`).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(int64(2), "DEF", "49", "electronics", "", createdAt, nil, false))
	mock.ExpectQuery(`FROM categories`).
		WillReturnRows(pgxmock.NewRows(categoryColumns).
			AddRow(int64(1), "electronics", "Электроника", createdAt, nil, false))
	mock.ExpectCommit()

	snap, err := NewCatalogSource(mock).Snapshot(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	products, err := snap.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "DEF", products[0].Name)

	categories, err := snap.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{domain.NewCategory("electronics", "Электроника")}, categories)
}

func TestCatalogSource_SnapshotRollsBackOnError(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("relation does not exist")
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	mock.ExpectQuery(`FROM products`).WillReturnError(boom)
	mock.ExpectRollback()

	_, err := NewCatalogSource(mock).Snapshot(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
