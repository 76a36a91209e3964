package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CatalogUC interface {
	ListProducts() []domain.Product
	FilterByCategory(category string) []domain.Product
	ListCategories() []domain.Category
	Featured() []domain.Product
	ProductByID(id int64) (domain.Product, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	AddToCart(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, delta int) (*CartView, error)
	EndSession(ctx context.Context, sessionID string) error
}
