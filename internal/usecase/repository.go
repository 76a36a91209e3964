package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// CatalogSource читается один раз при старте.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CartRepository хранит корзины сессий.
// Get для неизвестной сессии возвращает пустую корзину.
// Update сериализует изменения одной сессии: fn получает актуальную корзину
// и может быть вызвана повторно, если хранилище повторяет запись.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error)
	Delete(ctx context.Context, sessionID string) error
}
