package static

import (
	"context"
	"slices"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogRepo — встроенный каталог витрины, используется по умолчанию (CATALOG_SOURCE=static).
type CatalogRepo struct {
	products   []domain.Product
	categories []domain.Category
}

func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{
		products:   seedProducts(),
		categories: seedCategories(),
	}
}

func (c *CatalogRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(c.products), nil
}

func (c *CatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return slices.Clone(c.categories), nil
}

func seedProducts() []domain.Product {
	rub := decimal.NewFromInt

	return []domain.Product{
		domain.NewProduct(1, "FARM", rub(199), "electronics", "https://cdn.poehali.dev/files/89f8789e-2a95-4481-84e3-c61595c8c4d6.jpg"),
		domain.NewProduct(2, "DEF", rub(49), "electronics", "https://cdn.poehali.dev/files/c2ed29fb-7256-45f1-84c1-7bf21c318701.jpg"),
		domain.NewProduct(3, "PRIVATE", rub(99), "electronics", ""),
		domain.NewProduct(4, "Рюкзак городской", rub(2990), "accessories", "🎒"),
		domain.NewProduct(5, "Термокружка", rub(890), "accessories", "☕"),
		domain.NewProduct(6, "Фитнес-браслет", rub(2490), "electronics", "⌚"),
		domain.NewProduct(7, "Зонт автоматический", rub(1290), "accessories", "☂️"),
		domain.NewProduct(8, "Внешний аккумулятор", rub(1990), "electronics", "🔋"),
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		domain.NewCategory(domain.CategoryAll, "Все товары"),
		domain.NewCategory("electronics", "Электроника"),
		domain.NewCategory("accessories", "Аксессуары"),
	}
}
