package usecase

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// CatalogUseCase отдаёт каталог, загруженный из источника один раз при создании.
type CatalogUseCase struct {
	catalog       *domain.Catalog
	featuredLimit int
	logger        logger.Logger
}

// NewCatalogUC читает товары и категории из источника и строит неизменяемый каталог.
func NewCatalogUC(ctx context.Context, source CatalogSource, featuredLimit int, logger logger.Logger) (*CatalogUseCase, error) {
	const op = "CatalogUseCase.Load"

	products, err := source.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCatalog)
	}

	categories, err := source.ListCategories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog, err := domain.NewCatalog(products, categories)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	logger.Infof("catalog loaded: %d products, %d categories", catalog.Len(), len(categories))

	return &CatalogUseCase{
		catalog:       catalog,
		featuredLimit: featuredLimit,
		logger:        logger,
	}, nil
}

func (c *CatalogUseCase) ListProducts() []domain.Product {
	return c.catalog.ListProducts()
}

// FilterByCategory возвращает товары категории, для "all" весь каталог.
func (c *CatalogUseCase) FilterByCategory(category string) []domain.Product {
	return c.catalog.FilterByCategory(category)
}

func (c *CatalogUseCase) ListCategories() []domain.Category {
	return c.catalog.ListCategories()
}

// Featured возвращает витрину главной страницы.
func (c *CatalogUseCase) Featured() []domain.Product {
	return c.catalog.Featured(c.featuredLimit)
}

// ProductByID ищет товар, e.ErrProductNotFound если его нет в каталоге.
func (c *CatalogUseCase) ProductByID(id int64) (domain.Product, error) {
	product, ok := c.catalog.ProductByID(id)
	if !ok {
		return domain.Product{}, e.Wrap(fmt.Sprintf("product id %d", id), e.ErrProductNotFound)
	}

	return product, nil
}
