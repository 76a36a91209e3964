package converter

import (
	"fmt"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// ProductToEntity преобразует запись products в доменный товар.
func ProductToEntity(model *ProductModel) (domain.Product, error) {
	price, err := decimal.NewFromString(model.Price)
	if err != nil {
		return domain.Product{}, e.Wrap(fmt.Sprintf("product %d: price %q", model.ID, model.Price), err)
	}

	return domain.NewProduct(model.ID, model.Name, price, model.CategorySlug, model.Image), nil
}

// CategoryToEntity преобразует запись categories в доменную категорию.
func CategoryToEntity(model *CategoryModel) domain.Category {
	return domain.NewCategory(model.Slug, model.Name)
}

func ToArrProductEntity(models []ProductModel) ([]domain.Product, error) {
	res := make([]domain.Product, 0, len(models))
	for i := range models {
		product, err := ProductToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		res = append(res, product)
	}

	return res, nil
}

func ToArrCategoryEntity(models []CategoryModel) []domain.Category {
	res := make([]domain.Category, 0, len(models))
	for i := range models {
		res = append(res, CategoryToEntity(&models[i]))
	}

	return res
}
