package domain

import (
	"fmt"
	"slices"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// название "all", если источник его не задал
const allCategoryName = "Все товары"

// Catalog — неизменяемый список товаров и категорий, загружаемый один раз.
// Все методы возвращают копии, поэтому Catalog безопасно читать из нескольких горутин.
type Catalog struct {
	products   []Product
	categories []Category
	byID       map[int64]int
}

// NewCatalog проверяет товары и строит каталог. Порядок товаров сохраняется.
// Категория "all" всегда идёт первой в списке категорий.
func NewCatalog(products []Product, categories []Category) (*Catalog, error) {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		if _, ok := byID[p.ID]; ok {
			return nil, e.Wrap(fmt.Sprintf("product id %d", p.ID), e.ErrDuplicateProduct)
		}
		if p.Price.IsNegative() {
			return nil, e.Wrap(fmt.Sprintf("product id %d", p.ID), e.ErrNegativePrice)
		}
		byID[p.ID] = i
	}

	cats := make([]Category, 0, len(categories)+1)
	allName := allCategoryName
	for _, c := range categories {
		if c.ID == CategoryAll {
			allName = c.Name
			continue
		}
		cats = append(cats, c)
	}
	cats = append([]Category{NewCategory(CategoryAll, allName)}, cats...)

	return &Catalog{
		products:   slices.Clone(products),
		categories: cats,
		byID:       byID,
	}, nil
}

// ListProducts возвращает весь каталог.
func (c *Catalog) ListProducts() []Product {
	return slices.Clone(c.products)
}

// FilterByCategory возвращает товары категории в исходном порядке.
// Для "all" возвращается весь каталог, для неизвестной категории пустой список.
func (c *Catalog) FilterByCategory(category string) []Product {
	if category == CategoryAll {
		return c.ListProducts()
	}

	res := make([]Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			res = append(res, p)
		}
	}

	return res
}

// ListCategories возвращает категории, первой всегда идёт "all".
func (c *Catalog) ListCategories() []Category {
	return slices.Clone(c.categories)
}

// Featured возвращает первые n товаров каталога (витрина главной страницы).
func (c *Catalog) Featured(n int) []Product {
	if n <= 0 {
		return []Product{}
	}

	return slices.Clone(c.products[:min(n, len(c.products))])
}

func (c *Catalog) ProductByID(id int64) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}

	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
