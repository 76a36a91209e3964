package http

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/shopspring/decimal"
)

// REQUESTS

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Delta *int `json:"delta"`
}

// RESPONSES

type ProductResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Currency  string `json:"currency"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
	ImageKind string `json:"image_kind"`
}

type ProductListResponse struct {
	Category string            `json:"category,omitempty"`
	Products []ProductResponse `json:"products"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
	ImageKind string `json:"image_kind"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice string             `json:"total_price"`
	Currency   string             `json:"currency"`
}

// MAPPERS

// formatPrice выводит цену минимум с двумя знаками после точки.
// Более точные значения выводятся как есть, без округления.
func formatPrice(d decimal.Decimal) string {
	if !d.Equal(d.Round(2)) {
		return d.String()
	}

	return d.StringFixed(2)
}

func toProductResponse(p domain.Product, currency string) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     formatPrice(p.Price),
		Currency:  currency,
		Category:  p.Category,
		Image:     p.Image,
		ImageKind: string(p.ImageKind()),
	}
}

func toProductListResponse(category string, products []domain.Product, currency string) ProductListResponse {
	resp := ProductListResponse{
		Category: category,
		Products: make([]ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p, currency))
	}

	return resp
}

func toCategoryListResponse(categories []domain.Category) CategoryListResponse {
	resp := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, CategoryResponse{ID: c.ID, Name: c.Name})
	}

	return resp
}

func toCartResponse(view *usecase.CartView, currency string) CartResponse {
	resp := CartResponse{
		Items:      make([]CartItemResponse, 0, len(view.Entries)),
		TotalItems: view.TotalItems,
		TotalPrice: formatPrice(view.TotalPrice),
		Currency:   currency,
	}
	for _, entry := range view.Entries {
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Price:     formatPrice(entry.Price),
			Category:  entry.Category,
			Image:     entry.Image,
			ImageKind: string(entry.ImageKind),
			Quantity:  entry.Quantity,
			Subtotal:  formatPrice(entry.Subtotal),
		})
	}

	return resp
}
