package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ImageKind описывает способ отображения картинки товара
type ImageKind string

const (
	ImageKindNone  ImageKind = "none"
	ImageKindURL   ImageKind = "url"
	ImageKindGlyph ImageKind = "glyph"
)

// Product описывает товар каталога. После загрузки каталога не изменяется.
type Product struct {
	ID       int64
	Name     string
	Price    decimal.Decimal // Цена в целых единицах валюты, без перевода в копейки
	Category string
	Image    string // URL картинки либо эмодзи
}

func NewProduct(id int64, name string, price decimal.Decimal, category string, image string) Product {
	return Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
		Image:    image,
	}
}

// ImageKind определяет, является ли картинка ссылкой или глифом.
func (p Product) ImageKind() ImageKind {
	switch {
	case p.Image == "":
		return ImageKindNone
	case strings.HasPrefix(p.Image, "http"):
		return ImageKindURL
	default:
		return ImageKindGlyph
	}
}
