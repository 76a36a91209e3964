package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

func CartToRedisModel(cart *domain.Cart) CartRedisModel {
	entries := cart.Entries()
	model := CartRedisModel{Entries: make([]EntryRedisModel, 0, len(entries))}

	for _, entry := range entries {
		model.Entries = append(model.Entries, EntryRedisModel{
			ProductID: entry.Product.ID,
			Name:      entry.Product.Name,
			Price:     entry.Product.Price.String(),
			Category:  entry.Product.Category,
			Image:     entry.Product.Image,
			Quantity:  entry.Quantity,
		})
	}

	return model
}

// CartToEntity восстанавливает корзину, проверяя доменные инварианты.
func CartToEntity(model CartRedisModel) (*domain.Cart, error) {
	entries := make([]domain.CartEntry, 0, len(model.Entries))

	for _, m := range model.Entries {
		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCorruptedCart)
		}

		entries = append(entries, domain.CartEntry{
			Product:  domain.NewProduct(m.ProductID, m.Name, price, m.Category, m.Image),
			Quantity: m.Quantity,
		})
	}

	cart, err := domain.RestoreCart(entries)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return cart, nil
}
