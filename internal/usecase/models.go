package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CART USECASE

// CartView — состояние корзины для внешнего использования, итоги пересчитаны из позиций.
type CartView struct {
	SessionID  string
	Entries    []CartEntryInfo
	TotalItems int
	TotalPrice decimal.Decimal
}

// CartEntryInfo — DTO позиции корзины.
type CartEntryInfo struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Category  string
	Image     string
	ImageKind domain.ImageKind
	Quantity  int
	Subtotal  decimal.Decimal
}

// INFRASTUCTURE

// PublishCartEventsReq — события одной мутации корзины.
type PublishCartEventsReq struct {
	SessionID  string
	Events     []domain.CartEvent
	OccurredAt time.Time
}

// MAPPERS

func NewCartView(sessionID string, cart *domain.Cart) *CartView {
	entries := cart.Entries()
	infos := make([]CartEntryInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, NewCartEntryInfo(entry))
	}

	return &CartView{
		SessionID:  sessionID,
		Entries:    infos,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

func NewCartEntryInfo(entry domain.CartEntry) CartEntryInfo {
	return CartEntryInfo{
		ProductID: entry.Product.ID,
		Name:      entry.Product.Name,
		Price:     entry.Product.Price,
		Category:  entry.Product.Category,
		Image:     entry.Product.Image,
		ImageKind: entry.Product.ImageKind(),
		Quantity:  entry.Quantity,
		Subtotal:  entry.Subtotal(),
	}
}

func NewPublishCartEventsReq(sessionID string, events []domain.CartEvent, occurredAt time.Time) *PublishCartEventsReq {
	return &PublishCartEventsReq{
		SessionID:  sessionID,
		Events:     events,
		OccurredAt: occurredAt,
	}
}
