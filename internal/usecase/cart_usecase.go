package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// ProductFinder разрешает идентификатор товара в товар каталога.
type ProductFinder interface {
	ProductByID(id int64) (domain.Product, error)
}

// CartUseCase управляет корзинами сессий: одна корзина на сессию.
type CartUseCase struct {
	products  ProductFinder
	carts     CartRepository
	publisher EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewCartUC(products ProductFinder, carts CartRepository, publisher EventPublisher, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		products:  products,
		carts:     carts,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// GetCart возвращает корзину сессии. Для новой сессии корзина пустая.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	if err := validateSessionID(sessionID); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(sessionID, cart), nil
}

// AddToCart добавляет одну единицу товара. Для неизвестного товара возвращает e.ErrProductNotFound.
func (c *CartUseCase) AddToCart(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.AddToCart"

	product, err := c.products.ProductByID(productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	view, err := c.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.AddToCart(product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return view, nil
}

// RemoveFromCart удаляет позицию, отсутствующий товар игнорируется.
func (c *CartUseCase) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.RemoveFromCart"

	view, err := c.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.RemoveFromCart(productID)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return view, nil
}

// UpdateQuantity меняет количество на delta, не опуская его ниже 1.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, productID int64, delta int) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	view, err := c.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.UpdateQuantity(productID, delta)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return view, nil
}

// EndSession завершает сессию, корзина удаляется.
func (c *CartUseCase) EndSession(ctx context.Context, sessionID string) error {
	const op = "CartUseCase.EndSession"

	if err := validateSessionID(sessionID); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.carts.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// mutate применяет операцию к корзине сессии и публикует события,
// собранные наблюдателем, только после успешной записи.
func (c *CartUseCase) mutate(ctx context.Context, sessionID string, apply func(cart *domain.Cart)) (*CartView, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	var events []domain.CartEvent
	cart, err := c.carts.Update(ctx, sessionID, func(cart *domain.Cart) error {
		// fn может вызываться повторно, события прошлой попытки отбрасываются
		events = events[:0]
		unsubscribe := cart.Subscribe(func(ev domain.CartEvent) {
			events = append(events, ev)
		})
		defer unsubscribe()

		apply(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, sessionID, events)

	return NewCartView(sessionID, cart), nil
}

// publish отправляет события, ошибка публикации не ломает операцию пользователя.
func (c *CartUseCase) publish(ctx context.Context, sessionID string, events []domain.CartEvent) {
	if len(events) == 0 || c.publisher == nil {
		return
	}

	req := NewPublishCartEventsReq(sessionID, events, c.now().UTC())
	if err := c.publisher.PublishCartEvents(ctx, req); err != nil {
		c.logger.Warnf("Failed to publish cart events (session: %s): %v", sessionID, err)
	}
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return e.ErrEmptySessionID
	}

	return nil
}
