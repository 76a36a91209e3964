package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, "error")
}

type fakeSource struct {
	products   []domain.Product
	categories []domain.Category
	err        error
}

func (f fakeSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f fakeSource) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func seedSource() fakeSource {
	return fakeSource{
		products: []domain.Product{
			domain.NewProduct(1, "FARM", decimal.NewFromInt(100), "electronics", "https://cdn.example.com/farm.jpg"),
			domain.NewProduct(2, "DEF", decimal.NewFromInt(50), "electronics", ""),
			domain.NewProduct(4, "Рюкзак городской", decimal.NewFromInt(2990), "accessories", "🎒"),
			domain.NewProduct(5, "Термокружка", decimal.NewFromInt(890), "accessories", "☕"),
			domain.NewProduct(6, "Фитнес-браслет", decimal.NewFromInt(2490), "electronics", "⌚"),
		},
		categories: []domain.Category{
			domain.NewCategory(domain.CategoryAll, "Все товары"),
			domain.NewCategory("electronics", "Электроника"),
			domain.NewCategory("accessories", "Аксессуары"),
		},
	}
}

// fakeCartRepo хранит корзины в памяти; replays > 0 заставляет Update
// вызвать fn несколько раз, как при конфликте оптимистичной записи.
type fakeCartRepo struct {
	mu        sync.Mutex
	carts     map[string]*domain.Cart
	replays   int
	updateErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cart, ok := f.carts[sessionID]; ok {
		return cart.Clone(), nil
	}
	return domain.NewCart(), nil
}

func (f *fakeCartRepo) Update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	base, ok := f.carts[sessionID]
	if !ok {
		base = domain.NewCart()
	}

	for i := 0; i < f.replays; i++ {
		if err := fn(base.Clone()); err != nil {
			return nil, err
		}
	}

	cart := base.Clone()
	if err := fn(cart); err != nil {
		return nil, err
	}
	f.carts[sessionID] = cart

	return cart.Clone(), nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.carts, sessionID)
	return nil
}

type fakePublisher struct {
	reqs []*PublishCartEventsReq
	err  error
}

func (f *fakePublisher) PublishCartEvents(ctx context.Context, req *PublishCartEventsReq) error {
	f.reqs = append(f.reqs, req)
	return f.err
}

var errBoom = errors.New("boom")
