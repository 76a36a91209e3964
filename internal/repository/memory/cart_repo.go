package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type session struct {
	cart      *domain.Cart
	touchedAt time.Time
}

// CartRepo хранит корзины сессий в памяти процесса (CART_STORE=memory).
// Сессия без активности дольше ttl считается завершённой.
type CartRepo struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	logger   logger.Logger
	now      func() time.Time
}

func NewCartRepo(ttl time.Duration, logger logger.Logger) *CartRepo {
	return &CartRepo{
		sessions: make(map[string]*session),
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Get возвращает копию корзины. Для неизвестной или истёкшей сессии корзина пустая.
func (r *CartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.alive(sessionID)
	if !ok {
		return domain.NewCart(), nil
	}
	s.touchedAt = r.now()

	return s.cart.Clone(), nil
}

// Update применяет fn к копии корзины и сохраняет её, если fn не вернула ошибку.
// Все изменения выполняются под одним мьютексом, поэтому fn вызывается ровно один раз.
func (r *CartRepo) Update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := domain.NewCart()
	if s, ok := r.alive(sessionID); ok {
		cart = s.cart.Clone()
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	r.sessions[sessionID] = &session{cart: cart.Clone(), touchedAt: r.now()}

	return cart.Clone(), nil
}

func (r *CartRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// Sweep удаляет истёкшие сессии и возвращает их количество.
func (r *CartRepo) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}

// RunJanitor периодически вызывает Sweep, пока не отменён ctx.
func (r *CartRepo) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debugf("expired cart sessions removed: %d", n)
			}
		}
	}
}

func (r *CartRepo) alive(sessionID string) (*session, bool) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}

	if r.expired(s) {
		delete(r.sessions, sessionID)
		return nil, false
	}

	return s, true
}

func (r *CartRepo) expired(s *session) bool {
	return r.now().Sub(s.touchedAt) > r.ttl
}
