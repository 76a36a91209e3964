package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = "5f0c9b8e-2f4b-4a54-9c1e-1d8b7f6a3e21"

type cartFixture struct {
	uc        *CartUseCase
	repo      *fakeCartRepo
	publisher *fakePublisher
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	repo := newFakeCartRepo()
	publisher := &fakePublisher{}
	uc := NewCartUC(newCatalogUC(t), repo, publisher, testLogger())
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return &cartFixture{uc: uc, repo: repo, publisher: publisher}
}

func TestCartUseCase_TotalsScenario(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, session, 1)
	require.NoError(t, err)
	_, err = f.uc.AddToCart(ctx, session, 1)
	require.NoError(t, err)
	view, err := f.uc.AddToCart(ctx, session, 2)
	require.NoError(t, err)

	require.Len(t, view.Entries, 2)
	assert.Equal(t, int64(1), view.Entries[0].ProductID)
	assert.Equal(t, 2, view.Entries[0].Quantity)
	assert.True(t, view.Entries[0].Subtotal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, domain.ImageKindURL, view.Entries[0].ImageKind)
	assert.Equal(t, int64(2), view.Entries[1].ProductID)
	assert.Equal(t, domain.ImageKindNone, view.Entries[1].ImageKind)
	assert.Equal(t, 3, view.TotalItems)
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(250)))

	got, err := f.uc.GetCart(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, view.TotalItems, got.TotalItems)
	assert.Equal(t, view.TotalPrice.String(), got.TotalPrice.String())
	assert.Len(t, got.Entries, 2)
}

func TestCartUseCase_UnknownProductOnAdd(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.uc.AddToCart(context.Background(), session, 404)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Empty(t, f.repo.carts)
	assert.Empty(t, f.publisher.reqs)
}

func TestCartUseCase_UnknownIDsAreNoops(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, session, 5)
	require.NoError(t, err)

	view, err := f.uc.UpdateQuantity(ctx, session, 42, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)

	view, err = f.uc.RemoveFromCart(ctx, session, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)

	assert.Len(t, f.publisher.reqs, 1, "no-op operations publish nothing")
}

func TestCartUseCase_UpdateQuantityClamps(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, session, 5)
	require.NoError(t, err)

	view, err := f.uc.UpdateQuantity(ctx, session, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, 10, view.TotalItems)

	view, err = f.uc.UpdateQuantity(ctx, session, 5, -1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(890)))
}

func TestCartUseCase_SessionsAreIsolated(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, "session-a", 1)
	require.NoError(t, err)

	other, err := f.uc.GetCart(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, other.Entries)
	assert.Zero(t, other.TotalItems)
	assert.True(t, other.TotalPrice.IsZero())
}

func TestCartUseCase_EndSessionDiscardsCart(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, session, 1)
	require.NoError(t, err)

	require.NoError(t, f.uc.EndSession(ctx, session))

	view, err := f.uc.GetCart(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
}

func TestCartUseCase_EmptySession(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.uc.GetCart(ctx, " ")
	assert.ErrorIs(t, err, e.ErrEmptySessionID)

	_, err = f.uc.AddToCart(ctx, "", 1)
	assert.ErrorIs(t, err, e.ErrEmptySessionID)

	assert.ErrorIs(t, f.uc.EndSession(ctx, ""), e.ErrEmptySessionID)
}

func TestCartUseCase_PublishesEventsOnce(t *testing.T) {
	f := newCartFixture(t)
	f.repo.replays = 2
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, session, 4)
	require.NoError(t, err)
	_, err = f.uc.UpdateQuantity(ctx, session, 4, 2)
	require.NoError(t, err)
	_, err = f.uc.RemoveFromCart(ctx, session, 4)
	require.NoError(t, err)

	require.Len(t, f.publisher.reqs, 3)
	assert.Equal(t, session, f.publisher.reqs[0].SessionID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), f.publisher.reqs[0].OccurredAt)
	assert.Equal(t, []domain.CartEvent{domain.NewCartEvent(domain.CartEventAdded, 4, 1)}, f.publisher.reqs[0].Events)
	assert.Equal(t, []domain.CartEvent{domain.NewCartEvent(domain.CartEventQuantityChanged, 4, 3)}, f.publisher.reqs[1].Events)
	assert.Equal(t, []domain.CartEvent{domain.NewCartEvent(domain.CartEventRemoved, 4, 0)}, f.publisher.reqs[2].Events)
}

func TestCartUseCase_PublishFailureDoesNotFailOperation(t *testing.T) {
	f := newCartFixture(t)
	f.publisher.err = errBoom

	view, err := f.uc.AddToCart(context.Background(), session, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)
}

func TestCartUseCase_StoreErrorIsReturned(t *testing.T) {
	f := newCartFixture(t)
	f.repo.updateErr = e.ErrCartConflict

	_, err := f.uc.AddToCart(context.Background(), session, 1)
	assert.ErrorIs(t, err, e.ErrCartConflict)
	assert.Empty(t, f.publisher.reqs)
}
