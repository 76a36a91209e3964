package closer

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCloser() *Closer {
	return NewCloser(100*time.Millisecond, logger.NewSlogLoggerWithWriter(io.Discard, "error"))
}

func TestCloser_LIFO(t *testing.T) {
	c := newCloser()

	var order []string
	for _, name := range []string{"postgres", "redis", "http"} {
		c.Add(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "postgres"}, order)
}

func TestCloser_CollectsErrorsAndContinues(t *testing.T) {
	c := newCloser()
	boom := errors.New("boom")

	closed := false
	c.Add("first", func(context.Context) error {
		closed = true
		return nil
	})
	c.Add("broken", func(context.Context) error { return boom })

	err := c.Close(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.True(t, closed)
}

func TestCloser_CloseOnce(t *testing.T) {
	c := newCloser()

	calls := 0
	c.Add("res", func(context.Context) error {
		calls++
		return errors.New("once")
	})

	first := c.Close(context.Background())
	second := c.Close(context.Background())
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestCloser_ForcesRemainingOnTimeout(t *testing.T) {
	c := newCloser()

	var (
		mu     sync.Mutex
		forced []string
	)
	c.Add("db", func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		forced = append(forced, "db")
		return nil
	})
	c.Add("stuck", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stuck (forced)")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"db"}, forced)
}

func TestCloser_InterruptedResourceClosedOnce(t *testing.T) {
	c := newCloser()

	var calls atomic.Int32
	c.Add("slow", func(context.Context) error {
		calls.Add(1)
		time.Sleep(40 * time.Millisecond)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.NoError(t, c.Close(ctx))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCloser_InterruptedResourceTimesOut(t *testing.T) {
	c := NewCloser(20*time.Millisecond, logger.NewSlogLoggerWithWriter(io.Discard, "error"))

	release := make(chan struct{})
	defer close(release)
	c.Add("hung", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "hung (forced)")
}
