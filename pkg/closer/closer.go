// Package closer закрывает ресурсы приложения в обратном порядке регистрации.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/pkg/logger"
)

const defaultForcedTimeout = 2 * time.Second

// Func — функция закрытия ресурса.
type Func func(ctx context.Context) error

type resource struct {
	name  string
	close Func
}

// Closer потокобезопасно копит функции закрытия и выполняет их один раз (LIFO).
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	resources     []resource
	forcedTimeout time.Duration
	logger        logger.Logger
	err           error
}

// NewCloser создаёт Closer. forcedTimeout — время на принудительное закрытие
// ресурсов, до которых не дошла очередь до отмены контекста Close.
func NewCloser(forcedTimeout time.Duration, logger logger.Logger) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
		logger:        logger,
	}
}

// Add регистрирует ресурс. Закрываться он будет раньше всех добавленных до него.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, close: f})
}

// Close закрывает ресурсы последовательно в порядке LIFO. Если ctx отменён раньше,
// оставшиеся ресурсы закрываются параллельно с собственным таймаутом.
// Повторные вызовы возвращают результат первого.
func (c *Closer) Close(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		resources := c.resources
		c.mu.Unlock()

		remaining, inFlight, errs := c.closeInOrder(ctx, resources)
		if inFlight != nil {
			c.logger.Warnf("shutdown interrupted while closing %s, forcing %d of %d resources",
				inFlight.name, len(remaining), len(resources))
			errs = append(errs, c.forceClose(remaining, inFlight)...)
		}

		c.err = errors.Join(errs...)
	})

	return c.err
}

// pending — ресурс, закрытие которого ещё идёт в момент отмены ctx.
type pending struct {
	name string
	done <-chan error
}

// closeInOrder возвращает ресурсы, до которых не дошла очередь из-за отмены ctx,
// и ресурс, закрытие которого было прервано ожиданием.
func (c *Closer) closeInOrder(ctx context.Context, resources []resource) ([]resource, *pending, []error) {
	var errs []error
	for i := len(resources) - 1; i >= 0; i-- {
		res := resources[i]
		done := make(chan error, 1)
		go func() {
			done <- res.close(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", res.name, err))
				continue
			}
			c.logger.Debugf("%s closed", res.name)
		case <-ctx.Done():
			return resources[:i], &pending{name: res.name, done: done}, errs
		}
	}

	return nil, nil, errs
}

// forceClose закрывает оставшиеся ресурсы параллельно и дожидается прерванного.
// Прерванный ресурс повторно не закрывается.
func (c *Closer) forceClose(resources []resource, inFlight *pending) []error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	addErr := func(name string, err error) {
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s (forced): %w", name, err))
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case err := <-inFlight.done:
			if err != nil {
				addErr(inFlight.name, err)
			}
		case <-ctx.Done():
			addErr(inFlight.name, ctx.Err())
		}
	}()

	for _, res := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := res.close(ctx); err != nil {
				addErr(res.name, err)
			}
		}()
	}

	wg.Wait()
	return errs
}
