package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const (
	retryBaseDelay = 5 * time.Millisecond
	retryMaxDelay  = 200 * time.Millisecond
	retryJitter    = 1.0
)

// CartRepo хранит корзины сессий в Redis (CART_STORE=redis).
// Корзина хранится как JSON под ключом cart:<session>, TTL продлевается при каждом обращении.
type CartRepo struct {
	client  *clients.RedisClient
	ttl     time.Duration
	retries int
	backoff jitter.Backoff
	logger  logger.Logger
}

func NewCartRepo(client *clients.RedisClient, cfg *cfg.CartCfg, logger logger.Logger) *CartRepo {
	backoff := jitter.NewBackoff(retryBaseDelay, retryMaxDelay)
	backoff.Factor = retryJitter

	return &CartRepo{
		client:  client,
		ttl:     cfg.SessionTTL,
		retries: max(1, cfg.UpdateRetries),
		backoff: backoff,
		logger:  logger,
	}
}

// Get возвращает корзину сессии и продлевает её TTL. При промахе корзина пустая.
func (r *CartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	const op = "CartRepo.Get"
	key := cartKey(sessionID)

	var get *goredis.StringCmd
	_, err := r.client.Client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(op, err))
		return nil, e.Wrap(op, err)
	}

	data, err := get.Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := r.unmarshalCart(data)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

// Update выполняет fn в оптимистичной транзакции WATCH/MULTI.
// При конкурентной записи в ту же сессию fn вызывается повторно на свежей корзине,
// после исчерпания попыток возвращается e.ErrCartConflict.
func (r *CartRepo) Update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	const op = "CartRepo.Update"
	key := cartKey(sessionID)

	var result *domain.Cart
	txf := func(tx *goredis.Tx) error {
		cart, err := r.load(ctx, tx, key)
		if err != nil {
			return err
		}

		if err := fn(cart); err != nil {
			return err
		}

		data, err := r.marshalCart(cart)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = cart
		return nil
	}

	for attempt := 0; attempt < r.retries; attempt++ {
		err := r.client.Client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return nil, e.Wrap(op, err)
		}

		r.logger.Debugf("cart %s changed concurrently, attempt %d/%d", sessionID, attempt+1, r.retries)
		if attempt+1 < r.retries {
			if err := r.backoff.Wait(ctx, attempt); err != nil {
				return nil, e.Wrap(op, err)
			}
		}
	}

	r.logger.Warnf("cart %s: optimistic update retries exhausted", sessionID)
	return nil, e.Wrap(op, e.ErrCartConflict)
}

// Delete удаляет корзину сессии, отсутствующий ключ не считается ошибкой.
func (r *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CartRepo) load(ctx context.Context, tx *goredis.Tx, key string) (*domain.Cart, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, err
	}

	return r.unmarshalCart(data)
}

// marshalCart сериализует корзину в JSON
func (r *CartRepo) marshalCart(cart *domain.Cart) ([]byte, error) {
	data, err := json.Marshal(converter.CartToRedisModel(cart))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func (r *CartRepo) unmarshalCart(data []byte) (*domain.Cart, error) {
	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCorruptedCart)
	}

	return converter.CartToEntity(model)
}

// cartKey возвращает Redis-ключ корзины сессии
func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
