package app

import (
	"context"
	"io"
	"testing"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Http:    &config.HTTPConfig{Port: "0", ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second},
		Grpc:    &config.GRPCConfig{Port: "0", NetworkMode: "tcp"},
		Catalog: &config.CatalogCfg{Source: config.CatalogSourceStatic, FeaturedLimit: 4, Currency: "RUB"},
		Cart: &config.CartCfg{
			Store:         config.CartStoreMemory,
			SessionCookie: "cart_session",
			SessionTTL:    time.Hour,
			UpdateRetries: 3,
		},
		ShutdownTimeout: time.Second,
	}
}

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, "error")
}

func TestNewApp_MemoryStore(t *testing.T) {
	a, err := NewApp(testConfig(), testLogger())
	require.NoError(t, err)

	assert.NotNil(t, a.httpSrv)
	assert.NotNil(t, a.grpcSrv)
	assert.Len(t, a.background, 1, "memory store runs a janitor")
	assert.NoError(t, a.closer.Close(context.Background()))
}

func TestNewApp_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.Cart.Store = config.CartStoreRedis
	cfg.Redis = &config.RedisCfg{Addr: mr.Addr(), DialTimeout: time.Second, Timeout: time.Second}

	a, err := NewApp(cfg, testLogger())
	require.NoError(t, err)

	assert.Empty(t, a.background)
	assert.NoError(t, a.closer.Close(context.Background()))
}

func TestNewApp_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig()
	cfg.Cart.Store = config.CartStoreRedis
	cfg.Redis = &config.RedisCfg{Addr: addr, DialTimeout: 100 * time.Millisecond, Timeout: 100 * time.Millisecond}

	_, err := NewApp(cfg, testLogger())
	assert.Error(t, err)
}
