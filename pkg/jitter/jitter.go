// Package jitter добавляет случайность в интервалы повторных попыток,
// чтобы конкурирующие клиенты не повторяли запись синхронно.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d с джиттером в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	randMutex.Lock()
	j := globalRand.Float64() * factor * float64(d)
	randMutex.Unlock()

	return d + time.Duration(j)
}

// Backoff — экспоненциальная задержка между попытками с джиттером.
// Base удваивается на каждой попытке, но не превышает Max.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
}

func NewBackoff(base, max time.Duration) Backoff {
	return Backoff{Base: base, Max: max, Factor: DefaultJitter}
}

// Delay вычисляет задержку перед попыткой attempt (нумерация с нуля), без джиттера.
func (b Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			return b.Max
		}
	}

	return min(d, b.Max)
}

// Wait ждёт Delay(attempt) с джиттером либо отмены ctx.
func (b Backoff) Wait(ctx context.Context, attempt int) error {
	if b.Base <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(Duration(b.Delay(attempt), b.Factor))
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
