// Package jitter считает интервалы ожидания со случайной добавкой,
// чтобы переподключения не происходили одновременно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter: стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration возвращает d с добавкой в диапазоне [0, d*jitterFactor).
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	return DurationWithRand(d, jitterFactor, rand.Float64)
}

// DurationWithRand: то же с заданным источником случайности в [0, 1).
func DurationWithRand(d time.Duration, jitterFactor float64, rnd func() float64) time.Duration {
	if jitterFactor <= 0 || d <= 0 {
		return d
	}

	return d + time.Duration(rnd()*jitterFactor*float64(d))
}

// ExponentialBackoff удваивает base на каждой попытке (attempt с нуля), не превышая max,
// и добавляет джиттер.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	return Duration(backoff(base, max, attempt), jitterFactor)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}

	return d
}

// Backoff: счетчик попыток для цикла переподключения.
type Backoff struct {
	Base    time.Duration
	Max     time.Duration
	attempt int
}

// Next возвращает следующую паузу и увеличивает счетчик.
func (b *Backoff) Next() time.Duration {
	d := ExponentialBackoff(b.Base, b.Max, b.attempt, DefaultJitter)
	b.attempt++

	return d
}

// Reset сбрасывает счетчик после успешного подключения.
func (b *Backoff) Reset() {
	b.attempt = 0
}

// Attempt: номер следующей попытки.
func (b *Backoff) Attempt() int {
	return b.attempt
}
