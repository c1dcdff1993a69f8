// Package pricing считает рекомендуемую цену трека. Оба оценщика не
// анализируют звук: цена зависит от размера файла, расширения и случайных
// множителей.
package pricing

import (
	"math/rand/v2"
)

const (
	bytesInMegabyte = 1024 * 1024
	currencyRUB     = "RUB"
)

// Random источник случайных чисел. *rand.Rand из math/rand/v2 подходит,
// но небезопасен для конкурентного использования.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() } //nolint:gosec // not security sensitive

func (globalRandom) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // not security sensitive

// GlobalRandom потокобезопасный источник на основе генератора пакета math/rand/v2.
func GlobalRandom() Random {
	return globalRandom{}
}

// intBetween возвращает целое из [lo, hi] включительно.
func intBetween(r Random, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func pick(r Random, values []string) string {
	return values[r.IntN(len(values))]
}
