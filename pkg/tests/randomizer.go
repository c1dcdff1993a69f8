package tests

import (
	"math/rand/v2"
)

// Randomizer детерминированный источник случайных чисел для тестов оценщиков.
type Randomizer struct {
	*rand.Rand
}

func NewRandomizer(seed uint64) Randomizer {
	return Randomizer{
		Rand: rand.New(rand.NewPCG(seed, seed)), //nolint:gosec // for tests
	}
}
