// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-sim/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел с сидом,
// чтобы прогоны автоигрока повторялись.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted — взвешенный выбор вида башни из таблицы постройки.
// Пустая таблица даёт "", при неположительной сумме весов берётся первая запись.
func (s *PRNGService) ChooseWeighted(entries []defs.BuildEntry) defs.TowerKind {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Tower
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Tower
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Tower
}
