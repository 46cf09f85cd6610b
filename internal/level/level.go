// Package level описывает содержимое волн: кого и когда выпускать.
package level

import (
	"math"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/system"
)

// Level — источник волн для игры
type Level interface {
	// MaxWave — номер последней волны
	MaxWave() int
	// Wave возвращает записи n-й волны (n с единицы), отсортированные по смещению
	Wave(n int) []system.Spawn
}

// Classic — стандартный уровень из двадцати волн
type Classic struct{}

func (Classic) MaxWave() int { return 20 }

func (Classic) Wave(n int) []system.Spawn {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []system.Spawn{{Offset: 10, Enemy: defs.EnemySimple}}
	case n == 2:
		return []system.Spawn{
			{Offset: 10, Enemy: defs.EnemySimple},
			{Offset: 15, Enemy: defs.EnemySimple},
			{Offset: 30, Enemy: defs.EnemySimple},
		}
	case n < 10:
		steps := int(40 * math.Sqrt(float64(n)))
		var out []system.Spawn
		for i, step := range system.GenerateIntervals(steps, 2*n) {
			kind := defs.EnemySimple
			// С шестой волны каждый третий — бронированный
			if n >= 6 && i%3 == 2 {
				kind = defs.EnemyHardened
			}
			out = append(out, system.Spawn{Offset: step, Enemy: kind})
		}
		return out
	case n == 10:
		return system.GenerateSubWaves([]system.Phase{
			{Steps: 50, Count: 10, Enemy: defs.EnemySimple},
			{Steps: 100},
			{Steps: 50, Count: 10, Enemy: defs.EnemySimple},
		})
	}

	steps := 13 * n
	count := int(25 * math.Pow(float64(n), float64(n)/50))
	out := system.GenerateSubWaves([]system.Phase{{Steps: steps, Count: count, Enemy: defs.EnemySimple}})
	for i := range out {
		if i%4 == 3 {
			out[i].Enemy = defs.EnemyHardened
		}
	}
	if n == 15 || n == 20 {
		out = append(out, system.Spawn{Offset: steps, Enemy: defs.EnemyBoss})
	}
	return out
}
