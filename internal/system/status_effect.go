// internal/system/status_effect.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Slow накладывает или обновляет замедление: берётся более сильный множитель
// и более длинный остаток.
func (s *StatusEffectSystem) Slow(e *component.Enemy, factor float64, steps int) {
	if e.Slow == nil {
		e.Slow = &component.SlowEffect{Remaining: steps, Factor: factor}
		return
	}
	e.Slow.Remaining = max(e.Slow.Remaining, steps)
	e.Slow.Factor = min(e.Slow.Factor, factor)
}

// Update отсчитывает тик всем эффектам и снимает истёкшие.
func (s *StatusEffectSystem) Update() {
	for _, e := range s.ecs.EachEnemy() {
		if e.Slow == nil {
			continue
		}
		e.Slow.Remaining--
		if e.Slow.Remaining <= 0 {
			e.Slow = nil
		}
	}
}
