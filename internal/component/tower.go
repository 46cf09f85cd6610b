// component/tower.go
package component

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
	"go-tower-sim/pkg/ranges"
)

// TowerState — состояние автомата башни после очередного тика
type TowerState int

const (
	TowerIdle        TowerState = iota // Нет цели
	TowerTracking                      // Доворачивается к цели
	TowerCoolingDown                   // Навелась, но перезаряжается
	TowerReadyToFire                   // Выстрелила в этом тике
)

func (s TowerState) String() string {
	switch s {
	case TowerIdle:
		return "idle"
	case TowerTracking:
		return "tracking"
	case TowerCoolingDown:
		return "cooling-down"
	case TowerReadyToFire:
		return "ready-to-fire"
	}
	return "unknown"
}

type Tower struct {
	ID   types.EntityID
	Kind defs.TowerKind
	Cell grid.Cell // Клетка, на которой стоит башня
	Unit

	Rotation          float64
	RotationThreshold float64
	Cooldown          Countdown
	Level             int
	BaseDamage        int
	BaseCost          int
	LevelCost         int
	Range             ranges.Shape
	TargetID          types.EntityID // Запомненная цель; NoEntity — нет
	State             TowerState
}

// NewTower ставит башню первого уровня в центр клетки
func NewTower(id types.EntityID, def defs.TowerDefinition, cell grid.Cell, centre geom.Point, cellSize float64) *Tower {
	return &Tower{
		ID:                id,
		Kind:              def.Kind,
		Cell:              cell,
		Unit:              NewUnit(centre, config.TowerGridSize, cellSize),
		Rotation:          config.TowerInitialFacing,
		RotationThreshold: def.RotationThreshold,
		Cooldown:          NewCountdown(def.CooldownSteps),
		Level:             1,
		BaseDamage:        def.BaseDamage,
		BaseCost:          def.BaseCost,
		LevelCost:         def.LevelCost,
		Range:             def.Range,
	}
}

// Definition — статическое описание вида башни
func (t *Tower) Definition() defs.TowerDefinition {
	return defs.TowerLibrary[t.Kind]
}

// Damage — урон с учётом уровня
func (t *Tower) Damage() int {
	return t.Level * t.BaseDamage
}

// Value — сколько монет вложено в башню
func (t *Tower) Value() int {
	return t.BaseCost + (t.Level-1)*t.LevelCost
}

// IsPositionInRange проверяет пиксельную точку по форме дальности
func (t *Tower) IsPositionInRange(p geom.Point) bool {
	d := p.Sub(t.Position).Scale(1 / t.CellSize)
	return t.Range.Contains(d.X, d.Y)
}

// CanUpgradeTo — можно ли поднять башню ровно на следующий уровень
func (t *Tower) CanUpgradeTo(level int) bool {
	return level == t.Level+1 && level <= config.MaxTowerLevel
}

// UpgradeCost — сколько стоит переход на уровень level
func (t *Tower) UpgradeCost(level int) int {
	return (level - t.Level) * t.LevelCost
}
