// internal/app/tower_management.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/logging"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

// PlaceTower ставит башню вида kind на клетку, если клетка свободна,
// путь от входа к выходу сохраняется и хватает монет.
func (g *Game) PlaceTower(cell grid.Cell, kind defs.TowerKind) bool {
	def, ok := defs.TowerLibrary[kind]
	if !ok {
		logging.LogWarn("Unknown tower kind %q", kind)
		return false
	}
	if !g.canPlaceTower(cell, def) {
		return false
	}

	t := component.NewTower(g.ECS.NewEntity(), def, cell, g.Grid.CellToPixelCentre(cell), g.Grid.CellSize)
	g.coins -= def.BaseCost
	g.Grid.Block(cell)
	g.ECS.AddTower(t)
	logging.LogDebug("Placed %s tower %d at %v, coins left %d", kind, t.ID, cell, g.coins)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: t})
	return true
}

func (g *Game) canPlaceTower(cell grid.Cell, def defs.TowerDefinition) bool {
	if g.over {
		return false
	}
	if def.BaseCost > g.coins {
		logging.LogDebug("Cannot afford %s tower: cost %d, coins %d", def.Kind, def.BaseCost, g.coins)
		return false
	}
	legal, _ := g.AttemptPlacement(g.Grid.CellToPixelCentre(cell))
	if !legal {
		logging.LogDebug("Placement at %v rejected", cell)
	}
	return legal
}

// AttemptPlacement проверяет клетку под пикселем, ничего не меняя.
// Для допустимой клетки возвращает поле потока с ней заблокированной.
func (g *Game) AttemptPlacement(pixel geom.Point) (bool, *grid.FlowField) {
	return g.Grid.AttemptPlacement(pixel)
}

// RemoveTower убирает башню с клетки и возвращает часть её стоимости.
// nil — на клетке нет башни.
func (g *Game) RemoveTower(cell grid.Cell) *component.Tower {
	t, ok := g.ECS.TowerAt(cell)
	if !ok {
		return nil
	}
	g.ECS.RemoveTower(t.ID)
	g.Grid.Unblock(cell)
	refund := int(float64(t.Value()) * g.refundRate)
	g.coins += refund
	logging.LogDebug("Removed %s tower %d at %v, refund %d", t.Kind, t.ID, cell, refund)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: t})
	return t
}

// UpgradeTower поднимает башню на клетке до уровня level.
// Разрешён только следующий уровень в пределах максимума.
func (g *Game) UpgradeTower(cell grid.Cell, level int) bool {
	t, ok := g.ECS.TowerAt(cell)
	if !ok || g.over || !t.CanUpgradeTo(level) {
		return false
	}
	cost := t.UpgradeCost(level)
	if cost > g.coins {
		logging.LogDebug("Cannot afford upgrade of tower %d to level %d: cost %d, coins %d", t.ID, level, cost, g.coins)
		return false
	}
	g.coins -= cost
	t.Level = level
	logging.LogDebug("Upgraded tower %d at %v to level %d", t.ID, cell, level)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: t})
	return true
}
