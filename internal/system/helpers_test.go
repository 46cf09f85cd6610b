package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/spatial"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

const testCellSize = 60.0

// testWorld — мир без фасада игры: реестр, сетка, индекс и системы
type testWorld struct {
	ecs         *entity.ECS
	grid        *grid.Grid
	units       *spatial.UnitManager
	status      *StatusEffectSystem
	movement    *MovementSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
}

// newTestWorld — сетка cols×rows, вход слева и выход справа в строке row
func newTestWorld(cols, rows, row int) *testWorld {
	g := grid.New(cols, rows, testCellSize, grid.Cell{Col: -1, Row: row}, grid.Cell{Col: cols, Row: row})
	ecs := entity.NewECS()
	units := spatial.NewUnitManager(g.Pixels(), 2*testCellSize)
	status := NewStatusEffectSystem(ecs)
	return &testWorld{
		ecs:         ecs,
		grid:        g,
		units:       units,
		status:      status,
		movement:    NewMovementSystem(ecs, g, units),
		combat:      NewCombatSystem(ecs, units, status),
		projectiles: NewProjectileSystem(ecs, units, g.Pixels(), testCellSize),
	}
}

// enemyAt ставит врага в центр клетки
func (w *testWorld) enemyAt(kind defs.EnemyKind, c grid.Cell) *component.Enemy {
	e := w.enemyAtPixel(kind, w.grid.CellToPixelCentre(c))
	e.Path.LastCell = c
	return e
}

func (w *testWorld) enemyAtPixel(kind defs.EnemyKind, p geom.Point) *component.Enemy {
	e := component.NewEnemy(w.ecs.NewEntity(), defs.EnemyLibrary[kind], p, testCellSize)
	w.ecs.AddEnemy(e)
	w.units.Insert(e)
	return e
}

// towerAt ставит башню без проверки пути
func (w *testWorld) towerAt(kind defs.TowerKind, c grid.Cell) *component.Tower {
	t := component.NewTower(w.ecs.NewEntity(), defs.TowerLibrary[kind], c, w.grid.CellToPixelCentre(c), testCellSize)
	w.grid.Block(c)
	w.ecs.AddTower(t)
	return t
}
