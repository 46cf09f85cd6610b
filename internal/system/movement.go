// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/spatial"
	"go-tower-sim/pkg/grid"
)

// MoveOutcome — результат одного шага врага
type MoveOutcome int

const (
	Moved    MoveOutcome = iota
	Escaped              // Покинул сетку через выход
	Stranded             // Клетки нет в поле потока: пути к выходу нет
)

const (
	epsilon = 1e-9
	// maxHops ограничивает число точек маршрута за тик
	maxHops = 16
)

// MovementReport — итог фазы движения
type MovementReport struct {
	Escaped []*component.Enemy // И прорвавшиеся, и застрявшие
	Summons int                // Сколько роя вызвали боссы
}

// MovementSystem двигает врагов по полю потока
type MovementSystem struct {
	ecs   *entity.ECS
	grid  *grid.Grid
	units *spatial.UnitManager
}

func NewMovementSystem(ecs *entity.ECS, g *grid.Grid, units *spatial.UnitManager) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: g, units: units}
}

// Update делает шаг всеми активными врагами в порядке появления.
// Прорвавшиеся и застрявшие помечаются Escaped.
func (s *MovementSystem) Update() MovementReport {
	var report MovementReport
	for _, e := range s.ecs.EachEnemy() {
		if !e.Active() {
			continue
		}
		report.Summons += s.summonSwarm(e)

		switch s.Move(e) {
		case Escaped:
			e.Escaped = true
			report.Escaped = append(report.Escaped, e)
		case Stranded:
			logging.LogWarn("Enemy %d (%s) has no path from cell %v, treating as escaped",
				e.ID, e.Kind, s.grid.PixelToCell(e.Position))
			e.Escaped = true
			report.Escaped = append(report.Escaped, e)
		}
	}
	return report
}

// Move двигает одного врага на его скорость и обновляет индекс
func (s *MovementSystem) Move(e *component.Enemy) MoveOutcome {
	field := s.grid.Path()
	remaining := e.Speed() * s.grid.CellSize

	pathable := true
	if e.Movement == defs.MovementBeeline {
		s.beeline(e, remaining)
	} else {
		pathable = s.follow(e, field, remaining)
	}
	s.units.Update(e)

	if s.hasLeft(e, field) {
		return Escaped
	}
	if !pathable {
		return Stranded
	}
	return Moved
}

// follow ведёт врага через центры клеток по полю потока.
// Возвращает false, если в центре клетки не нашлось направления.
func (s *MovementSystem) follow(e *component.Enemy, field *grid.FlowField, remaining float64) bool {
	for hop := 0; remaining > epsilon && hop < maxHops; hop++ {
		if !e.Path.Heading {
			cell := s.grid.PixelToCell(e.Position)
			if e.Position.Dist(s.grid.CellToPixelCentre(cell)) > epsilon {
				// Сначала вернуться в центр текущей клетки
				e.Path.NextCell = cell
			} else {
				delta, err := field.GetBestDelta(cell)
				if err != nil {
					return false
				}
				e.Path.NextCell = cell.Add(delta)
			}
			e.Path.Heading = true
		} else if s.grid.InBounds(e.Path.NextCell) && !field.Contains(e.Path.NextCell) {
			// Клетку маршрута заняли — назад к центру последней пройденной
			e.Path.NextCell = s.fallbackCell(e, field)
		}

		target := s.grid.CellToPixelCentre(e.Path.NextCell)
		dist := e.Position.Dist(target)
		if dist <= remaining {
			e.Position = target
			remaining -= dist
			e.Path.LastCell = e.Path.NextCell
			e.Path.Heading = false
			continue
		}
		e.MoveBy(target.Sub(e.Position).Scale(remaining / dist))
		remaining = 0
	}
	return true
}

func (s *MovementSystem) fallbackCell(e *component.Enemy, field *grid.FlowField) grid.Cell {
	if field.Contains(e.Path.LastCell) {
		return e.Path.LastCell
	}
	return s.grid.PixelToCell(e.Position)
}

// beeline ведёт врага по прямой к центру выхода, затем наружу
func (s *MovementSystem) beeline(e *component.Enemy, remaining float64) {
	if !e.Path.PastGoal {
		target := s.grid.CellToPixelCentre(s.grid.Goal())
		dist := e.Position.Dist(target)
		if dist > remaining {
			e.MoveBy(target.Sub(e.Position).Scale(remaining / dist))
			return
		}
		e.Position = target
		remaining -= dist
		e.Path.PastGoal = true
	}
	out := s.grid.Outward()
	e.MoveBy(geomDelta(out).Scale(remaining))
}

// hasLeft — враг целиком вне сетки и его клетки нет в поле потока
func (s *MovementSystem) hasLeft(e *component.Enemy, field *grid.FlowField) bool {
	if e.Movement == defs.MovementBeeline && !e.Path.PastGoal {
		return false
	}
	if e.BoundingBox().Intersects(s.grid.Pixels()) {
		return false
	}
	return !field.Contains(s.grid.PixelToCell(e.Position))
}

// summonSwarm — раненый босс вызывает рой; возвращает, сколько врагов добавить
func (s *MovementSystem) summonSwarm(e *component.Enemy) int {
	if !e.SummonsSwarm || e.PercentageHealth() > config.BossSwarmThreshold {
		return 0
	}
	n := min(config.BossSwarmPerStep, config.BossSwarmLimit-e.SwarmSummoned)
	if n <= 0 {
		return 0
	}
	e.SwarmSummoned += n
	logging.LogDebug("Boss %d summons %d swarm enemies", e.ID, n)
	return n
}
