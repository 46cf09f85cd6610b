// internal/system/projectile.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/spatial"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/geom"
)

// ProjectileSystem двигает снаряды башен и наносит урон при попадании
type ProjectileSystem struct {
	ecs    *entity.ECS
	units  *spatial.UnitManager
	bounds geom.Rect // Где самонаводящийся снаряд ещё может лететь
}

// NewProjectileSystem — grid: пиксельный прямоугольник сетки, margin: запас вокруг него
func NewProjectileSystem(ecs *entity.ECS, units *spatial.UnitManager, grid geom.Rect, margin float64) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, units: units, bounds: grid.Inflate(margin)}
}

// Update делает шаг всеми снарядами в порядке выпуска, убирает отжившие
// и регистрирует порождённые.
func (s *ProjectileSystem) Update() {
	var spawned []*component.Obstacle
	for _, o := range s.ecs.EachObstacle() {
		persist, more := s.Step(o)
		if !persist {
			s.ecs.RemoveObstacle(o.ID)
		}
		spawned = append(spawned, more...)
	}
	for _, o := range spawned {
		s.ecs.AddObstacle(o)
	}
}

// Step — один тик снаряда. persist=false — снаряд нужно убрать.
func (s *ProjectileSystem) Step(o *component.Obstacle) (persist bool, spawned []*component.Obstacle) {
	if o.Area {
		return s.stepArea(o), nil
	}
	return s.stepHoming(o), nil
}

// stepHoming догоняет цель; попадание, если до неё не больше одного тика пути.
// Пропавшая цель — холостой выстрел.
func (s *ProjectileSystem) stepHoming(o *component.Obstacle) bool {
	target, ok := s.ecs.Enemy(o.TargetID)
	if !ok || !target.Active() {
		return false
	}

	if o.Position.Dist(target.Position) <= o.Speed {
		target.Damage(o.Damage, o.DamageKind)
		return false
	}

	angle := utils.AngleBetween(o.Position, target.Position)
	o.Rotation = utils.RotateToward(o.Rotation, angle, o.TurnRate)
	o.MoveBy(utils.PolarToRect(o.Speed, o.Rotation))
	return s.bounds.Contains(o.Position)
}

// stepArea двигает импульс и бьёт всех, кого задел след за тик, каждого не больше раза
func (s *ProjectileSystem) stepArea(o *component.Obstacle) bool {
	from := o.Position
	o.MoveBy(o.Direction.Scale(o.Speed))

	candidates, err := s.units.GetBucketsAlong(from, o.Position)
	if err != nil {
		return false
	}

	half := o.GridSize.W * o.CellSize / 2
	sweep := geom.Rect{Min: from, Max: o.Position}.Normalized().Inflate(half)
	for _, e := range candidates {
		if !e.Active() || o.HasHit(e.ID) {
			continue
		}
		if !sweep.Intersects(e.BoundingBox()) {
			continue
		}
		e.Damage(o.Damage, o.DamageKind)
		o.MarkHit(e.ID)
		if o.HitLimit > 0 && o.Hits() >= o.HitLimit {
			return false
		}
	}
	return true
}
