package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/spatial"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs    *entity.ECS
	units  *spatial.UnitManager
	status *StatusEffectSystem
}

func NewCombatSystem(ecs *entity.ECS, units *spatial.UnitManager, status *StatusEffectSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, units: units, status: status}
}

// Update делает шаг всеми башнями в порядке постройки и возвращает новые снаряды.
// Снаряды не регистрируются здесь: это делает вызывающий после фазы башен.
func (s *CombatSystem) Update() []*component.Obstacle {
	var spawned []*component.Obstacle
	for _, t := range s.ecs.EachTower() {
		spawned = append(spawned, s.Step(t)...)
	}
	return spawned
}

// GetUnitsInRange возвращает активных врагов в зоне башни, не больше limit (0 — все)
func (s *CombatSystem) GetUnitsInRange(t *component.Tower, limit int) []*component.Enemy {
	var out []*component.Enemy
	radius := t.Range.Extent() * t.CellSize
	for e := range s.units.GetNear(t.Position, radius) {
		if !e.Active() || !t.IsPositionInRange(e.Position) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// target возвращает запомненную цель, если она ещё годится, иначе выбирает новую
func (s *CombatSystem) target(t *component.Tower) *component.Enemy {
	if t.TargetID != types.NoEntity {
		if e, ok := s.ecs.Enemy(t.TargetID); ok && e.Active() && t.IsPositionInRange(e.Position) {
			return e
		}
	}
	t.TargetID = types.NoEntity
	if found := s.GetUnitsInRange(t, 1); len(found) > 0 {
		t.TargetID = found[0].ID
		return found[0]
	}
	return nil
}

// Step — один тик башни: перезарядка, выбор цели, поворот и выстрел
func (s *CombatSystem) Step(t *component.Tower) []*component.Obstacle {
	t.Cooldown.Step()
	def := t.Definition()

	target := s.target(t)
	if target == nil {
		t.State = component.TowerIdle
		return nil
	}

	if def.Rotates() {
		angle := utils.AngleBetween(t.Position, target.Position)
		t.Rotation = utils.RotateToward(t.Rotation, angle, t.RotationThreshold)
		if t.Rotation != angle {
			t.State = component.TowerTracking
			return nil
		}
	}

	if !t.Cooldown.IsDone() {
		t.State = component.TowerCoolingDown
		return nil
	}
	t.Cooldown.Start()
	t.State = component.TowerReadyToFire

	switch def.Attack {
	case defs.AttackInstant:
		target.Damage(t.Damage(), def.DamageKind)
	case defs.AttackSlow:
		s.status.Slow(target, config.SlowFactor(t.Level), config.SlowDurationSteps)
	case defs.AttackHoming:
		return []*component.Obstacle{s.fireHoming(t, def, target)}
	case defs.AttackArea:
		return s.firePulses(t, def)
	}
	return nil
}

// fireHoming выпускает самонаводящийся снаряд с края башни по направлению ствола
func (s *CombatSystem) fireHoming(t *component.Tower, def defs.TowerDefinition, target *component.Enemy) *component.Obstacle {
	o := component.NewObstacle(s.ecs.NewEntity(), defs.ObstacleLibrary[def.Obstacle],
		t.Position, t.CellSize, t.Damage(), def.DamageKind)
	o.Rotation = t.Rotation
	o.TargetID = target.ID
	o.MoveBy(utils.PolarToRect(t.CellSize*t.GridSize.W/2, t.Rotation))
	return o
}

// firePulses выпускает четыре импульса по сторонам света
func (s *CombatSystem) firePulses(t *component.Tower, def defs.TowerDefinition) []*component.Obstacle {
	od := defs.ObstacleLibrary[def.Obstacle]
	out := make([]*component.Obstacle, 0, len(pulseDirections))
	for _, dir := range pulseDirections {
		o := component.NewObstacle(s.ecs.NewEntity(), od, t.Position, t.CellSize, t.Damage(), def.DamageKind)
		o.Direction = dir
		o.MoveBy(dir.Scale(config.PulseSpawnOffset * t.CellSize))
		out = append(out, o)
	}
	return out
}
