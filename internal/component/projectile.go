// internal/component/projectile.go
package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
)

// Obstacle представляет летящий снаряд башни.
// Самонаводящиеся держат TargetID, импульсы летят по Direction.
type Obstacle struct {
	ID   types.EntityID
	Kind defs.ObstacleKind
	Unit

	Rotation   float64
	Speed      float64 // Пикселей за тик
	TurnRate   float64
	Damage     int
	DamageKind defs.DamageKind
	TargetID   types.EntityID
	Direction  geom.Point
	HitLimit   int
	Area       bool

	hit map[types.EntityID]struct{}
}

// NewObstacle создаёт снаряд по определению
func NewObstacle(id types.EntityID, def defs.ObstacleDefinition, position geom.Point, cellSize float64, damage int, kind defs.DamageKind) *Obstacle {
	return &Obstacle{
		ID:         id,
		Kind:       def.Kind,
		Unit:       NewUnit(position, def.GridSize, cellSize),
		Speed:      def.GridSpeed * cellSize,
		TurnRate:   def.TurnRate,
		Damage:     damage,
		DamageKind: kind,
		HitLimit:   def.HitLimit,
		Area:       def.Area,
		hit:        make(map[types.EntityID]struct{}),
	}
}

// HasHit — задевал ли снаряд этого врага
func (o *Obstacle) HasHit(id types.EntityID) bool {
	_, ok := o.hit[id]
	return ok
}

// MarkHit запоминает врага как задетого
func (o *Obstacle) MarkHit(id types.EntityID) {
	if o.hit == nil {
		o.hit = make(map[types.EntityID]struct{})
	}
	o.hit[id] = struct{}{}
}

// Hits — сколько разных врагов задето
func (o *Obstacle) Hits() int {
	return len(o.hit)
}

// Definition — статическое описание вида снаряда
func (o *Obstacle) Definition() defs.ObstacleDefinition {
	return defs.ObstacleLibrary[o.Kind]
}
