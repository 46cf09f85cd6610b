package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	Unit

	Health     int
	MaxHealth  int
	GridSpeed  float64 // Клеток за тик без эффектов
	Points     int     // Монеты и вес очков за убийство
	LiveDamage int     // Сколько жизней отнимает при прорыве
	Immune     map[defs.DamageKind]struct{}
	Movement   defs.MovementRule
	Escaped    bool

	Path PathState
	Slow *SlowEffect

	SummonsSwarm  bool
	SwarmSummoned int // Сколько роя уже вызвано
}

// NewEnemy создаёт врага по определению в точке position
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, position geom.Point, cellSize float64) *Enemy {
	immune := make(map[defs.DamageKind]struct{}, len(def.Immune))
	for _, k := range def.Immune {
		immune[k] = struct{}{}
	}
	return &Enemy{
		ID:           id,
		Kind:         def.Kind,
		Unit:         NewUnit(position, def.GridSize, cellSize),
		Health:       def.Health,
		MaxHealth:    def.Health,
		GridSpeed:    def.GridSpeed,
		Points:       def.Points,
		LiveDamage:   def.LiveDamage,
		Immune:       immune,
		Movement:     def.Movement,
		SummonsSwarm: def.SummonsSwarm,
	}
}

// Damage наносит урон. Иммунитет и неположительный урон ничего не делают,
// здоровье не опускается ниже нуля.
func (e *Enemy) Damage(amount int, kind defs.DamageKind) {
	if amount <= 0 {
		return
	}
	if _, immune := e.Immune[kind]; immune {
		return
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}

// IsDead — здоровье на нуле
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// PercentageHealth — доля оставшегося здоровья
func (e *Enemy) PercentageHealth() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// Active — враг жив и ещё на поле, то есть годится в цели
func (e *Enemy) Active() bool {
	return !e.IsDead() && !e.Escaped
}

// Speed — скорость в клетках за тик с учётом замедления
func (e *Enemy) Speed() float64 {
	if e.Slow != nil {
		return e.GridSpeed * e.Slow.Factor
	}
	return e.GridSpeed
}

// Definition — статическое описание вида врага
func (e *Enemy) Definition() defs.EnemyDefinition {
	return defs.EnemyLibrary[e.Kind]
}
