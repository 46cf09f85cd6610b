// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind identifies an enemy definition.
type EnemyKind string

const (
	EnemySimple     EnemyKind = "simple"
	EnemySwarm      EnemyKind = "swarm"
	EnemyInvincible EnemyKind = "invincible"
	EnemyHardened   EnemyKind = "hardened"
	EnemyBoss       EnemyKind = "boss"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind       EnemyKind    `yaml:"-"`
	Name       string       `yaml:"name"`
	GridSize   float64      `yaml:"grid_size"`  // Сторона квадрата в долях клетки
	GridSpeed  float64      `yaml:"grid_speed"` // Клеток за тик
	Health     int          `yaml:"health"`
	Points     int          `yaml:"points"`
	LiveDamage int          `yaml:"live_damage"`
	Immune     []DamageKind `yaml:"immune"`
	Movement   MovementRule `yaml:"movement"`
	// SummonsSwarm — босс вызывает рой, потеряв половину здоровья
	SummonsSwarm bool       `yaml:"summons_swarm"`
	Color        color.RGBA `yaml:"-"`
}

// IsImmune сообщает, игнорирует ли враг этот вид урона
func (d EnemyDefinition) IsImmune(kind DamageKind) bool {
	for _, k := range d.Immune {
		if k == kind {
			return true
		}
	}
	return false
}

// EnemyLibrary is the library of all enemy definitions, keyed by kind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemySimple: {
		Kind: EnemySimple, Name: "Simple Enemy",
		GridSize: .2, GridSpeed: 5.0 / 60, Health: 100, Points: 5, LiveDamage: 1,
		Movement: MovementPathFollower,
		Color:    color.RGBA{226, 49, 82, 255},
	},
	EnemySwarm: {
		Kind: EnemySwarm, Name: "Swarm Enemy",
		GridSize: .15, GridSpeed: 5.1 / 60, Health: 80, Points: 1, LiveDamage: 1,
		Movement: MovementPathFollower,
		Color:    color.RGBA{55, 118, 171, 255},
	},
	EnemyInvincible: {
		Kind: EnemyInvincible, Name: "Invincible Enemy",
		GridSize: .2, GridSpeed: 5.0 / 60, Health: 100, Points: 0, LiveDamage: 1,
		Immune:   AllDamageKinds,
		Movement: MovementPathFollower,
		Color:    color.RGBA{77, 76, 91, 255},
	},
	EnemyHardened: {
		Kind: EnemyHardened, Name: "Hardened Enemy",
		GridSize: .3, GridSpeed: 3.0 / 60, Health: 100, Points: 7, LiveDamage: 2,
		Immune:   []DamageKind{DamageProjectile, DamageExplosive},
		Movement: MovementPathFollower,
		Color:    color.RGBA{255, 165, 0, 255},
	},
	EnemyBoss: {
		Kind: EnemyBoss, Name: "Super Boss",
		GridSize: .6, GridSpeed: 2.5 / 60, Health: 1500, Points: 15, LiveDamage: 5,
		Movement:     MovementBeeline,
		SummonsSwarm: true,
		Color:        color.RGBA{255, 0, 0, 255},
	},
}

// EnemyKinds — порядок видов врагов для перечисления
var EnemyKinds = []EnemyKind{EnemySimple, EnemySwarm, EnemyInvincible, EnemyHardened, EnemyBoss}
