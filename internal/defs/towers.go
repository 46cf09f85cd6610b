// internal/defs/towers.go
package defs

import (
	"image/color"
	"math"

	"go-tower-sim/pkg/ranges"
)

// TowerKind identifies a tower definition.
type TowerKind string

const (
	TowerSimple  TowerKind = "simple"
	TowerMissile TowerKind = "missile"
	TowerGun     TowerKind = "gun"
	TowerLaser   TowerKind = "laser"
	TowerPulse   TowerKind = "pulse"
	TowerInferno TowerKind = "inferno"
	TowerSlow    TowerKind = "slow"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Kind          TowerKind    `yaml:"-"`
	Name          string       `yaml:"name"`
	Range         ranges.Shape `yaml:"-"`
	CooldownSteps int          `yaml:"cooldown_steps"`
	BaseDamage    int          `yaml:"base_damage"`
	BaseCost      int          `yaml:"base_cost"`
	LevelCost     int          `yaml:"level_cost"`
	// RotationThreshold — максимальный поворот за тик; 0 — башня не вращается
	RotationThreshold float64        `yaml:"-"`
	Attack            AttackBehavior `yaml:"-"`
	DamageKind        DamageKind     `yaml:"-"`
	Obstacle          ObstacleKind   `yaml:"-"`
	Color             color.RGBA     `yaml:"-"`
}

// Rotates сообщает, должна ли башня довернуться до цели перед выстрелом
func (d TowerDefinition) Rotates() bool {
	return d.RotationThreshold > 0
}

// TowerLibrary is the library of all tower definitions, keyed by kind.
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerSimple: {
		Kind: TowerSimple, Name: "Simple Tower",
		Range:         ranges.NewCircular(1.5),
		CooldownSteps: 0, BaseDamage: 5, BaseCost: 30, LevelCost: 20,
		RotationThreshold: math.Pi / 6,
		Attack:            AttackInstant, DamageKind: DamageProjectile,
		Color: color.RGBA{233, 74, 31, 255},
	},
	TowerMissile: {
		Kind: TowerMissile, Name: "Missile Tower",
		Range:         ranges.NewDonut(1.5, 4.5),
		CooldownSteps: 10, BaseDamage: 150, BaseCost: 150, LevelCost: 60,
		RotationThreshold: math.Pi / 3,
		Attack:            AttackHoming, DamageKind: DamageExplosive, Obstacle: ObstacleMissile,
		Color: color.RGBA{255, 250, 250, 255},
	},
	TowerGun: {
		Kind: TowerGun, Name: "Gun Tower",
		Range:         ranges.NewCircular(1.5),
		CooldownSteps: 4, BaseDamage: 40, BaseCost: 30, LevelCost: 20,
		RotationThreshold: math.Pi / 6,
		Attack:            AttackHoming, DamageKind: DamageExplosive, Obstacle: ObstacleBullet,
		Color: color.RGBA{128, 128, 128, 255},
	},
	TowerLaser: {
		Kind: TowerLaser, Name: "Laser Tower",
		Range:         ranges.NewCircular(4),
		CooldownSteps: 1, BaseDamage: 2, BaseCost: 500, LevelCost: 400,
		RotationThreshold: math.Pi / 3,
		Attack:            AttackHoming, DamageKind: DamageEnergy, Obstacle: ObstacleLaser,
		Color: color.RGBA{102, 0, 255, 255},
	},
	TowerPulse: {
		Kind: TowerPulse, Name: "Pulse Tower",
		Range:         ranges.NewPlus(0.5, 1.5),
		CooldownSteps: 20, BaseDamage: 30, BaseCost: 60, LevelCost: 45,
		Attack: AttackArea, DamageKind: DamagePulse, Obstacle: ObstaclePulse,
		Color: color.RGBA{97, 131, 180, 255},
	},
	TowerInferno: {
		Kind: TowerInferno, Name: "Inferno Tower",
		Range:         ranges.NewPlus(0.5, 1.5),
		CooldownSteps: 5, BaseDamage: 20, BaseCost: 100, LevelCost: 80,
		Attack: AttackArea, DamageKind: DamageEnergy, Obstacle: ObstacleInferno,
		Color: color.RGBA{255, 140, 0, 255},
	},
	TowerSlow: {
		Kind: TowerSlow, Name: "Slow Tower",
		Range:         ranges.NewCircular(1.5),
		CooldownSteps: 0, BaseDamage: 1, BaseCost: 100, LevelCost: 120,
		RotationThreshold: math.Pi / 6,
		Attack:            AttackSlow,
		Color:             color.RGBA{70, 160, 220, 255},
	},
}

// TowerKinds — порядок башен в меню выбора (клавиши 1–7)
var TowerKinds = []TowerKind{
	TowerSimple, TowerMissile, TowerGun, TowerLaser, TowerPulse, TowerInferno, TowerSlow,
}

// ObstacleDefinition holds the static data for a tower projectile.
type ObstacleDefinition struct {
	Kind      ObstacleKind
	GridSize  float64 // Размер в долях клетки
	GridSpeed float64 // Клеток за тик
	TurnRate  float64 // Максимальный поворот за тик для самонаводящихся
	HitLimit  int     // Сколько разных врагов может задеть импульс
	Area      bool
	Color     color.RGBA
}

// ObstacleLibrary is the library of projectile definitions, keyed by kind.
var ObstacleLibrary = map[ObstacleKind]ObstacleDefinition{
	ObstacleMissile: {Kind: ObstacleMissile, GridSize: .2, GridSpeed: .3, TurnRate: math.Pi / 3, Color: color.RGBA{245, 240, 229, 255}},
	ObstacleBullet:  {Kind: ObstacleBullet, GridSize: .2, GridSpeed: .4, TurnRate: math.Pi / 3, Color: color.RGBA{255, 165, 0, 255}},
	ObstacleLaser:   {Kind: ObstacleLaser, GridSize: .1, GridSpeed: .5, TurnRate: math.Pi / 3, Color: color.RGBA{255, 0, 0, 255}},
	ObstaclePulse:   {Kind: ObstaclePulse, GridSize: .04, GridSpeed: .35, HitLimit: 20, Area: true, Color: color.RGBA{127, 25, 28, 255}},
	ObstacleInferno: {Kind: ObstacleInferno, GridSize: .04, GridSpeed: .35, HitLimit: 20, Area: true, Color: color.RGBA{255, 165, 0, 255}},
}
