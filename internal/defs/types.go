// internal/defs/types.go
package defs

// DamageKind defines the type of damage dealt.
type DamageKind string

const (
	DamageProjectile DamageKind = "projectile"
	DamageExplosive  DamageKind = "explosive"
	DamagePulse      DamageKind = "pulse"
	DamageEnergy     DamageKind = "energy"
)

// AllDamageKinds перечисляет виды урона в фиксированном порядке
var AllDamageKinds = []DamageKind{DamageProjectile, DamageExplosive, DamagePulse, DamageEnergy}

// MovementRule defines how an enemy walks to the goal.
type MovementRule string

const (
	MovementPathFollower MovementRule = "path"    // по полю потока через центры клеток
	MovementBeeline      MovementRule = "beeline" // напрямую к выходу
)

// AttackBehavior defines what a tower does when it fires.
type AttackBehavior string

const (
	AttackInstant AttackBehavior = "instant" // урон сразу по цели
	AttackHoming  AttackBehavior = "homing"  // снаряд, догоняющий цель
	AttackArea    AttackBehavior = "area"    // четыре импульса по сторонам света
	AttackSlow    AttackBehavior = "slow"    // замедление без урона
)

// ObstacleKind defines the type of projectile spawned by a tower.
type ObstacleKind string

const (
	ObstacleMissile ObstacleKind = "missile"
	ObstacleBullet  ObstacleKind = "bullet"
	ObstacleLaser   ObstacleKind = "laser"
	ObstaclePulse   ObstacleKind = "pulse"
	ObstacleInferno ObstacleKind = "inferno"
)
