package component

import (
	"math"
	"testing"

	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"

	"github.com/stretchr/testify/assert"
)

func TestEnemy_Damage(t *testing.T) {
	t.Run("health stays within bounds", func(t *testing.T) {
		e := NewEnemy(1, defs.EnemyLibrary[defs.EnemySimple], geom.Point{}, 60)
		e.Damage(30, defs.DamageProjectile)
		assert.Equal(t, 70, e.Health)
		e.Damage(-5, defs.DamageProjectile)
		assert.Equal(t, 70, e.Health, "отрицательный урон не лечит")
		e.Damage(1000, defs.DamageEnergy)
		assert.Equal(t, 0, e.Health, "здоровье не уходит в минус")
		assert.True(t, e.IsDead())
		assert.False(t, e.Active())
	})

	t.Run("hardened ignores projectile and explosive", func(t *testing.T) {
		e := NewEnemy(1, defs.EnemyLibrary[defs.EnemyHardened], geom.Point{}, 60)
		e.Damage(50, defs.DamageProjectile)
		e.Damage(50, defs.DamageExplosive)
		assert.Equal(t, 100, e.Health)
		e.Damage(30, defs.DamagePulse)
		assert.Equal(t, 70, e.Health)
		assert.InDelta(t, 0.7, e.PercentageHealth(), 1e-9)
	})

	t.Run("invincible ignores everything", func(t *testing.T) {
		e := NewEnemy(1, defs.EnemyLibrary[defs.EnemyInvincible], geom.Point{}, 60)
		for _, k := range defs.AllDamageKinds {
			e.Damage(1000, k)
		}
		assert.Equal(t, e.MaxHealth, e.Health)
	})

	t.Run("escaped enemy is not a target", func(t *testing.T) {
		e := NewEnemy(1, defs.EnemyLibrary[defs.EnemySimple], geom.Point{}, 60)
		e.Escaped = true
		assert.False(t, e.Active())
	})
}

func TestEnemy_SpeedAndBox(t *testing.T) {
	e := NewEnemy(1, defs.EnemyLibrary[defs.EnemySimple], geom.Pt(100, 100), 60)
	assert.InDelta(t, 5.0/60, e.Speed(), 1e-12)
	e.Slow = &SlowEffect{Remaining: 3, Factor: 0.5}
	assert.InDelta(t, 2.5/60, e.Speed(), 1e-12)

	box := e.BoundingBox()
	assert.InDelta(t, 94, box.Min.X, 1e-9)
	assert.InDelta(t, 106, box.Max.Y, 1e-9)
}

func TestTower(t *testing.T) {
	def := defs.TowerLibrary[defs.TowerSimple]
	tw := NewTower(7, def, grid.Cell{Col: 1, Row: 1}, geom.Pt(90, 90), 60)

	assert.Equal(t, 1, tw.Level)
	assert.Equal(t, 5, tw.Damage())
	assert.Equal(t, 30, tw.Value())
	assert.InDelta(t, math.Pi/4, tw.Rotation, 1e-12)

	assert.True(t, tw.IsPositionInRange(geom.Pt(90+1.5*60, 90)))
	assert.False(t, tw.IsPositionInRange(geom.Pt(90+1.6*60, 90)))

	assert.False(t, tw.CanUpgradeTo(1))
	assert.False(t, tw.CanUpgradeTo(3), "через уровень нельзя")
	assert.True(t, tw.CanUpgradeTo(2))
	assert.Equal(t, 20, tw.UpgradeCost(2))

	tw.Level = 3
	assert.Equal(t, 15, tw.Damage())
	assert.Equal(t, 70, tw.Value())
	assert.False(t, tw.CanUpgradeTo(4), "выше максимального уровня нельзя")
}

func TestCountdown(t *testing.T) {
	c := NewCountdown(2)
	assert.True(t, c.IsDone(), "новый счётчик готов")

	c.Start()
	assert.False(t, c.IsDone())
	c.Step()
	assert.False(t, c.IsDone())
	c.Step()
	assert.True(t, c.IsDone())
	c.Step()
	assert.Equal(t, 0, c.Remaining())

	zero := NewCountdown(0)
	zero.Start()
	assert.True(t, zero.IsDone())
}

func TestObstacle_Hits(t *testing.T) {
	o := NewObstacle(1, defs.ObstacleLibrary[defs.ObstaclePulse], geom.Point{}, 60, 30, defs.DamagePulse)
	assert.InDelta(t, 21, o.Speed, 1e-9)
	assert.Equal(t, 20, o.HitLimit)
	assert.False(t, o.HasHit(3))
	o.MarkHit(3)
	o.MarkHit(3)
	assert.True(t, o.HasHit(3))
	assert.Equal(t, 1, o.Hits())
}
