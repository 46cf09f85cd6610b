package entity

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestECS_NewEntityMonotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.NotEqual(t, types.NoEntity, a)
	assert.Greater(t, b, a)
}

func TestECS_EnemyOrder(t *testing.T) {
	ecs := NewECS()
	def := defs.EnemyLibrary[defs.EnemySimple]
	var ids []types.EntityID
	for i := 0; i < 4; i++ {
		e := component.NewEnemy(ecs.NewEntity(), def, geom.Point{}, 60)
		ecs.AddEnemy(e)
		ids = append(ids, e.ID)
	}

	ecs.RemoveEnemy(ids[1])
	_, ok := ecs.Enemy(ids[1])
	assert.False(t, ok, "удалённый враг не разрешается")

	var got []types.EntityID
	for _, e := range ecs.EachEnemy() {
		got = append(got, e.ID)
	}
	assert.Equal(t, []types.EntityID{ids[0], ids[2], ids[3]}, got)
}

func TestECS_TowersByCell(t *testing.T) {
	ecs := NewECS()
	cell := grid.Cell{Col: 2, Row: 3}
	tw := component.NewTower(ecs.NewEntity(), defs.TowerLibrary[defs.TowerGun], cell, geom.Pt(150, 210), 60)
	ecs.AddTower(tw)

	got, ok := ecs.TowerAt(cell)
	require.True(t, ok)
	assert.Same(t, tw, got)

	ecs.RemoveTower(tw.ID)
	_, ok = ecs.TowerAt(cell)
	assert.False(t, ok)
	assert.Empty(t, ecs.EachTower())
}

func TestECS_Obstacles(t *testing.T) {
	ecs := NewECS()
	def := defs.ObstacleLibrary[defs.ObstacleMissile]
	a := component.NewObstacle(ecs.NewEntity(), def, geom.Point{}, 60, 10, defs.DamageExplosive)
	b := component.NewObstacle(ecs.NewEntity(), def, geom.Point{}, 60, 10, defs.DamageExplosive)
	ecs.AddObstacle(a)
	ecs.AddObstacle(b)
	ecs.AddObstacle(a)
	require.Len(t, ecs.EachObstacle(), 2)

	ecs.RemoveObstacle(a.ID)
	assert.Equal(t, []*component.Obstacle{b}, ecs.EachObstacle())
}

func TestECS_OrderSurvivesManyRemovals(t *testing.T) {
	ecs := NewECS()
	def := defs.EnemyLibrary[defs.EnemySimple]
	var want []types.EntityID
	for i := 0; i < 100; i++ {
		e := component.NewEnemy(ecs.NewEntity(), def, geom.Point{}, 60)
		ecs.AddEnemy(e)
		if i%3 == 0 {
			want = append(want, e.ID)
			continue
		}
		ecs.RemoveEnemy(e.ID)
	}
	// повторное удаление ничего не ломает
	ecs.RemoveEnemy(want[0])
	ecs.RemoveEnemy(want[0])
	want = want[1:]

	late := component.NewEnemy(ecs.NewEntity(), def, geom.Point{}, 60)
	ecs.AddEnemy(late)
	want = append(want, late.ID)

	var got []types.EntityID
	for _, e := range ecs.EachEnemy() {
		got = append(got, e.ID)
	}
	assert.Equal(t, want, got)
	assert.Len(t, ecs.Enemies, len(want))
	assert.LessOrEqual(t, len(ecs.enemyOrder.ids), 2*len(want))
}
