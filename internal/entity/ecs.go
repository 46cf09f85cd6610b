// internal/entity/ecs.go
package entity

import (
	"iter"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

// ECS — реестр всех сущностей мира. Порядок обхода — порядок добавления,
// поэтому симуляция детерминирована.
type ECS struct {
	NextID types.EntityID

	Enemies   map[types.EntityID]*component.Enemy
	Towers    map[types.EntityID]*component.Tower
	Obstacles map[types.EntityID]*component.Obstacle

	TowersByCell map[grid.Cell]types.EntityID

	enemyOrder    order
	towerOrder    order
	obstacleOrder order
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Obstacles:     make(map[types.EntityID]*component.Obstacle),
		TowersByCell:  make(map[grid.Cell]types.EntityID),
		enemyOrder:    newOrder(),
		towerOrder:    newOrder(),
		obstacleOrder: newOrder(),
	}
}

// NewEntity выдаёт новый идентификатор; идентификаторы не переиспользуются
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy регистрирует врага
func (ecs *ECS) AddEnemy(e *component.Enemy) {
	if _, exists := ecs.Enemies[e.ID]; exists {
		return
	}
	ecs.Enemies[e.ID] = e
	ecs.enemyOrder.push(e.ID)
}

// Enemy разрешает слабую ссылку на врага
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies[id]
	return e, ok
}

// RemoveEnemy убирает врага из реестра
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	if _, exists := ecs.Enemies[id]; !exists {
		return
	}
	delete(ecs.Enemies, id)
	ecs.enemyOrder.remove(id)
}

// EachEnemy возвращает врагов в порядке появления
func (ecs *ECS) EachEnemy() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(ecs.Enemies))
	for id := range ecs.enemyOrder.live() {
		out = append(out, ecs.Enemies[id])
	}
	return out
}

// AddTower регистрирует башню и занимает её клетку
func (ecs *ECS) AddTower(t *component.Tower) {
	if _, exists := ecs.Towers[t.ID]; exists {
		return
	}
	ecs.Towers[t.ID] = t
	ecs.TowersByCell[t.Cell] = t.ID
	ecs.towerOrder.push(t.ID)
}

// TowerAt возвращает башню на клетке
func (ecs *ECS) TowerAt(c grid.Cell) (*component.Tower, bool) {
	id, ok := ecs.TowersByCell[c]
	if !ok {
		return nil, false
	}
	return ecs.Towers[id], true
}

// RemoveTower убирает башню и освобождает клетку
func (ecs *ECS) RemoveTower(id types.EntityID) {
	t, exists := ecs.Towers[id]
	if !exists {
		return
	}
	delete(ecs.Towers, id)
	delete(ecs.TowersByCell, t.Cell)
	ecs.towerOrder.remove(id)
}

// EachTower возвращает башни в порядке постройки
func (ecs *ECS) EachTower() []*component.Tower {
	out := make([]*component.Tower, 0, len(ecs.Towers))
	for id := range ecs.towerOrder.live() {
		out = append(out, ecs.Towers[id])
	}
	return out
}

// AddObstacle регистрирует снаряд
func (ecs *ECS) AddObstacle(o *component.Obstacle) {
	if _, exists := ecs.Obstacles[o.ID]; exists {
		return
	}
	ecs.Obstacles[o.ID] = o
	ecs.obstacleOrder.push(o.ID)
}

// RemoveObstacle убирает снаряд
func (ecs *ECS) RemoveObstacle(id types.EntityID) {
	if _, exists := ecs.Obstacles[id]; !exists {
		return
	}
	delete(ecs.Obstacles, id)
	ecs.obstacleOrder.remove(id)
}

// EachObstacle возвращает снаряды в порядке выпуска
func (ecs *ECS) EachObstacle() []*component.Obstacle {
	out := make([]*component.Obstacle, 0, len(ecs.Obstacles))
	for id := range ecs.obstacleOrder.live() {
		out = append(out, ecs.Obstacles[id])
	}
	return out
}

// order — порядок добавления с удалением за O(1). Удалённые id остаются
// дырами (NoEntity) до уплотнения.
type order struct {
	ids   []types.EntityID
	index map[types.EntityID]int
	holes int
}

func newOrder() order {
	return order{index: make(map[types.EntityID]int)}
}

func (o *order) push(id types.EntityID) {
	o.index[id] = len(o.ids)
	o.ids = append(o.ids, id)
}

func (o *order) remove(id types.EntityID) {
	i, ok := o.index[id]
	if !ok {
		return
	}
	delete(o.index, id)
	o.ids[i] = types.NoEntity
	o.holes++
	if o.holes*2 > len(o.ids) {
		o.compact()
	}
}

// compact сдвигает живые id к началу, сохраняя их порядок
func (o *order) compact() {
	n := 0
	for _, id := range o.ids {
		if id == types.NoEntity {
			continue
		}
		o.ids[n] = id
		o.index[id] = n
		n++
	}
	clear(o.ids[n:])
	o.ids = o.ids[:n]
	o.holes = 0
}

// live перебирает id без дыр
func (o *order) live() iter.Seq[types.EntityID] {
	return func(yield func(types.EntityID) bool) {
		for _, id := range o.ids {
			if id != types.NoEntity && !yield(id) {
				return
			}
		}
	}
}
