package spatial

import (
	"slices"
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newManager — область 300×300, корзины по 100 пикселей (3×3)
func newManager() *UnitManager {
	return NewUnitManager(geom.Rect{Max: geom.Pt(300, 300)}, 100)
}

func newEnemy(id types.EntityID, x, y float64) *component.Enemy {
	return component.NewEnemy(id, defs.EnemyLibrary[defs.EnemySimple], geom.Pt(x, y), 60)
}

func ids(seq func(func(*component.Enemy) bool)) []types.EntityID {
	var out []types.EntityID
	for e := range seq {
		out = append(out, e.ID)
	}
	slices.Sort(out)
	return out
}

func TestUnitManager_InsertRemove(t *testing.T) {
	um := newManager()
	a, b, c := newEnemy(1, 10, 10), newEnemy(2, 20, 20), newEnemy(3, 30, 30)
	um.Insert(a)
	um.Insert(b)
	um.Insert(c)
	um.Insert(a)
	assert.Equal(t, 3, um.Len(), "повторная вставка не дублирует")

	um.Remove(1)
	assert.False(t, um.Contains(1))
	bucket, err := um.GetBucketForPosition(geom.Pt(50, 50))
	require.NoError(t, err)
	assert.ElementsMatch(t, []*component.Enemy{b, c}, bucket)

	um.Remove(3)
	um.Remove(42)
	bucket, _ = um.GetBucketForPosition(geom.Pt(50, 50))
	assert.Equal(t, []*component.Enemy{b}, bucket)
	assert.Equal(t, 1, um.Len())
}

func TestUnitManager_UpdateMovesBetweenBuckets(t *testing.T) {
	um := newManager()
	e := newEnemy(1, 90, 50)
	um.Insert(e)

	e.Position = geom.Pt(99, 50)
	um.Update(e)
	first, _ := um.GetBucketForPosition(geom.Pt(10, 10))
	assert.Len(t, first, 1, "внутри корзины враг остаётся на месте")

	e.Position = geom.Pt(110, 50)
	um.Update(e)
	first, _ = um.GetBucketForPosition(geom.Pt(10, 10))
	second, _ := um.GetBucketForPosition(geom.Pt(150, 10))
	assert.Empty(t, first)
	assert.Equal(t, []*component.Enemy{e}, second)
}

func TestUnitManager_OutOfBounds(t *testing.T) {
	um := newManager()
	outside := newEnemy(1, -30, 150)
	um.Insert(outside)
	assert.True(t, um.Contains(1), "враг за границей хранится в крайней корзине")

	edge, err := um.GetBucketForPosition(geom.Pt(0, 150))
	require.NoError(t, err)
	assert.Equal(t, []*component.Enemy{outside}, edge)

	_, err = um.GetBucketForPosition(geom.Pt(-1, 150))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = um.GetBucketsAlong(geom.Pt(299, 150), geom.Pt(301, 150))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestUnitManager_GetBucketsAlong(t *testing.T) {
	um := newManager()
	um.Insert(newEnemy(1, 50, 50))
	um.Insert(newEnemy(2, 150, 50))
	um.Insert(newEnemy(3, 250, 50))

	same, err := um.GetBucketsAlong(geom.Pt(10, 10), geom.Pt(20, 10))
	require.NoError(t, err)
	assert.Len(t, same, 1, "одна корзина не дублируется")

	across, err := um.GetBucketsAlong(geom.Pt(95, 10), geom.Pt(105, 10))
	require.NoError(t, err)
	assert.Len(t, across, 2)
}

func TestUnitManager_GetClosish(t *testing.T) {
	um := newManager()
	um.Insert(newEnemy(1, 50, 50))
	um.Insert(newEnemy(2, 150, 150))
	um.Insert(newEnemy(3, 250, 250))

	assert.Equal(t, []types.EntityID{1, 2}, ids(um.GetClosish(geom.Pt(10, 10))))
	assert.Equal(t, []types.EntityID{1, 2, 3}, ids(um.GetClosish(geom.Pt(150, 150))))

	count := 0
	for range um.GetClosish(geom.Pt(150, 150)) {
		count++
		break
	}
	assert.Equal(t, 1, count, "обход останавливается по break")
}

func TestUnitManager_GetNear(t *testing.T) {
	um := NewUnitManager(geom.Rect{Max: geom.Pt(500, 100)}, 100)
	for i := 0; i < 5; i++ {
		um.Insert(newEnemy(types.EntityID(i+1), float64(i)*100+50, 50))
	}

	assert.Equal(t, []types.EntityID{1, 2}, ids(um.GetClosish(geom.Pt(50, 50))))
	assert.Equal(t, []types.EntityID{1, 2, 3, 4}, ids(um.GetNear(geom.Pt(50, 50), 300)))
	assert.Equal(t, []types.EntityID{1, 2, 3, 4, 5}, ids(um.GetNear(geom.Pt(250, 50), 1000)))
}
