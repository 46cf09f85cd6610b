// internal/spatial/unit_manager.go
package spatial

import (
	"errors"
	"iter"
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/utils"
)

// ErrOutOfBounds — точка лежит за пределами индексируемой области.
var ErrOutOfBounds = errors.New("spatial: position is out of bounds")

// slot — где лежит враг: номер корзины и позиция в ней
type slot struct {
	bucket int
	index  int
}

// UnitManager — пространственный индекс врагов: прямоугольная область,
// разбитая на квадратные корзины. Каждый враг лежит ровно в одной корзине,
// выбранной по его позиции; позиции за границей попадают в крайнюю корзину.
type UnitManager struct {
	bounds     geom.Rect
	bucketSize float64
	cols, rows int

	buckets [][]*component.Enemy
	slots   map[types.EntityID]slot
}

// NewUnitManager создаёт индекс над bounds с корзинами bucketSize×bucketSize пикселей
func NewUnitManager(bounds geom.Rect, bucketSize float64) *UnitManager {
	if bucketSize <= 0 {
		panic("spatial: bucket size must be positive")
	}
	bounds = bounds.Normalized()
	cols := int(math.Ceil((bounds.Max.X - bounds.Min.X) / bucketSize))
	rows := int(math.Ceil((bounds.Max.Y - bounds.Min.Y) / bucketSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &UnitManager{
		bounds:     bounds,
		bucketSize: bucketSize,
		cols:       cols,
		rows:       rows,
		buckets:    make([][]*component.Enemy, cols*rows),
		slots:      make(map[types.EntityID]slot),
	}
}

// bucketCoords — координаты корзины для точки, прижатые к краям
func (um *UnitManager) bucketCoords(p geom.Point) (int, int) {
	col := int(math.Floor((p.X - um.bounds.Min.X) / um.bucketSize))
	row := int(math.Floor((p.Y - um.bounds.Min.Y) / um.bucketSize))
	return utils.Clamp(col, 0, um.cols-1), utils.Clamp(row, 0, um.rows-1)
}

func (um *UnitManager) bucketIndex(p geom.Point) int {
	col, row := um.bucketCoords(p)
	return row*um.cols + col
}

// Insert добавляет врага; повторная вставка равносильна Update
func (um *UnitManager) Insert(e *component.Enemy) {
	if _, ok := um.slots[e.ID]; ok {
		um.Update(e)
		return
	}
	um.put(e, um.bucketIndex(e.Position))
}

func (um *UnitManager) put(e *component.Enemy, b int) {
	um.buckets[b] = append(um.buckets[b], e)
	um.slots[e.ID] = slot{bucket: b, index: len(um.buckets[b]) - 1}
}

// Remove убирает врага из индекса за O(1)
func (um *UnitManager) Remove(id types.EntityID) {
	s, ok := um.slots[id]
	if !ok {
		return
	}
	bucket := um.buckets[s.bucket]
	last := len(bucket) - 1
	if s.index != last {
		moved := bucket[last]
		bucket[s.index] = moved
		um.slots[moved.ID] = slot{bucket: s.bucket, index: s.index}
	}
	bucket[last] = nil
	um.buckets[s.bucket] = bucket[:last]
	delete(um.slots, id)
}

// Update переносит врага в другую корзину, если он пересёк её границу
func (um *UnitManager) Update(e *component.Enemy) {
	s, ok := um.slots[e.ID]
	if !ok {
		um.Insert(e)
		return
	}
	b := um.bucketIndex(e.Position)
	if b == s.bucket {
		return
	}
	um.Remove(e.ID)
	um.put(e, b)
}

// Contains — есть ли враг в индексе
func (um *UnitManager) Contains(id types.EntityID) bool {
	_, ok := um.slots[id]
	return ok
}

// Len — число врагов в индексе
func (um *UnitManager) Len() int {
	return len(um.slots)
}

// GetBucketForPosition возвращает копию содержимого корзины под точкой.
// Для точки вне области — ErrOutOfBounds.
func (um *UnitManager) GetBucketForPosition(p geom.Point) ([]*component.Enemy, error) {
	if !um.bounds.Contains(p) {
		return nil, ErrOutOfBounds
	}
	bucket := um.buckets[um.bucketIndex(p)]
	out := make([]*component.Enemy, len(bucket))
	copy(out, bucket)
	return out, nil
}

// GetBucketsAlong — объединение корзин двух точек без повторов.
// Ошибка, если любая из точек вне области.
func (um *UnitManager) GetBucketsAlong(from, to geom.Point) ([]*component.Enemy, error) {
	if !um.bounds.Contains(from) || !um.bounds.Contains(to) {
		return nil, ErrOutOfBounds
	}
	a, b := um.bucketIndex(from), um.bucketIndex(to)
	out := make([]*component.Enemy, 0, len(um.buckets[a])+len(um.buckets[b]))
	out = append(out, um.buckets[a]...)
	if b != a {
		out = append(out, um.buckets[b]...)
	}
	return out, nil
}

// GetClosish перебирает врагов в корзине точки и восьми соседних
func (um *UnitManager) GetClosish(p geom.Point) iter.Seq[*component.Enemy] {
	col, row := um.bucketCoords(p)
	return um.scan(col-1, row-1, col+1, row+1)
}

// GetNear перебирает врагов во всех корзинах, задетых квадратом 2r×2r вокруг точки
func (um *UnitManager) GetNear(p geom.Point, radius float64) iter.Seq[*component.Enemy] {
	minCol, minRow := um.bucketCoords(geom.Pt(p.X-radius, p.Y-radius))
	maxCol, maxRow := um.bucketCoords(geom.Pt(p.X+radius, p.Y+radius))
	return um.scan(minCol, minRow, maxCol, maxRow)
}

// scan обходит корзины прямоугольника по строкам. Индекс нельзя менять во время обхода.
func (um *UnitManager) scan(minCol, minRow, maxCol, maxRow int) iter.Seq[*component.Enemy] {
	minCol, maxCol = utils.Clamp(minCol, 0, um.cols-1), utils.Clamp(maxCol, 0, um.cols-1)
	minRow, maxRow = utils.Clamp(minRow, 0, um.rows-1), utils.Clamp(maxRow, 0, um.rows-1)
	return func(yield func(*component.Enemy) bool) {
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				for _, e := range um.buckets[row*um.cols+col] {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}
