// component/movement.go
package component

import (
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

// Unit — общая часть всех сущностей на поле: позиция в пикселях и размер в долях клетки
type Unit struct {
	Position geom.Point
	GridSize geom.Size
	CellSize float64
}

// NewUnit — юнит в точке position с квадратным размером gridSize
func NewUnit(position geom.Point, gridSize, cellSize float64) Unit {
	return Unit{
		Position: position,
		GridSize: geom.Size{W: gridSize, H: gridSize},
		CellSize: cellSize,
	}
}

// BoundingBox — пиксельный прямоугольник вокруг позиции
func (u *Unit) BoundingBox() geom.Rect {
	return geom.RectAround(u.Position, u.GridSize.W*u.CellSize/2, u.GridSize.H*u.CellSize/2)
}

// MoveBy сдвигает юнит на delta пикселей
func (u *Unit) MoveBy(delta geom.Point) {
	u.Position = u.Position.Add(delta)
}

// PathState — состояние движения врага по полю потока
type PathState struct {
	NextCell grid.Cell // Клетка, к центру которой враг идёт
	LastCell grid.Cell // Клетка, в центре которой враг был последний раз
	Heading  bool      // false — точка маршрута ещё не выбрана
	PastGoal bool      // Враг прошёл центр выхода и уходит с поля
}
