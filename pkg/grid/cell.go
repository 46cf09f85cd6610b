// pkg/grid/cell.go
package grid

import (
	"fmt"

	"go-tower-sim/pkg/utils"
)

// Cell представляет клетку сетки (столбец, строка). Клетка же служит и
// единичным смещением (delta) между соседями.
type Cell struct {
	Col, Row int
}

// Направления соседей. Порядок обхода фиксирован (вверх, вправо, вниз, влево):
// от него зависит детерминированность поля потока.
var (
	Up    = Cell{Col: 0, Row: -1}
	Right = Cell{Col: 1, Row: 0}
	Down  = Cell{Col: 0, Row: 1}
	Left  = Cell{Col: -1, Row: 0}
)

// NeighborDirections — направления в порядке обхода BFS.
var NeighborDirections = [4]Cell{Up, Right, Down, Left}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Subtract возвращает разность двух клеток
func (c Cell) Subtract(other Cell) Cell {
	return Cell{Col: c.Col - other.Col, Row: c.Row - other.Row}
}

// Neighbors возвращает всех четырёх соседей в порядке обхода
func (c Cell) Neighbors() [4]Cell {
	var out [4]Cell
	for i, d := range NeighborDirections {
		out[i] = c.Add(d)
	}
	return out
}

// Distance — манхэттенское расстояние между клетками
func (c Cell) Distance(to Cell) int {
	return utils.Abs(c.Col-to.Col) + utils.Abs(c.Row-to.Row)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
