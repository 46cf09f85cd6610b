// pkg/grid/grid.go
package grid

import (
	"errors"
	"math"
	"sort"

	"go-tower-sim/pkg/geom"
)

// Grid — прямоугольная сетка cols×rows с набором занятых башнями клеток и
// кэшированным полем потока к выходу. Вход и выход могут лежать на одну
// клетку за границей сетки: так враги заходят на поле и покидают его.
type Grid struct {
	Cols     int
	Rows     int
	CellSize float64
	entry    Cell
	exit     Cell
	outward  Cell
	blocked  map[Cell]struct{}

	path *FlowField // nil — кэш устарел
}

// New создаёт пустую сетку
func New(cols, rows int, cellSize float64, entry, exit Cell) *Grid {
	if cols <= 0 || rows <= 0 || cellSize <= 0 {
		panic("grid: dimensions and cell size must be positive")
	}
	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		entry:    entry,
		exit:     exit,
		blocked:  make(map[Cell]struct{}),
	}
	g.outward = g.outwardDelta(exit)
	return g
}

var (
	ErrExitInside    = errors.New("grid: exit must lie on the border or one cell outside it")
	ErrEntryDetached = errors.New("grid: entry cannot reach the exit")
)

// Validate проверяет геометрию пустой сетки: шаг наружу из выхода должен
// покидать сетку, а вход должен быть связан с выходом.
func (g *Grid) Validate() error {
	if g.InBounds(g.exit.Add(g.outward)) {
		return ErrExitInside
	}
	if !g.ComputePath(g.exit).Contains(g.entry) {
		return ErrEntryDetached
	}
	return nil
}

// outwardDelta — направление «наружу» для выхода: враг, дошедший до цели,
// продолжает идти и покидает сетку.
func (g *Grid) outwardDelta(c Cell) Cell {
	switch {
	case c.Col >= g.Cols-1:
		return Right
	case c.Col <= 0:
		return Left
	case c.Row >= g.Rows-1:
		return Down
	case c.Row <= 0:
		return Up
	}
	return Right
}

// Entry — клетка появления врагов
func (g *Grid) Entry() Cell { return g.entry }

// Goal — клетка выхода, к которой строится поле потока
func (g *Grid) Goal() Cell { return g.exit }

// Outward — направление выхода за пределы сетки из цели
func (g *Grid) Outward() Cell { return g.outward }

// InBounds проверяет, что клетка внутри сетки
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// CanPlace — можно ли вообще ставить башню на клетку (без учёта пути)
func (g *Grid) CanPlace(c Cell) bool {
	return g.InBounds(c) && c != g.entry && c != g.exit
}

// IsBlocked — занята ли клетка башней
func (g *Grid) IsBlocked(c Cell) bool {
	_, ok := g.blocked[c]
	return ok
}

// IsPassable — может ли враг пройти через клетку
func (g *Grid) IsPassable(c Cell) bool {
	if c == g.entry || c == g.exit {
		return true
	}
	return g.InBounds(c) && !g.IsBlocked(c)
}

// Block занимает клетку и сбрасывает кэш поля потока
func (g *Grid) Block(c Cell) {
	g.blocked[c] = struct{}{}
	g.path = nil
}

// Unblock освобождает клетку и сбрасывает кэш поля потока
func (g *Grid) Unblock(c Cell) {
	if _, ok := g.blocked[c]; !ok {
		return
	}
	delete(g.blocked, c)
	g.path = nil
}

// Blocked возвращает отсортированный список занятых клеток
func (g *Grid) Blocked() []Cell {
	out := make([]Cell, 0, len(g.blocked))
	for c := range g.blocked {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// ComputePath строит поле потока к goal для текущего набора занятых клеток
func (g *Grid) ComputePath(goal Cell) *FlowField {
	return computeFlowField(goal, g.outwardDelta(goal), g.IsPassable)
}

// Path возвращает актуальное поле потока к выходу, пересчитывая его при необходимости
func (g *Grid) Path() *FlowField {
	if g.path == nil {
		g.path = computeFlowField(g.exit, g.outward, g.IsPassable)
	}
	return g.path
}

// GetBestDelta — шаг к выходу для клетки по текущему полю
func (g *Grid) GetBestDelta(c Cell) (Cell, error) {
	return g.Path().GetBestDelta(c)
}

// AttemptPlacement проверяет, можно ли поставить башню в клетку под пикселем,
// ничего не меняя. Возвращает вердикт и поле потока, каким оно стало бы.
// Для заведомо недопустимой клетки возвращается текущее поле.
func (g *Grid) AttemptPlacement(pixel geom.Point) (bool, *FlowField) {
	cell := g.PixelToCell(pixel)
	if !g.CanPlace(cell) || g.IsBlocked(cell) {
		return false, g.Path()
	}

	preview := computeFlowField(g.exit, g.outward, func(c Cell) bool {
		if c == cell {
			return false
		}
		return g.IsPassable(c)
	})
	return preview.Contains(g.entry), preview
}

// PixelToCell переводит пиксельные координаты в клетку
func (g *Grid) PixelToCell(p geom.Point) Cell {
	return Cell{
		Col: int(math.Floor(p.X / g.CellSize)),
		Row: int(math.Floor(p.Y / g.CellSize)),
	}
}

// CellToPixelCentre возвращает пиксельный центр клетки
func (g *Grid) CellToPixelCentre(c Cell) geom.Point {
	return geom.Point{
		X: (float64(c.Col) + 0.5) * g.CellSize,
		Y: (float64(c.Row) + 0.5) * g.CellSize,
	}
}

// PixelToCellOffset — смещение точки от центра её клетки в долях клетки
func (g *Grid) PixelToCellOffset(p geom.Point) geom.Point {
	centre := g.CellToPixelCentre(g.PixelToCell(p))
	return p.Sub(centre).Scale(1 / g.CellSize)
}

// Pixels — пиксельный прямоугольник сетки
func (g *Grid) Pixels() geom.Rect {
	return geom.Rect{
		Min: geom.Point{},
		Max: geom.Point{X: float64(g.Cols) * g.CellSize, Y: float64(g.Rows) * g.CellSize},
	}
}
