package grid

import (
	"testing"

	"go-tower-sim/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGrid — сетка 6×4 с входом слева и выходом справа во второй строке.
func newTestGrid() *Grid {
	return New(6, 4, 10, Cell{Col: -1, Row: 1}, Cell{Col: 6, Row: 1})
}

func TestGrid_PixelCellTransforms(t *testing.T) {
	g := newTestGrid()

	for _, c := range []Cell{{0, 0}, {5, 3}, {-1, 1}, {6, 1}, {2, 2}} {
		assert.Equal(t, c, g.PixelToCell(g.CellToPixelCentre(c)), "центр клетки %v должен отображаться обратно", c)
	}

	assert.Equal(t, geom.Pt(25, 15), g.CellToPixelCentre(Cell{Col: 2, Row: 1}))
	assert.Equal(t, Cell{Col: -1, Row: 0}, g.PixelToCell(geom.Pt(-0.1, 9.99)))

	off := g.PixelToCellOffset(geom.Pt(27, 15))
	assert.InDelta(t, 0.2, off.X, 1e-9)
	assert.InDelta(t, 0, off.Y, 1e-9)

	assert.Equal(t, geom.Pt(60, 40), g.Pixels().Max)
}

func TestGrid_ComputePath(t *testing.T) {
	g := newTestGrid()
	ff := g.Path()

	require.True(t, ff.Contains(g.Entry()), "вход должен быть достижим на пустой сетке")
	assert.Equal(t, 6*4+2, ff.Len(), "все клетки сетки плюс вход и выход")

	goalDelta, err := ff.GetBestDelta(g.Goal())
	require.NoError(t, err)
	assert.Equal(t, Right, goalDelta, "из выхода враг уходит наружу")

	d, _ := ff.GetBestDelta(Cell{Col: 5, Row: 1})
	assert.Equal(t, Right, d)
	d, _ = ff.GetBestDelta(Cell{Col: 5, Row: 0})
	assert.Equal(t, Down, d)
	d, _ = ff.GetBestDelta(Cell{Col: 5, Row: 2})
	assert.Equal(t, Up, d)

	assert.Equal(t, 7, ff.Distance(g.Entry()))
	assert.Equal(t, -1, ff.Distance(Cell{Col: 10, Row: 10}))

	path := ff.GetShortest(g.Entry())
	require.Len(t, path, 8)
	assert.Equal(t, g.Entry(), path[0])
	assert.Equal(t, g.Goal(), path[len(path)-1])
}

func TestGrid_FlowFieldDeterminism(t *testing.T) {
	g := newTestGrid()
	g.Block(Cell{Col: 2, Row: 1})
	g.Block(Cell{Col: 3, Row: 2})

	first := g.ComputePath(g.Goal())
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Deltas, g.ComputePath(g.Goal()).Deltas, "одинаковый набор блоков — одинаковое поле")
	}

	other := newTestGrid()
	other.Block(Cell{Col: 3, Row: 2})
	other.Block(Cell{Col: 2, Row: 1})
	assert.Equal(t, first.Deltas, other.Path().Deltas, "порядок блокировки не влияет на поле")
}

func TestGrid_BlockInvalidatesPath(t *testing.T) {
	g := newTestGrid()
	before := g.Path()
	assert.True(t, before.Contains(Cell{Col: 3, Row: 1}))

	g.Block(Cell{Col: 3, Row: 1})
	after := g.Path()
	assert.False(t, after.Contains(Cell{Col: 3, Row: 1}))
	_, err := g.GetBestDelta(Cell{Col: 3, Row: 1})
	assert.ErrorIs(t, err, ErrNotPathable)

	g.Unblock(Cell{Col: 3, Row: 1})
	assert.True(t, g.Path().Contains(Cell{Col: 3, Row: 1}))
	assert.Empty(t, g.Blocked())
}

func TestGrid_AttemptPlacement(t *testing.T) {
	t.Run("legal placement does not mutate", func(t *testing.T) {
		g := newTestGrid()
		legal, preview := g.AttemptPlacement(g.CellToPixelCentre(Cell{Col: 3, Row: 0}))
		assert.True(t, legal)
		assert.False(t, preview.Contains(Cell{Col: 3, Row: 0}))
		assert.False(t, g.IsBlocked(Cell{Col: 3, Row: 0}))
		assert.True(t, g.Path().Contains(Cell{Col: 3, Row: 0}))
	})

	t.Run("severing placement is illegal", func(t *testing.T) {
		g := newTestGrid()
		// Единственный сосед выхода внутри сетки — (5,1).
		legal, preview := g.AttemptPlacement(g.CellToPixelCentre(Cell{Col: 5, Row: 1}))
		assert.False(t, legal)
		assert.False(t, preview.Contains(g.Entry()))
		assert.Empty(t, g.Blocked())
	})

	t.Run("occupied and outside cells are illegal", func(t *testing.T) {
		g := newTestGrid()
		g.Block(Cell{Col: 1, Row: 3})

		legal, _ := g.AttemptPlacement(g.CellToPixelCentre(Cell{Col: 1, Row: 3}))
		assert.False(t, legal, "занятая клетка")
		legal, _ = g.AttemptPlacement(g.CellToPixelCentre(g.Entry()))
		assert.False(t, legal, "вход")
		legal, _ = g.AttemptPlacement(geom.Pt(500, 500))
		assert.False(t, legal, "вне сетки")
	})

	t.Run("committed legal placements keep a path", func(t *testing.T) {
		g := newTestGrid()
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				c := Cell{Col: col, Row: row}
				if legal, _ := g.AttemptPlacement(g.CellToPixelCentre(c)); legal {
					g.Block(c)
				}
				require.True(t, g.Path().Contains(g.Entry()), "после %v путь должен остаться", c)
			}
		}
		assert.NotEmpty(t, g.Blocked())
	})
}

func TestGrid_Outward(t *testing.T) {
	assert.Equal(t, Right, New(4, 4, 1, Cell{-1, 0}, Cell{4, 0}).Outward())
	assert.Equal(t, Left, New(4, 4, 1, Cell{4, 0}, Cell{-1, 2}).Outward())
	assert.Equal(t, Down, New(4, 4, 1, Cell{1, -1}, Cell{1, 4}).Outward())
	assert.Equal(t, Up, New(4, 4, 1, Cell{1, 4}, Cell{1, -1}).Outward())
}

func TestGrid_Validate(t *testing.T) {
	require.NoError(t, newTestGrid().Validate())
	require.NoError(t, New(4, 4, 1, Cell{0, 0}, Cell{3, 3}).Validate(), "вход и выход могут лежать на краю")

	assert.ErrorIs(t, New(6, 6, 1, Cell{-1, 3}, Cell{2, 2}).Validate(), ErrExitInside)
	assert.ErrorIs(t, New(6, 6, 1, Cell{-3, 2}, Cell{6, 3}).Validate(), ErrEntryDetached)
	assert.ErrorIs(t, New(6, 6, 1, Cell{-1, -1}, Cell{6, 3}).Validate(), ErrEntryDetached, "угол за сеткой не соседствует ни с одной клеткой")
}
