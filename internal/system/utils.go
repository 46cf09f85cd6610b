// internal/system/utils.go
package system

import (
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

// geomDelta переводит шаг по клеткам в единичный пиксельный вектор
func geomDelta(d grid.Cell) geom.Point {
	return geom.Pt(float64(d.Col), float64(d.Row))
}

// pulseDirections — север, восток, юг, запад
var pulseDirections = [4]geom.Point{
	geomDelta(grid.Up),
	geomDelta(grid.Right),
	geomDelta(grid.Down),
	geomDelta(grid.Left),
}
