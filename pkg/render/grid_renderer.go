// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GridRenderer рисует поле, башни, врагов и снаряды.
// Клетки и путь кэшируются в mapImage и перерисовываются после смены башен.
type GridRenderer struct {
	geo      app.Geometry
	colors   *MapColors
	offset   geom.Point // Сдвиг поля на экране: вход и выход лежат за краем сетки
	fontFace font.Face
	mapImage *ebiten.Image
	dirty    bool
}

func NewGridRenderer(geo app.Geometry, colors *MapColors, screenWidth, screenHeight int) *GridRenderer {
	return &GridRenderer{
		geo:      geo,
		colors:   colors,
		offset:   geom.Pt(geo.CellSize, geo.CellSize),
		fontFace: basicfont.Face7x13,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
		dirty:    true,
	}
}

// Invalidate — башни изменились, задник нужно перерисовать
func (r *GridRenderer) Invalidate() {
	r.dirty = true
}

// ScreenToPixel переводит координаты экрана в пиксели сетки
func (r *GridRenderer) ScreenToPixel(x, y int) geom.Point {
	return geom.Pt(float64(x), float64(y)).Sub(r.offset)
}

func (r *GridRenderer) cellRect(c grid.Cell) (x, y, size float32) {
	s := r.geo.CellSize
	return float32(float64(c.Col)*s + r.offset.X), float32(float64(c.Row)*s + r.offset.Y), float32(s)
}

func (r *GridRenderer) toScreen(p geom.Point) (float32, float32) {
	return float32(p.X + r.offset.X), float32(p.Y + r.offset.Y)
}

// RenderMapImage рисует клетки, вход, выход и текущий путь
func (r *GridRenderer) RenderMapImage(g *app.Game) {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for row := 0; row < r.geo.Rows; row++ {
		for col := 0; col < r.geo.Cols; col++ {
			c := grid.Cell{Col: col, Row: row}
			fill := r.colors.PassableColor
			if g.Grid.IsBlocked(c) {
				fill = r.colors.ImpassableColor
			}
			x, y, s := r.cellRect(c)
			vector.DrawFilledRect(r.mapImage, x+1, y+1, s-2, s-2, fill, false)
		}
	}
	for c, clr := range map[grid.Cell]color.RGBA{r.geo.Entry: r.colors.EntryColor, r.geo.Exit: r.colors.ExitColor} {
		x, y, s := r.cellRect(c)
		vector.StrokeRect(r.mapImage, x+2, y+2, s-4, s-4, r.colors.StrokeWidth, clr, true)
	}
	r.drawPath(r.mapImage, g.Grid.Path(), r.colors.PathColor)
	r.dirty = false
}

// drawPath рисует кратчайший путь от входа по полю потока
func (r *GridRenderer) drawPath(dst *ebiten.Image, field *grid.FlowField, clr color.Color) {
	path := field.GetShortest(r.geo.Entry)
	for i := 1; i < len(path); i++ {
		x0, y0 := r.toScreen(r.centre(path[i-1]))
		x1, y1 := r.toScreen(r.centre(path[i]))
		vector.StrokeLine(dst, x0, y0, x1, y1, r.colors.StrokeWidth*2, clr, true)
	}
}

func (r *GridRenderer) centre(c grid.Cell) geom.Point {
	s := r.geo.CellSize
	return geom.Pt((float64(c.Col)+0.5)*s, (float64(c.Row)+0.5)*s)
}

// Draw рисует кадр. hover — пиксель под курсором, если он над сеткой.
func (r *GridRenderer) Draw(screen *ebiten.Image, g *app.Game, hover *geom.Point) {
	if r.dirty {
		r.RenderMapImage(g)
	}
	screen.DrawImage(r.mapImage, nil)

	if hover != nil {
		r.drawPreview(screen, g, *hover)
	}
	for _, t := range g.ECS.EachTower() {
		r.drawTower(screen, t)
	}
	for _, e := range g.Enemies() {
		r.drawEnemy(screen, e)
	}
	for _, o := range g.Obstacles() {
		x, y := r.toScreen(o.Position)
		vector.DrawFilledCircle(screen, x, y, float32(o.GridSize.W*o.CellSize/2)+1, o.Definition().Color, true)
	}
}

// drawPreview показывает, каким станет путь после постройки, или отказ
func (r *GridRenderer) drawPreview(screen *ebiten.Image, g *app.Game, pixel geom.Point) {
	cell := g.Grid.PixelToCell(pixel)
	if !g.Grid.InBounds(cell) || g.Grid.IsBlocked(cell) {
		return
	}
	legal, field := g.AttemptPlacement(pixel)
	if !legal {
		x, y, s := r.cellRect(cell)
		vector.DrawFilledRect(screen, x, y, s, s, r.colors.PreviewBadColor, false)
		return
	}
	r.drawPath(screen, field, WithAlpha(r.colors.PathColor, 60))
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	def := t.Definition()
	size := float32(t.GridSize.W * t.CellSize)
	cx, cy := r.toScreen(t.Position)
	vector.DrawFilledRect(screen, cx-size/2, cy-size/2, size, size, def.Color, false)
	vector.StrokeRect(screen, cx-size/2, cy-size/2, size, size, r.colors.StrokeWidth, DarkenColor(def.Color), false)
	if def.Rotates() {
		tip := utils.PolarToRect(float64(size)/2, t.Rotation)
		vector.StrokeLine(screen, cx, cy, cx+float32(tip.X), cy+float32(tip.Y), r.colors.StrokeWidth*2, r.colors.TextLightColor, true)
	}
	if t.Level > 1 {
		r.drawLabel(screen, string(rune('0'+t.Level)), cx, cy, r.colors.TextLightColor)
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	def := e.Definition()
	radius := float32(e.GridSize.W * e.CellSize / 2)
	x, y := r.toScreen(e.Position)
	vector.DrawFilledCircle(screen, x, y, radius, def.Color, true)

	const barH = 3
	w := max(radius*2, 10)
	vector.DrawFilledRect(screen, x-w/2, y-radius-barH-2, w, barH, r.colors.HealthBackColor, false)
	vector.DrawFilledRect(screen, x-w/2, y-radius-barH-2, w*float32(e.PercentageHealth()), barH, r.colors.HealthBarColor, false)
}

// drawLabel рисует текст по центру точки
func (r *GridRenderer) drawLabel(target *ebiten.Image, label string, x, y float32, textColor color.Color) {
	b := text.BoundString(r.fontFace, label)
	text.Draw(target, label, r.fontFace, int(x)-b.Dx()/2, int(y)+b.Dy()/2, textColor)
}

// DrawText рисует строку HUD с левым верхним углом в (x, y)
func (r *GridRenderer) DrawText(target *ebiten.Image, s string, x, y int) {
	text.Draw(target, s, r.fontFace, x, y+r.fontFace.Metrics().Ascent.Ceil(), r.colors.TextLightColor)
}
