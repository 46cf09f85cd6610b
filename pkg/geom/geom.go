// pkg/geom/geom.go
package geom

import "math"

// Point — точка или вектор в пикселях (или в клетках, если так сказано у вызывающего).
type Point struct {
	X, Y float64
}

// Pt — короткий конструктор точки.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len — длина вектора.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist — евклидово расстояние между точками.
func (p Point) Dist(o Point) float64 {
	return p.Sub(o).Len()
}

// Size — ширина и высота (в долях клетки для сущностей).
type Size struct {
	W, H float64
}

// Rect — прямоугольник, заданный левым верхним и правым нижним углами.
type Rect struct {
	Min, Max Point
}

// RectAround строит прямоугольник с центром c и половинами размеров half.
func RectAround(c Point, halfW, halfH float64) Rect {
	return Rect{
		Min: Point{X: c.X - halfW, Y: c.Y - halfH},
		Max: Point{X: c.X + halfW, Y: c.Y + halfH},
	}
}

// Normalized упорядочивает углы так, чтобы Min <= Max по обеим осям.
func (r Rect) Normalized() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Inflate расширяет прямоугольник на d по каждой стороне.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Intersects проверяет пересечение прямоугольников. Касание краёв считается
// пересечением: вырожденный (нулевой ширины) след импульса должен задевать цели.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains проверяет, лежит ли точка внутри прямоугольника (края включены).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
