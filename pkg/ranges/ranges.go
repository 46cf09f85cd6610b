// Package ranges описывает неизменяемые формы радиуса действия башен.
// Координаты точки задаются в клетках относительно центра формы.
package ranges

import (
	"fmt"
	"math"
)

// Kind — вариант формы.
type Kind int

const (
	Circular Kind = iota // круг радиуса Outer
	Donut                // кольцо Inner..Outer
	Plus                 // крест: полосы длины Outer и полуширины Inner
)

func (k Kind) String() string {
	switch k {
	case Circular:
		return "circular"
	case Donut:
		return "donut"
	case Plus:
		return "plus"
	default:
		return "unknown"
	}
}

// Shape — радиус действия башни. Значение неизменяемое, его безопасно копировать.
type Shape struct {
	Kind  Kind
	Inner float64
	Outer float64
}

// NewCircular — круглый радиус.
func NewCircular(radius float64) Shape {
	return Shape{Kind: Circular, Outer: radius}
}

// NewDonut — кольцо; inner должен быть меньше outer.
func NewDonut(inner, outer float64) Shape {
	if inner >= outer {
		panic(fmt.Sprintf("ranges: donut inner %.2f must be less than outer %.2f", inner, outer))
	}
	return Shape{Kind: Donut, Inner: inner, Outer: outer}
}

// NewPlus — крест с полушириной inner и длиной луча outer.
func NewPlus(inner, outer float64) Shape {
	return Shape{Kind: Plus, Inner: inner, Outer: outer}
}

// Contains проверяет, лежит ли точка (dx, dy) внутри формы.
func (s Shape) Contains(dx, dy float64) bool {
	switch s.Kind {
	case Circular:
		return dx*dx+dy*dy <= s.Outer*s.Outer
	case Donut:
		d2 := dx*dx + dy*dy
		return d2 >= s.Inner*s.Inner && d2 <= s.Outer*s.Outer
	case Plus:
		ax, ay := math.Abs(dx), math.Abs(dy)
		horizontal := ax <= s.Outer && ay <= s.Inner
		vertical := ax <= s.Inner && ay <= s.Outer
		return horizontal || vertical
	}
	return false
}

// Extent — радиус описанной окружности, по нему размечается пространственный запрос.
func (s Shape) Extent() float64 {
	if s.Kind == Plus {
		return math.Hypot(s.Outer, s.Inner)
	}
	return s.Outer
}

func (s Shape) String() string {
	if s.Kind == Circular {
		return fmt.Sprintf("%s(%.2f)", s.Kind, s.Outer)
	}
	return fmt.Sprintf("%s(%.2f, %.2f)", s.Kind, s.Inner, s.Outer)
}
