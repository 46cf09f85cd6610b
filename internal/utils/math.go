// internal/utils/math.go
package utils

import (
	"math"

	"go-tower-sim/pkg/geom"
)

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleBetween возвращает направление (в радианах) от точки from к точке to
func AngleBetween(from, to geom.Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// RotateToward поворачивает current к target не больше чем на threshold.
// Если до цели не больше порога, возвращается ровно target, поэтому
// «навелись» проверяется простым сравнением результата с target.
func RotateToward(current, target, threshold float64) float64 {
	diff := NormalizeAngle(target - current)
	if math.Abs(diff) <= threshold {
		return target
	}
	if diff > 0 {
		return NormalizeAngle(current + threshold)
	}
	return NormalizeAngle(current - threshold)
}

// PolarToRect переводит полярные координаты в декартово смещение
func PolarToRect(radius, angle float64) geom.Point {
	return geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}
