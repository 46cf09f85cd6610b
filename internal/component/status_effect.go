// internal/component/status_effect.go
package component

// SlowEffect indicates that an enemy is slowed.
type SlowEffect struct {
	Remaining int     // Сколько тиков осталось
	Factor    float64 // Множитель скорости (например, 0.5)
}
