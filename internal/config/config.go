// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720

	// Сетка по умолчанию
	CellSize    = 60.0
	GridCols    = 6
	GridRows    = 6
	BucketCells = 2 // Сторона корзины пространственного индекса в клетках

	TPS          = 30   // Тиков симуляции в секунду у вьюера
	MaxDeltaTime = 0.25 // Больше этого кадр не догоняет, сек

	StartingCoins = 50
	StartingLives = 20
	RefundRate    = 0.8 // Доля стоимости, возвращаемая при продаже башни
	MaxTowerLevel = 3

	TowerGridSize       = 0.9         // Башня занимает 0.9×0.9 клетки
	TowerInitialFacing  = math.Pi / 4 // Начальный угол поворота башни
	PulseSpawnOffset    = 0.4         // Смещение импульса от центра башни в клетках
	SlowDurationSteps   = 60          // Сколько тиков держится замедление
	SlowBaseFactor      = 0.5         // Множитель скорости на первом уровне
	SlowPerLevel        = 0.1         // Насколько каждый следующий уровень сильнее
	SlowMinFactor       = 0.2
	BossSwarmThreshold  = 0.5 // Доля здоровья, после которой босс зовёт подкрепление
	BossSwarmPerStep    = 5   // Сколько роя босс добавляет за тик
	BossSwarmLimit      = 10  // Сколько роя босс может вызвать за жизнь
	BossSwarmDelaySteps = 5   // Задержка появления роя в тиках

	ClickCooldown = 150 // мс
	TextCharWidth = 7
	TextOffsetY   = 4
)

// SlowFactor — множитель скорости врага под замедлением башни уровня level
func SlowFactor(level int) float64 {
	f := SlowBaseFactor - SlowPerLevel*float64(level-1)
	if f < SlowMinFactor {
		return SlowMinFactor
	}
	return f
}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PassableColor   = color.RGBA{70, 100, 120, 220}
	ImpassableColor = color.RGBA{150, 70, 70, 220}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PathColor       = color.RGBA{255, 255, 0, 128}
	PreviewBadColor = color.RGBA{255, 60, 60, 160}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	HealthBackColor = color.RGBA{90, 20, 20, 255}
	PausedColor     = color.RGBA{20, 30, 50, 140}
	StrokeWidth     = float32(2.0)
)
