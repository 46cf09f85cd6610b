// internal/config/file.go
package config

import (
	"fmt"
	"os"

	"go-tower-sim/pkg/grid"

	"gopkg.in/yaml.v3"
)

// Config — настройки, которые можно переопределить YAML-файлом.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Game   GameConfig   `yaml:"game"`
	Runner RunnerConfig `yaml:"runner"`
}

// CellConfig — клетка в YAML ({col, row})
type CellConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

func (c CellConfig) Cell() grid.Cell { return grid.Cell{Col: c.Col, Row: c.Row} }

type GridConfig struct {
	Cols        int        `yaml:"cols"`
	Rows        int        `yaml:"rows"`
	CellSize    float64    `yaml:"cell_size"`
	Entry       CellConfig `yaml:"entry"`
	Exit        CellConfig `yaml:"exit"`
	BucketCells int        `yaml:"bucket_cells"`
}

type GameConfig struct {
	Coins      int     `yaml:"coins"`
	Lives      int     `yaml:"lives"`
	RefundRate float64 `yaml:"refund_rate"`
}

type RunnerConfig struct {
	TPS         int    `yaml:"tps"`
	MaxTicks    int    `yaml:"max_ticks"`
	Seed        int64  `yaml:"seed"`
	LevelFile   string `yaml:"level_file"`
	DefsFile    string `yaml:"defs_file"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default возвращает конфигурацию по умолчанию: вход слева, выход справа
// посередине сетки.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Cols:        GridCols,
			Rows:        GridRows,
			CellSize:    CellSize,
			Entry:       CellConfig{Col: -1, Row: GridRows / 2},
			Exit:        CellConfig{Col: GridCols, Row: GridRows / 2},
			BucketCells: BucketCells,
		},
		Game: GameConfig{
			Coins:      StartingCoins,
			Lives:      StartingLives,
			RefundRate: RefundRate,
		},
		Runner: RunnerConfig{
			TPS:      0,
			MaxTicks: 100000,
			Seed:     1,
		},
	}
}

// Load читает YAML-файл поверх значений по умолчанию.
// Если path == "", берёт путь из ENV GAME_CONFIG; если и он пуст — возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет, что из конфигурации можно построить игру
func (c *Config) Validate() error {
	switch {
	case c.Grid.Cols <= 0 || c.Grid.Rows <= 0:
		return fmt.Errorf("config: grid must have positive size, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("config: cell_size must be positive, got %v", c.Grid.CellSize)
	case c.Grid.BucketCells <= 0:
		return fmt.Errorf("config: bucket_cells must be positive, got %d", c.Grid.BucketCells)
	case c.Grid.Entry == c.Grid.Exit:
		return fmt.Errorf("config: entry and exit must differ")
	case c.Game.RefundRate < 0 || c.Game.RefundRate > 1:
		return fmt.Errorf("config: refund_rate must be within [0,1], got %v", c.Game.RefundRate)
	case c.Runner.TPS < 0:
		return fmt.Errorf("config: tps must not be negative")
	}
	g := grid.New(c.Grid.Cols, c.Grid.Rows, c.Grid.CellSize, c.Grid.Entry.Cell(), c.Grid.Exit.Cell())
	if err := g.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
