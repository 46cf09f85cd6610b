package config

import (
	"os"
	"path/filepath"
	"testing"

	"go-tower-sim/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GAME_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, StartingCoins, cfg.Game.Coins)
	assert.Equal(t, -1, cfg.Grid.Entry.Col)
	assert.Equal(t, GridCols, cfg.Grid.Exit.Col)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
grid:
  cols: 10
  exit: {col: 10, row: 4}
game:
  lives: 3
runner:
  seed: 42
  level_file: waves.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Grid.Cols)
	assert.Equal(t, GridRows, cfg.Grid.Rows, "незаданное поле остаётся по умолчанию")
	assert.Equal(t, CellConfig{Col: 10, Row: 4}, cfg.Grid.Exit)
	assert.Equal(t, 3, cfg.Game.Lives)
	assert.Equal(t, StartingCoins, cfg.Game.Coins)
	assert.Equal(t, int64(42), cfg.Runner.Seed)
	assert.Equal(t, "waves.yaml", cfg.Runner.LevelFile)
}

func TestLoad_EnvFallback(t *testing.T) {
	path := writeConfig(t, "game:\n  coins: 999\n")
	t.Setenv("GAME_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 999, cfg.Game.Coins)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "отсутствующий файл")

	_, err = Load(writeConfig(t, "grid: [1, 2"))
	assert.Error(t, err, "битый YAML")

	_, err = Load(writeConfig(t, "grid:\n  cols: 0\n"))
	assert.Error(t, err, "нулевая ширина")

	_, err = Load(writeConfig(t, "game:\n  refund_rate: 1.5\n"))
	assert.Error(t, err, "возврат больше стоимости")
}

func TestLoad_GeometryErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "grid:\n  exit: {col: 2, row: 2}\n"))
	assert.ErrorIs(t, err, grid.ErrExitInside)

	_, err = Load(writeConfig(t, "grid:\n  entry: {col: -3, row: 2}\n"))
	assert.ErrorIs(t, err, grid.ErrEntryDetached)

	_, err = Load(writeConfig(t, "grid:\n  entry: {col: 0, row: 0}\n  exit: {col: 5, row: 5}\n"))
	assert.NoError(t, err, "вход и выход на краю сетки")
}

func TestSlowFactor(t *testing.T) {
	assert.InDelta(t, 0.5, SlowFactor(1), 1e-9)
	assert.InDelta(t, 0.3, SlowFactor(3), 1e-9)
	assert.Equal(t, SlowMinFactor, SlowFactor(50))
}
