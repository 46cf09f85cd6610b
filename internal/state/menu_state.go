// internal/state/menu_state.go
package state

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const menuText = `TOWER SIM

SPACE  start
1-7    choose tower
LMB    build     RMB  sell
U      upgrade tower under cursor
N      next wave
P      pause`

// MenuState — стартовый экран с подсказкой по управлению
type MenuState struct {
	sm    *StateMachine
	cfg   *config.Config
	level level.Level
	hooks Hooks
}

func NewMenuState(sm *StateMachine, cfg *config.Config, lvl level.Level, hooks Hooks) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, level: lvl, hooks: hooks}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.cfg, m.level, m.hooks))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, menuText, config.ScreenWidth/2-120, config.ScreenHeight/2-60)
}

func (m *MenuState) Exit() {}
