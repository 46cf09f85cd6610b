// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/level"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
	"go-tower-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Hooks — внешние наблюдатели за игрой (метрики и т.п.)
type Hooks struct {
	OnNewGame func(g *app.Game)
	AfterTick func(g *app.Game)
}

var towerKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	cfg           *config.Config
	level         level.Level
	hooks         Hooks
	game          *app.Game
	renderer      *render.GridRenderer
	selected      defs.TowerKind
	accumulator   float64
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, cfg *config.Config, lvl level.Level, hooks Hooks) *GameState {
	gameLogic := app.NewGame(cfg, lvl)

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PassableColor:   config.PassableColor,
		ImpassableColor: config.ImpassableColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		PathColor:       config.PathColor,
		PreviewBadColor: config.PreviewBadColor,
		TextLightColor:  config.TextLightColor,
		HealthBarColor:  config.HealthBarColor,
		HealthBackColor: config.HealthBackColor,
		StrokeWidth:     config.StrokeWidth,
	}
	renderer := render.NewGridRenderer(gameLogic.Geometry(), mapColors, config.ScreenWidth, config.ScreenHeight)
	gameLogic.EventDispatcher.SubscribeAll(event.ListenerFunc(func(event.Event) { renderer.Invalidate() }),
		event.TowerPlaced, event.TowerRemoved)

	if hooks.OnNewGame != nil {
		hooks.OnNewGame(gameLogic)
	}
	return &GameState{
		sm:            sm,
		cfg:           cfg,
		level:         lvl,
		hooks:         hooks,
		game:          gameLogic,
		renderer:      renderer,
		selected:      defs.TowerKinds[0],
		lastClickTime: time.Now(),
	}
}

// Game — логика игры этого состояния
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if g.game.IsOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.sm.SetState(NewMenuState(g.sm, g.cfg, g.level, g.hooks))
		}
		return
	}

	for i, key := range towerKeys {
		if i < len(defs.TowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.selected = defs.TowerKinds[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.NextWave()
	}

	x, y := ebiten.CursorPosition()
	cell := g.game.Grid.PixelToCell(g.renderer.ScreenToPixel(x, y))
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if t, ok := g.game.ECS.TowerAt(cell); ok {
			g.game.UpgradeTower(cell, t.Level+1)
		}
	}
	if time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
		g.handleClick(cell)
	}

	g.advance(deltaTime)
}

func (g *GameState) handleClick(cell grid.Cell) {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.game.PlaceTower(cell, g.selected)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.game.RemoveTower(cell)
	default:
		return
	}
	g.lastClickTime = time.Now()
}

// advance делает столько тиков, сколько набежало за кадр
func (g *GameState) advance(deltaTime float64) {
	tps := g.cfg.Runner.TPS
	if tps <= 0 {
		tps = config.TPS
	}
	step := 1 / float64(tps)
	g.accumulator += min(deltaTime, config.MaxDeltaTime)
	for g.accumulator >= step && !g.game.IsOver() {
		g.game.Advance()
		if g.hooks.AfterTick != nil {
			g.hooks.AfterTick(g.game)
		}
		g.accumulator -= step
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	var hover *geom.Point
	x, y := ebiten.CursorPosition()
	if p := g.renderer.ScreenToPixel(x, y); g.game.Grid.InBounds(g.game.Grid.PixelToCell(p)) {
		hover = &p
	}
	g.renderer.Draw(screen, g.game, hover)

	maxWave := 0
	if g.level != nil {
		maxWave = g.level.MaxWave()
	}
	def := defs.TowerLibrary[g.selected]
	hud := fmt.Sprintf("Wave %d/%d  Coins %d  Lives %d  Score %d\nTower: %s (%d)",
		g.game.Wave(), maxWave, g.game.Coins(), g.game.Lives(), g.game.Score(), def.Name, def.BaseCost)
	g.renderer.DrawText(screen, hud, 8, config.ScreenHeight-40)

	if g.game.IsOver() {
		msg := "GAME OVER"
		if g.game.Won() {
			msg = "YOU WIN"
		}
		ebitenutil.DebugPrintAt(screen, msg+"  (R - menu)", config.ScreenWidth/2-60, config.ScreenHeight/2)
	}
}

func (g *GameState) Exit() {}
