// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/level"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/metrics"
	"go-tower-sim/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML config (default: $GAME_CONFIG)")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn, error")
	flag.Parse()

	lvl, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(lvl)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Runner.DefsFile != "" {
		if err := defs.LoadOverrides(cfg.Runner.DefsFile); err != nil {
			log.Fatal(err)
		}
	}
	gameLevel, err := level.Open(cfg.Runner.LevelFile)
	if err != nil {
		log.Fatal(err)
	}

	var hooks state.Hooks
	if cfg.Runner.MetricsAddr != "" {
		collector := metrics.NewCollector(nil)
		metrics.Serve(cfg.Runner.MetricsAddr, nil)
		hooks.OnNewGame = func(g *app.Game) { collector.Subscribe(g.EventDispatcher) }
		hooks.AfterTick = func(g *app.Game) { collector.Observe(g) }
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, cfg, gameLevel, hooks))
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, gameLevel, hooks))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Sim")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
