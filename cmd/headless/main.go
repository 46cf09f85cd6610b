// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/bot"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/level"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/metrics"

	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "", "YAML config (default: $GAME_CONFIG)")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn, error")
	logDir := flag.String("log-dir", "", "also write all levels to a file in this directory")
	maxTicks := flag.Int("ticks", 0, "override runner.max_ticks")
	flag.Parse()

	lvl, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(lvl)

	session := uuid.New()
	logging.SetPrefix(session.String()[:8])
	if *logDir != "" {
		if err := logging.InitFileLogger(*logDir, "headless_"+session.String()); err != nil {
			log.Fatal(err)
		}
		defer logging.CloseLogger()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *maxTicks > 0 {
		cfg.Runner.MaxTicks = *maxTicks
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

	g := app.NewGame(cfg, gameLevel)
	var collector *metrics.Collector
	if cfg.Runner.MetricsAddr != "" {
		collector = metrics.NewCollector(nil)
		collector.Subscribe(g.EventDispatcher)
		srv := metrics.Serve(cfg.Runner.MetricsAddr, nil)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	autoplayer := bot.New(g, cfg.Runner.Seed)
	logging.LogInfo("Headless run %s: seed %d, max %d ticks, %d waves", session, cfg.Runner.Seed, cfg.Runner.MaxTicks, gameLevel.MaxWave())

	var pace *time.Ticker
	if cfg.Runner.TPS > 0 {
		pace = time.NewTicker(time.Second / time.Duration(cfg.Runner.TPS))
		defer pace.Stop()
	}
	for g.Tick() < cfg.Runner.MaxTicks && !g.IsOver() {
		autoplayer.Act()
		g.Advance()
		if collector != nil {
			collector.Observe(g)
		}
		if pace != nil {
			<-pace.C
		}
	}

	logging.LogInfo("Run finished after %d ticks: wave %d, score %d, coins %d, lives %d, towers %d, over=%t won=%t",
		g.Tick(), g.Wave(), g.Score(), g.Coins(), g.Lives(), len(g.Towers()), g.IsOver(), g.Won())
}
