// internal/app/game.go
package app

import (
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/level"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/spatial"
	"go-tower-sim/internal/system"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

// Outcome — что произошло за один тик
type Outcome struct {
	Tick        int
	Spawned     []*component.Enemy
	Died        []*component.Enemy
	Escaped     []*component.Enemy
	WaveCleared bool
	Wave        int  // Номер очищенной волны, если WaveCleared
	GameOver    bool // Игра закончилась именно на этом тике
	Won         bool
}

// Geometry — неизменная геометрия поля для отрисовки
type Geometry struct {
	Cols, Rows int
	CellSize   float64
	Entry      grid.Cell
	Exit       grid.Cell
	Pixels     geom.Rect
}

// Game holds the simulation state and runs the tick pipeline.
type Game struct {
	Grid               *grid.Grid
	ECS                *entity.ECS
	Units              *spatial.UnitManager
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	WaveScheduler      *system.WaveScheduler
	EventDispatcher    *event.Dispatcher
	Level              level.Level

	tick       int
	coins      int
	lives      int
	score      int
	refundRate float64
	wave       int // Номер последней запущенной волны
	waveActive bool
	over       bool
	won        bool
}

// NewGame собирает игру по конфигурации. lvl может быть nil: тогда волны
// ставятся только через QueueWave.
func NewGame(cfg *config.Config, lvl level.Level) *Game {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	gc := cfg.Grid
	g := grid.New(gc.Cols, gc.Rows, gc.CellSize, gc.Entry.Cell(), gc.Exit.Cell())
	ecs := entity.NewECS()
	units := spatial.NewUnitManager(g.Pixels(), float64(max(gc.BucketCells, 1))*gc.CellSize)
	status := system.NewStatusEffectSystem(ecs)

	game := &Game{
		Grid:               g,
		ECS:                ecs,
		Units:              units,
		MovementSystem:     system.NewMovementSystem(ecs, g, units),
		CombatSystem:       system.NewCombatSystem(ecs, units, status),
		ProjectileSystem:   system.NewProjectileSystem(ecs, units, g.Pixels(), gc.CellSize),
		StatusEffectSystem: status,
		WaveScheduler:      system.NewWaveScheduler(),
		EventDispatcher:    event.NewDispatcher(),
		Level:              lvl,
		coins:              cfg.Game.Coins,
		lives:              cfg.Game.Lives,
		refundRate:         cfg.Game.RefundRate,
	}
	logging.LogInfo("New game: %dx%d grid, entry %v, exit %v, %d coins, %d lives",
		gc.Cols, gc.Rows, g.Entry(), g.Goal(), game.coins, game.lives)
	return game
}

// Advance делает тик и рассылает его события подписчикам
func (g *Game) Advance() Outcome {
	out := g.Step()
	if len(out.Died) > 0 {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemiesDied, Data: out.Died})
	}
	if len(out.Escaped) > 0 {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemiesEscaped, Data: out.Escaped})
	}
	if out.WaveCleared {
		g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: out.Wave})
	}
	if out.GameOver {
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: out.Won})
	}
	return out
}

// Step продвигает симуляцию ровно на один тик. После конца игры ничего не делает.
func (g *Game) Step() Outcome {
	if g.over {
		return Outcome{Tick: g.tick}
	}
	g.tick++
	out := Outcome{Tick: g.tick}

	// 1. Появление
	for _, sp := range g.WaveScheduler.Step() {
		if e := g.spawn(sp); e != nil {
			out.Spawned = append(out.Spawned, e)
		}
	}

	// 2. Движение и эффекты
	report := g.MovementSystem.Update()
	g.StatusEffectSystem.Update()
	if report.Summons > 0 {
		swarm := make([]system.Spawn, report.Summons)
		for i := range swarm {
			swarm[i] = system.Spawn{Offset: config.BossSwarmDelaySteps, Enemy: defs.EnemySwarm}
		}
		g.WaveScheduler.Queue(swarm, false)
	}

	// 3. Башни
	for _, o := range g.CombatSystem.Update() {
		g.ECS.AddObstacle(o)
	}

	// 4. Снаряды
	g.ProjectileSystem.Update()

	// 5. Убитые и прорвавшиеся
	out.Died, out.Escaped = g.reap()
	g.settle(out.Died, out.Escaped)

	// 6. Конец волны
	if g.waveActive && g.WaveScheduler.Pending() == 0 && len(g.ECS.Enemies) == 0 {
		g.waveActive = false
		out.WaveCleared = true
		out.Wave = g.wave
		logging.LogInfo("Wave %d cleared at tick %d", g.wave, g.tick)
		if g.Level != nil && g.wave >= g.Level.MaxWave() {
			g.over, g.won = true, true
		}
	}

	// 7. Конец игры
	if g.lives <= 0 {
		g.over, g.won = true, false
	}
	if g.over {
		out.GameOver = true
		out.Won = g.won
		logging.LogInfo("Game over at tick %d: won=%t score=%d", g.tick, g.won, g.score)
	}
	return out
}

// spawn выпускает врага в центре входной клетки
func (g *Game) spawn(sp system.Spawn) *component.Enemy {
	def, ok := defs.EnemyLibrary[sp.Enemy]
	if !ok {
		logging.LogError("Unknown enemy kind %q in wave queue", sp.Enemy)
		return nil
	}
	entry := g.Grid.Entry()
	e := component.NewEnemy(g.ECS.NewEntity(), def, g.Grid.CellToPixelCentre(entry), g.Grid.CellSize)
	if sp.Health > 0 {
		e.Health = sp.Health
		e.MaxHealth = max(e.MaxHealth, sp.Health)
	}
	e.Path.LastCell = entry
	g.ECS.AddEnemy(e)
	g.Units.Insert(e)
	logging.LogTrace("Spawned %s enemy %d", e.Kind, e.ID)
	return e
}

// reap убирает из мира убитых и прорвавшихся в порядке появления
func (g *Game) reap() (died, escaped []*component.Enemy) {
	for _, e := range g.ECS.EachEnemy() {
		switch {
		case e.IsDead():
			died = append(died, e)
		case e.Escaped:
			escaped = append(escaped, e)
		default:
			continue
		}
		g.Units.Remove(e.ID)
		g.ECS.RemoveEnemy(e.ID)
	}
	return died, escaped
}

// settle начисляет монеты и очки за убитых и снимает жизни за прорвавшихся.
// Очки за тик умножаются на корень из числа убитых.
func (g *Game) settle(died, escaped []*component.Enemy) {
	if len(died) > 0 {
		bonus := math.Sqrt(float64(len(died)))
		for _, e := range died {
			g.coins += e.Points
			g.score += int(float64(e.Points) * bonus)
		}
	}
	for _, e := range escaped {
		g.lives -= e.LiveDamage
		logging.LogDebug("Enemy %d (%s) escaped, lives left %d", e.ID, e.Kind, max(g.lives, 0))
	}
	g.lives = max(g.lives, 0)
}

// QueueWave ставит записи в очередь появления; clear выбрасывает ещё не вышедших
func (g *Game) QueueWave(entries []system.Spawn, clear bool) {
	g.WaveScheduler.Queue(entries, clear)
	g.waveActive = g.waveActive || len(entries) > 0
}

// NextWave запускает следующую волну уровня. false — уровня нет,
// волны кончились или игра окончена.
func (g *Game) NextWave() bool {
	if g.over || g.Level == nil || g.wave >= g.Level.MaxWave() {
		return false
	}
	g.wave++
	spawns := g.Level.Wave(g.wave)
	g.QueueWave(spawns, false)
	logging.LogInfo("Wave %d started: %d enemies", g.wave, len(spawns))
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.wave})
	return true
}

// Снимки состояния для отрисовки и тестов

func (g *Game) Enemies() []*component.Enemy      { return g.ECS.EachEnemy() }
func (g *Game) Obstacles() []*component.Obstacle { return g.ECS.EachObstacle() }

// Towers — башни по клеткам
func (g *Game) Towers() map[grid.Cell]*component.Tower {
	out := make(map[grid.Cell]*component.Tower, len(g.ECS.Towers))
	for _, t := range g.ECS.EachTower() {
		out[t.Cell] = t
	}
	return out
}

func (g *Game) Geometry() Geometry {
	return Geometry{
		Cols:     g.Grid.Cols,
		Rows:     g.Grid.Rows,
		CellSize: g.Grid.CellSize,
		Entry:    g.Grid.Entry(),
		Exit:     g.Grid.Goal(),
		Pixels:   g.Grid.Pixels(),
	}
}

func (g *Game) Tick() int           { return g.tick }
func (g *Game) Coins() int          { return g.coins }
func (g *Game) Lives() int          { return g.lives }
func (g *Game) Score() int          { return g.score }
func (g *Game) Wave() int           { return g.wave }
func (g *Game) WaveActive() bool    { return g.waveActive }
func (g *Game) IsOver() bool        { return g.over }
func (g *Game) Won() bool           { return g.won }
func (g *Game) RefundRate() float64 { return g.refundRate }
