// Package bot — простой автоигрок для безголового прогона.
package bot

import (
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/grid"
)

// Bot запускает волны и строит башни вдоль текущего кратчайшего пути.
// Вид следующей башни выбирается по таблице постройки волны.
type Bot struct {
	game    *app.Game
	rng     *utils.PRNGService
	pending defs.TowerKind // Вид, на который копим
}

func New(game *app.Game, seed int64) *Bot {
	return &Bot{game: game, rng: utils.NewPRNGService(seed)}
}

// Act делает ход между тиками
func (b *Bot) Act() {
	g := b.game
	if g.IsOver() {
		return
	}
	if !g.WaveActive() {
		g.NextWave()
	}

	if b.pending == "" {
		b.pending = b.rng.ChooseWeighted(defs.BuildTableFor(max(g.Wave(), 1)).Entries)
	}
	def, ok := defs.TowerLibrary[b.pending]
	if !ok || def.BaseCost > g.Coins() {
		return
	}
	for _, c := range b.Candidates() {
		if g.PlaceTower(c, b.pending) {
			logging.LogDebug("Bot placed %s at %v", b.pending, c)
			b.pending = ""
			return
		}
	}
	// Ставить некуда: вкладываемся в улучшения
	b.upgrade()
}

// Candidates — свободные клетки рядом с кратчайшим путём, в порядке от входа
func (b *Bot) Candidates() []grid.Cell {
	gr := b.game.Grid
	path := gr.Path().GetShortest(gr.Entry())
	onPath := make(map[grid.Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	var out []grid.Cell
	seen := map[grid.Cell]struct{}{}
	for _, c := range path {
		for _, n := range c.Neighbors() {
			if _, ok := onPath[n]; ok {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			if gr.CanPlace(n) && !gr.IsBlocked(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// upgrade поднимает самую дешёвую в улучшении башню, если хватает монет
func (b *Bot) upgrade() {
	var best grid.Cell
	bestCost := -1
	for _, t := range b.game.ECS.EachTower() {
		if t.Level >= config.MaxTowerLevel {
			continue
		}
		if cost := t.UpgradeCost(t.Level + 1); bestCost < 0 || cost < bestCost {
			best, bestCost = t.Cell, cost
		}
	}
	if bestCost < 0 || bestCost > b.game.Coins() {
		return
	}
	t, _ := b.game.ECS.TowerAt(best)
	if b.game.UpgradeTower(best, t.Level+1) {
		logging.LogDebug("Bot upgraded tower at %v to level %d", best, t.Level)
	}
}
