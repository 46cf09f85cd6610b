// Package metrics выставляет ход игры в Prometheus.
package metrics

import (
	"errors"
	"net/http"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "towersim"

// Snapshot — то, что коллектор снимает с игры после тика
type Snapshot interface {
	Coins() int
	Lives() int
	Score() int
	Wave() int
	Tick() int
}

// Collector подписывается на события игры и считает их в счётчиках.
type Collector struct {
	died     *prometheus.CounterVec
	escaped  *prometheus.CounterVec
	towers   *prometheus.CounterVec
	waves    prometheus.Counter
	gameOver *prometheus.CounterVec

	coins prometheus.Gauge
	lives prometheus.Gauge
	score prometheus.Gauge
	wave  prometheus.Gauge
	ticks prometheus.Gauge
}

// NewCollector создаёт метрики и регистрирует их в reg (nil — глобальный регистр).
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		died: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_died_total",
			Help:      "Убитые враги по видам.",
		}, []string{"kind"}),
		escaped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_escaped_total",
			Help:      "Прорвавшиеся враги по видам.",
		}, []string{"kind"}),
		towers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tower_actions_total",
			Help:      "Постройка, снос и улучшение башен.",
		}, []string{"action", "kind"}),
		waves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waves_cleared_total",
			Help:      "Очищенные волны.",
		}),
		gameOver: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Законченные игры по исходу.",
		}, []string{"result"}),
		coins: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "coins", Help: "Монеты игрока."}),
		lives: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "lives", Help: "Оставшиеся жизни."}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "score", Help: "Счёт."}),
		wave:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "wave", Help: "Номер текущей волны."}),
		ticks: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "ticks", Help: "Сделано тиков."}),
	}
	reg.MustRegister(c.died, c.escaped, c.towers, c.waves, c.gameOver,
		c.coins, c.lives, c.score, c.wave, c.ticks)
	return c
}

// Subscribe подписывает коллектор на все события, которые он считает
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.EnemiesDied, event.EnemiesEscaped, event.WaveCleared, event.GameOver,
		event.TowerPlaced, event.TowerRemoved, event.TowerUpgraded)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemiesDied:
		if enemies, ok := e.Data.([]*component.Enemy); ok {
			for _, en := range enemies {
				c.died.WithLabelValues(string(en.Kind)).Inc()
			}
		}
	case event.EnemiesEscaped:
		if enemies, ok := e.Data.([]*component.Enemy); ok {
			for _, en := range enemies {
				c.escaped.WithLabelValues(string(en.Kind)).Inc()
			}
		}
	case event.WaveCleared:
		c.waves.Inc()
	case event.GameOver:
		result := "lost"
		if won, _ := e.Data.(bool); won {
			result = "won"
		}
		c.gameOver.WithLabelValues(result).Inc()
	case event.TowerPlaced, event.TowerRemoved, event.TowerUpgraded:
		if t, ok := e.Data.(*component.Tower); ok {
			c.towers.WithLabelValues(towerAction(e.Type), string(t.Kind)).Inc()
		}
	}
}

func towerAction(t event.EventType) string {
	switch t {
	case event.TowerPlaced:
		return "placed"
	case event.TowerRemoved:
		return "removed"
	}
	return "upgraded"
}

// Observe обновляет датчики по состоянию игры
func (c *Collector) Observe(s Snapshot) {
	c.coins.Set(float64(s.Coins()))
	c.lives.Set(float64(s.Lives()))
	c.score.Set(float64(s.Score()))
	c.wave.Set(float64(s.Wave()))
	c.ticks.Set(float64(s.Tick()))
}

// Serve запускает HTTP-эндпоинт /metrics на addr. Неблокирующий.
func Serve(addr string, gatherer prometheus.Gatherer) *http.Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logging.LogInfo("Prometheus /metrics available at %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.LogError("Prometheus HTTP server error: %v", err)
		}
	}()
	return srv
}
