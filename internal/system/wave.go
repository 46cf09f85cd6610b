// internal/system/wave.go
package system

import (
	"go-tower-sim/internal/defs"
)

// Spawn — запланированное появление врага через Offset тиков после постановки в очередь.
// Health > 0 переопределяет здоровье из определения.
type Spawn struct {
	Offset int
	Enemy  defs.EnemyKind
	Health int
}

// WaveScheduler — очередь появления врагов. Содержимое волн ему безразлично.
type WaveScheduler struct {
	pending []Spawn
}

func NewWaveScheduler() *WaveScheduler {
	return &WaveScheduler{}
}

// Queue добавляет записи; clear — сначала выбросить всё, что ещё не вышло
func (s *WaveScheduler) Queue(entries []Spawn, clear bool) {
	if clear {
		s.pending = s.pending[:0]
	}
	s.pending = append(s.pending, entries...)
}

// Clear выбрасывает все ожидающие записи
func (s *WaveScheduler) Clear() {
	s.pending = s.pending[:0]
}

// Step уменьшает все смещения на тик и выпускает записи, дошедшие до нуля,
// в порядке постановки.
func (s *WaveScheduler) Step() []Spawn {
	var released []Spawn
	kept := s.pending[:0]
	for _, sp := range s.pending {
		sp.Offset--
		if sp.Offset <= 0 {
			released = append(released, sp)
			continue
		}
		kept = append(kept, sp)
	}
	s.pending = kept
	return released
}

// Pending — сколько записей ещё ждёт
func (s *WaveScheduler) Pending() int {
	return len(s.pending)
}

// GenerateIntervals раскладывает count смещений равномерно по [0, total).
// Смещения строго возрастают; при count > total интервал растягивается до count.
func GenerateIntervals(total, count int) []int {
	if count <= 0 {
		return nil
	}
	if total < count {
		total = count
	}
	out := make([]int, count)
	for i := range out {
		out[i] = i * total / count
	}
	return out
}

// Phase — под-волна: Count врагов вида Enemy за Steps тиков. Count == 0 — пауза.
type Phase struct {
	Steps int
	Count int
	Enemy defs.EnemyKind
}

// GenerateSubWaves склеивает фазы подряд по общему счётчику тиков
func GenerateSubWaves(phases []Phase) []Spawn {
	var out []Spawn
	offset := 0
	for _, p := range phases {
		if p.Count > 0 {
			for _, step := range GenerateIntervals(p.Steps, p.Count) {
				out = append(out, Spawn{Offset: offset + step, Enemy: p.Enemy})
			}
		}
		offset += max(p.Steps, 0)
	}
	return out
}
