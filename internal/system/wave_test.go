package system

import (
	"testing"

	"go-tower-sim/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIntervals(t *testing.T) {
	assert.Equal(t, []int{0, 10, 20, 30}, GenerateIntervals(40, 4))

	for _, tc := range []struct{ total, count int }{{40, 4}, {7, 3}, {113, 18}, {5, 5}, {3, 8}} {
		got := GenerateIntervals(tc.total, tc.count)
		require.Len(t, got, tc.count)
		limit := max(tc.total, tc.count)
		for i, v := range got {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, limit)
			if i > 0 {
				assert.Greater(t, v, got[i-1], "смещения строго возрастают: %v", got)
			}
		}
	}

	assert.Nil(t, GenerateIntervals(10, 0))
}

func TestWaveScheduler_Step(t *testing.T) {
	s := NewWaveScheduler()
	s.Queue([]Spawn{
		{Offset: 2, Enemy: defs.EnemySimple},
		{Offset: 0, Enemy: defs.EnemySwarm},
		{Offset: 1, Enemy: defs.EnemyHardened},
		{Offset: 2, Enemy: defs.EnemyBoss},
	}, false)
	assert.Equal(t, 4, s.Pending())

	first := s.Step()
	require.Len(t, first, 2)
	assert.Equal(t, defs.EnemySwarm, first[0].Enemy)
	assert.Equal(t, defs.EnemyHardened, first[1].Enemy)

	second := s.Step()
	require.Len(t, second, 2)
	assert.Equal(t, defs.EnemySimple, second[0].Enemy, "порядок постановки сохраняется")
	assert.Equal(t, defs.EnemyBoss, second[1].Enemy)

	assert.Empty(t, s.Step())
	assert.Zero(t, s.Pending())
}

func TestWaveScheduler_QueueClear(t *testing.T) {
	s := NewWaveScheduler()
	s.Queue([]Spawn{{Offset: 5, Enemy: defs.EnemySimple}, {Offset: 6, Enemy: defs.EnemySimple}}, false)
	s.Step()

	s.Queue([]Spawn{{Offset: 1, Enemy: defs.EnemyBoss}}, true)
	assert.Equal(t, 1, s.Pending())
	released := s.Step()
	require.Len(t, released, 1)
	assert.Equal(t, defs.EnemyBoss, released[0].Enemy)
	for i := 0; i < 10; i++ {
		assert.Empty(t, s.Step(), "выброшенные записи не выходят")
	}

	s.Queue([]Spawn{{Offset: 3}}, false)
	s.Clear()
	assert.Zero(t, s.Pending())
}

func TestWaveScheduler_Offsets(t *testing.T) {
	s := NewWaveScheduler()
	s.Queue([]Spawn{{Offset: 3, Enemy: defs.EnemySimple}}, false)
	s.Step()
	// Новые записи отсчитываются от момента постановки
	s.Queue([]Spawn{{Offset: 1, Enemy: defs.EnemySwarm}}, false)

	released := s.Step()
	require.Len(t, released, 1)
	assert.Equal(t, defs.EnemySwarm, released[0].Enemy)
	released = s.Step()
	require.Len(t, released, 1)
	assert.Equal(t, defs.EnemySimple, released[0].Enemy)
}

func TestGenerateSubWaves(t *testing.T) {
	spawns := GenerateSubWaves([]Phase{
		{Steps: 50, Count: 10, Enemy: defs.EnemySimple},
		{Steps: 100},
		{Steps: 50, Count: 10, Enemy: defs.EnemyHardened},
	})
	require.Len(t, spawns, 20)
	for i, sp := range spawns[:10] {
		assert.Equal(t, i*5, sp.Offset)
		assert.Equal(t, defs.EnemySimple, sp.Enemy)
	}
	for i, sp := range spawns[10:] {
		assert.Equal(t, 150+i*5, sp.Offset, "пауза сдвигает третью фазу")
		assert.Equal(t, defs.EnemyHardened, sp.Enemy)
	}
}
