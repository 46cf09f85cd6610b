package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	var calls int
	fn := ListenerFunc(func(Event) { calls++ })

	d.Subscribe(WaveCleared, rec)
	d.SubscribeAll(fn, WaveCleared, GameOver)

	d.Dispatch(Event{Type: WaveCleared, Data: 3})
	d.Dispatch(Event{Type: GameOver, Data: true})
	d.Dispatch(Event{Type: TowerPlaced})

	assert.Len(t, rec.got, 1)
	assert.Equal(t, 3, rec.got[0].Data)
	assert.Equal(t, 2, calls)

	d.Unsubscribe(WaveCleared, fn)
	d.Unsubscribe(WaveCleared, rec)
	d.Dispatch(Event{Type: WaveCleared})
	assert.Len(t, rec.got, 1, "отписанный не получает событий")
	assert.Equal(t, 2, calls)
}
