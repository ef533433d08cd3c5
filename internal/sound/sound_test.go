package sound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"pageturn/internal/domain"
	"pageturn/internal/eventbus"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func TestEventPlayerPublishesCue(t *testing.T) {
	bus := &recordingBus{}
	p := NewEventPlayer(bus)

	p.Play(domain.CuePageTurn, 1.0)

	assert.Len(t, bus.events, 1)
	e, ok := bus.events[0].(eventbus.SoundCueEvent)
	assert.True(t, ok)
	assert.Equal(t, domain.CuePageTurn, e.Cue)
	assert.Equal(t, 1.0, e.Rate)
}

func TestVariedRateStaysNearUnity(t *testing.T) {
	for i := 0; i < 100; i++ {
		rate := VariedRate()
		assert.GreaterOrEqual(t, rate, 0.9)
		assert.LessOrEqual(t, rate, 1.1)
	}
}

func TestBellPlayerRingsBell(t *testing.T) {
	var buf bytes.Buffer
	p := &BellPlayer{Out: &buf}

	p.Play(domain.CuePageTurn, 1.0)

	assert.Equal(t, "\a", buf.String())
}
