package sound

import (
	"io"
	"math/rand"
	"os"

	"pageturn/internal/domain"
	"pageturn/internal/eventbus"
)

// CuePlayer plays short sound effects. Playback is fire-and-forget and
// never blocks a flip; failures are swallowed.
type CuePlayer interface {
	Play(cue domain.SoundCue, rate float64)
}

// VariedRate returns a playback rate with a small random variation so
// repeated page turns do not sound identical
func VariedRate() float64 {
	return 0.9 + rand.Float64()*0.2
}

// EventPlayer publishes cues on the event bus; the TUI turns them into
// a terminal bell when sound is enabled
type EventPlayer struct {
	bus eventbus.EventBus
}

// NewEventPlayer creates a cue player backed by the event bus
func NewEventPlayer(bus eventbus.EventBus) *EventPlayer {
	return &EventPlayer{bus: bus}
}

// Play publishes the cue
func (p *EventPlayer) Play(cue domain.SoundCue, rate float64) {
	p.bus.Publish(eventbus.SoundCueEvent{Cue: cue, Rate: rate})
}

// NopPlayer discards all cues
type NopPlayer struct{}

func (NopPlayer) Play(domain.SoundCue, float64) {}

// BellPlayer rings the terminal bell. The BEL byte goes to stderr so it
// does not disturb the alternate-screen render.
type BellPlayer struct {
	Out io.Writer
}

// NewBellPlayer creates a bell player writing to stderr
func NewBellPlayer() *BellPlayer {
	return &BellPlayer{Out: os.Stderr}
}

// Play rings the bell; the cue and rate are ignored, the terminal has
// only one sound
func (p *BellPlayer) Play(domain.SoundCue, float64) {
	if p.Out == nil {
		return
	}
	_, _ = p.Out.Write([]byte{'\a'})
}
