package domain

// Direction is the direction of a page flip
type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrev
)

func (d Direction) String() string {
	if d == DirectionPrev {
		return "prev"
	}
	return "next"
}

// FlipPhase tags the current phase of a flip animation
type FlipPhase string

const (
	PhaseLift   FlipPhase = "lift"
	PhaseRotate FlipPhase = "rotate"
	PhaseDrop   FlipPhase = "drop"
	PhaseDrag   FlipPhase = "drag"
)

// SoundCue names a sound effect to play
type SoundCue string

const (
	CuePageTurn  SoundCue = "page-turn"
	CueBookOpen  SoundCue = "book-open"
	CueBookClose SoundCue = "book-close"
)
