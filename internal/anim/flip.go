package anim

import (
	"time"

	"pageturn/internal/domain"
)

// FrameAnimator is the contract consumed by the discrete flip path. The
// implementation must invoke swap exactly once at the visual midpoint of
// the rotation and must eventually settle by invoking done, with a nil
// error on success or the failure cause otherwise.
type FrameAnimator interface {
	RunFlip(direction domain.Direction, swap func(), done func(error))
}

// Phase durations for a discrete page flip
const (
	liftDuration   = 80 * time.Millisecond
	rotateDuration = 260 * time.Millisecond
	dropDuration   = 80 * time.Millisecond
)

// FlipAnimator plays the lift/rotate/drop sequence of a discrete flip,
// driven by Step calls from the host frame loop. At most one flip runs
// at a time; the busy guard upstream ensures RunFlip is never invoked
// while a run is in flight.
type FlipAnimator struct {
	active    bool
	direction domain.Direction
	phase     domain.FlipPhase
	start     time.Time
	swapped   bool
	swap      func()
	done      func(error)
	angle     float64
}

// NewFlipAnimator creates an idle flip animator
func NewFlipAnimator() *FlipAnimator {
	return &FlipAnimator{}
}

// RunFlip starts a flip animation. Completion is signalled through done.
func (a *FlipAnimator) RunFlip(direction domain.Direction, swap func(), done func(error)) {
	a.active = true
	a.direction = direction
	a.phase = domain.PhaseLift
	a.start = time.Time{}
	a.swapped = false
	a.swap = swap
	a.done = done
	a.angle = 0
}

// Active reports whether a flip is in flight
func (a *FlipAnimator) Active() bool {
	return a.active
}

// Angle returns the current sheet rotation in degrees, negative when
// flipping toward the next page
func (a *FlipAnimator) Angle() float64 {
	return a.angle
}

// Phase returns the current animation phase
func (a *FlipAnimator) Phase() domain.FlipPhase {
	return a.phase
}

// Abort fails the in-flight flip, e.g. when the sheet surface was torn
// down under the animation. done receives the cause.
func (a *FlipAnimator) Abort(err error) {
	if !a.active {
		return
	}
	a.settle(err)
}

// Step advances the animation to the given time. It returns true while
// the flip is still running.
func (a *FlipAnimator) Step(now time.Time) bool {
	if !a.active {
		return false
	}
	if a.start.IsZero() {
		a.start = now
	}

	elapsed := now.Sub(a.start)
	switch {
	case elapsed < liftDuration:
		a.phase = domain.PhaseLift
		a.angle = 0

	case elapsed < liftDuration+rotateDuration:
		a.phase = domain.PhaseRotate
		t := EaseInOutCubic(float64(elapsed-liftDuration) / float64(rotateDuration))
		a.angle = signedAngle(180*t, a.direction)
		if t >= 0.5 && !a.swapped {
			a.swapped = true
			if a.swap != nil {
				a.swap()
			}
		}

	case elapsed < liftDuration+rotateDuration+dropDuration:
		a.phase = domain.PhaseDrop
		a.angle = signedAngle(180, a.direction)
		// The midpoint swap must have happened before the drop phase,
		// even if the rotate phase was skipped over by a coarse clock
		if !a.swapped {
			a.swapped = true
			if a.swap != nil {
				a.swap()
			}
		}

	default:
		if !a.swapped {
			a.swapped = true
			if a.swap != nil {
				a.swap()
			}
		}
		a.settle(nil)
		return false
	}

	return true
}

func (a *FlipAnimator) settle(err error) {
	a.active = false
	a.angle = 0
	done := a.done
	a.swap = nil
	a.done = nil
	if done != nil {
		done(err)
	}
}

func signedAngle(angle float64, direction domain.Direction) float64 {
	if direction == domain.DirectionNext {
		return -angle
	}
	return angle
}
