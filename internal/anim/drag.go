package anim

import (
	"math"
	"time"
)

// Drag animation timing. The settle animation after a release runs for
// a duration proportional to the remaining angular distance, with a
// floor so very short settles still read as motion.
const (
	dragFullDuration = 300 * time.Millisecond // full 180 degree sweep
	dragMinDuration  = 80 * time.Millisecond
)

// DragAnimator interpolates a flip angle from its current value to a
// settle target after a drag release. It is driven by Step calls from
// the host frame loop; no goroutines and no internal timer.
type DragAnimator struct {
	active     bool
	from       float64
	to         float64
	duration   time.Duration
	start      time.Time
	onUpdate   func(angle float64)
	onComplete func()
}

// NewDragAnimator creates an idle drag animator
func NewDragAnimator() *DragAnimator {
	return &DragAnimator{}
}

// Animate starts an eased interpolation from one angle to another.
// onUpdate is invoked with the interpolated angle on every step and
// onComplete exactly once when the target is reached. Any in-flight
// interpolation is replaced without completing.
func (a *DragAnimator) Animate(from, to float64, onUpdate func(float64), onComplete func()) {
	a.active = true
	a.from = from
	a.to = to
	a.duration = settleDuration(from, to)
	a.start = time.Time{} // anchored on the first step
	a.onUpdate = onUpdate
	a.onComplete = onComplete
}

// Active reports whether an interpolation is in flight
func (a *DragAnimator) Active() bool {
	return a.active
}

// Cancel stops any in-flight interpolation without invoking onComplete
func (a *DragAnimator) Cancel() {
	a.active = false
	a.onUpdate = nil
	a.onComplete = nil
}

// Step advances the interpolation to the given time. It returns true
// while the animation is still running.
func (a *DragAnimator) Step(now time.Time) bool {
	if !a.active {
		return false
	}
	if a.start.IsZero() {
		a.start = now
	}

	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		a.active = false
		if a.onUpdate != nil {
			a.onUpdate(a.to)
		}
		done := a.onComplete
		a.onUpdate = nil
		a.onComplete = nil
		if done != nil {
			done()
		}
		return false
	}

	t := EaseInOutCubic(clamp01(float64(elapsed) / float64(a.duration)))
	if a.onUpdate != nil {
		a.onUpdate(a.from + (a.to-a.from)*t)
	}
	return true
}

// settleDuration scales the full-sweep duration by the angular distance
// still to cover, with a minimum floor
func settleDuration(from, to float64) time.Duration {
	dist := math.Abs(to-from) / 180
	d := time.Duration(float64(dragFullDuration) * dist)
	if d < dragMinDuration {
		d = dragMinDuration
	}
	return d
}
