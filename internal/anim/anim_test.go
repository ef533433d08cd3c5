package anim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageturn/internal/domain"
)

// stepUntilDone drives an animator with a synthetic 16ms frame clock
func stepUntilDone(t *testing.T, step func(time.Time) bool) {
	t.Helper()
	now := time.Unix(0, 0)
	for i := 0; i < 200; i++ {
		if !step(now) {
			return
		}
		now = now.Add(16 * time.Millisecond)
	}
	t.Fatal("animation did not settle within 200 frames")
}

func TestDragAnimatorReachesTargetAndCompletes(t *testing.T) {
	a := NewDragAnimator()

	var last float64
	completed := 0
	a.Animate(120, 180, func(angle float64) { last = angle }, func() { completed++ })

	require.True(t, a.Active())
	stepUntilDone(t, a.Step)

	assert.Equal(t, 180.0, last)
	assert.Equal(t, 1, completed)
	assert.False(t, a.Active())
}

func TestDragAnimatorUpdatesAreMonotonicTowardTarget(t *testing.T) {
	a := NewDragAnimator()

	var updates []float64
	a.Animate(60, 0, func(angle float64) { updates = append(updates, angle) }, func() {})

	stepUntilDone(t, a.Step)

	require.NotEmpty(t, updates)
	for i := 1; i < len(updates); i++ {
		assert.LessOrEqual(t, updates[i], updates[i-1]+1e-9)
	}
	assert.Equal(t, 0.0, updates[len(updates)-1])
}

func TestDragAnimatorCancelSkipsCompletion(t *testing.T) {
	a := NewDragAnimator()

	completed := false
	a.Animate(90, 180, func(float64) {}, func() { completed = true })

	now := time.Unix(0, 0)
	a.Step(now)
	a.Cancel()

	assert.False(t, a.Active())
	assert.False(t, a.Step(now.Add(time.Second)))
	assert.False(t, completed)
}

func TestSettleDurationProportionalWithFloor(t *testing.T) {
	full := settleDuration(0, 180)
	half := settleDuration(90, 180)
	tiny := settleDuration(179, 180)

	assert.Equal(t, dragFullDuration, full)
	assert.Less(t, half, full)
	assert.Equal(t, dragMinDuration, tiny)
}

func TestFlipAnimatorSwapsAtMidpointThenCompletes(t *testing.T) {
	a := NewFlipAnimator()

	var order []string
	a.RunFlip(domain.DirectionNext,
		func() { order = append(order, "swap") },
		func(err error) {
			require.NoError(t, err)
			order = append(order, "done")
		})

	require.True(t, a.Active())
	stepUntilDone(t, a.Step)

	assert.Equal(t, []string{"swap", "done"}, order)
	assert.False(t, a.Active())
}

func TestFlipAnimatorSwapsExactlyOnceWithCoarseClock(t *testing.T) {
	a := NewFlipAnimator()

	swaps := 0
	done := 0
	a.RunFlip(domain.DirectionPrev, func() { swaps++ }, func(error) { done++ })

	// Two giant steps jump straight over the rotate phase
	now := time.Unix(0, 0)
	a.Step(now)
	a.Step(now.Add(time.Second))

	assert.Equal(t, 1, swaps)
	assert.Equal(t, 1, done)
}

func TestFlipAnimatorAngleSignFollowsDirection(t *testing.T) {
	a := NewFlipAnimator()
	a.RunFlip(domain.DirectionNext, func() {}, func(error) {})

	now := time.Unix(0, 0)
	a.Step(now)
	a.Step(now.Add(liftDuration + rotateDuration/2))
	assert.Negative(t, a.Angle())

	stepUntilDone(t, a.Step)

	a.RunFlip(domain.DirectionPrev, func() {}, func(error) {})
	a.Step(now)
	a.Step(now.Add(liftDuration + rotateDuration/2))
	assert.Positive(t, a.Angle())
}

func TestFlipAnimatorAbortFailsWithoutSwap(t *testing.T) {
	a := NewFlipAnimator()

	swapped := false
	var got error
	a.RunFlip(domain.DirectionNext, func() { swapped = true }, func(err error) { got = err })

	a.Step(time.Unix(0, 0)) // still in lift
	cause := errors.New("sheet surface removed")
	a.Abort(cause)

	assert.False(t, a.Active())
	assert.False(t, swapped)
	assert.ErrorIs(t, got, cause)
}

func TestEasingEndpoints(t *testing.T) {
	for _, fn := range []func(float64) float64{Linear, EaseInOutCubic, Smoothstep} {
		assert.InDelta(t, 0, fn(0), 1e-9)
		assert.InDelta(t, 1, fn(1), 1e-9)
	}
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)
}
