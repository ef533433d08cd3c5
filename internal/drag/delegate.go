package drag

import (
	"time"

	"pageturn/internal/anim"
	"pageturn/internal/book"
	"pageturn/internal/domain"
	"pageturn/internal/eventbus"
	"pageturn/internal/layout"
	"pageturn/internal/render"
	"pageturn/internal/sound"
)

// completionThreshold is the angle past which a released drag settles
// into a completed flip instead of reverting
const completionThreshold = 90.0

// stuckTimeout force-releases a gesture that stopped producing pointer
// events, so a lost pointer can never leave the book stuck flipping
const stuckTimeout = 5 * time.Second

// Session is the transient state of a single drag gesture. It is
// created on pointer-down and fully discarded when the gesture
// resolves; nothing survives across gestures.
type Session struct {
	IsDragging   bool
	Direction    domain.Direction
	CurrentAngle float64
	StartX       float64
	BookWidth    float64
	BookLeftEdge float64
}

// Delegate lets a continuous pointer gesture starting in a corner zone
// drive the flip angle in real time, then resolves the gesture to a
// completed or cancelled flip on release.
type Delegate struct {
	machine  *book.Machine
	nav      *book.NavState
	renderer render.Renderer
	animator *anim.DragAnimator
	preparer *Preparer
	shadow   *Shadow
	sounds   sound.CuePlayer
	layout   *layout.Query
	bus      eventbus.EventBus

	session   Session
	resolving bool
	lastInput time.Time
}

// NewDelegate creates a drag flip controller
func NewDelegate(
	machine *book.Machine,
	nav *book.NavState,
	renderer render.Renderer,
	animator *anim.DragAnimator,
	preparer *Preparer,
	shadow *Shadow,
	sounds sound.CuePlayer,
	lq *layout.Query,
	bus eventbus.EventBus,
) *Delegate {
	return &Delegate{
		machine:  machine,
		nav:      nav,
		renderer: renderer,
		animator: animator,
		preparer: preparer,
		shadow:   shadow,
		sounds:   sounds,
		layout:   lq,
		bus:      bus,
	}
}

// Session returns a copy of the current drag session
func (d *Delegate) Session() Session {
	return d.session
}

// CanFlipNext reports whether a forward drag may start
func (d *Delegate) CanFlipNext() bool {
	return d.machine.IsOpened() && d.nav.Index < d.renderer.MaxIndex()
}

// CanFlipPrev reports whether a backward drag may start
func (d *Delegate) CanFlipPrev() bool {
	return d.machine.IsOpened() && d.nav.Index > 0
}

// StartDrag begins a gesture at pointer position px over a book
// occupying [bookLeftEdge, bookLeftEdge+bookWidth]. Requests are
// dropped while busy or when the direction's boundary is reached.
func (d *Delegate) StartDrag(px float64, direction domain.Direction, bookLeftEdge, bookWidth float64) {
	if d.machine.IsBusy() {
		return
	}
	if direction == domain.DirectionNext && !d.CanFlipNext() {
		return
	}
	if direction == domain.DirectionPrev && !d.CanFlipPrev() {
		return
	}
	if bookWidth <= 0 {
		return
	}
	if !d.machine.TransitionTo(book.StateFlipping) {
		return
	}

	d.session = Session{
		IsDragging:   true,
		Direction:    direction,
		StartX:       px,
		BookWidth:    bookWidth,
		BookLeftEdge: bookLeftEdge,
	}
	d.lastInput = time.Now()

	d.preparer.Prepare(direction, d.nav.Index, d.layout.PagesPerFlip(), d.layout.IsMobile())
	d.shadow.Activate(direction)
	d.applyAngle(d.angleFor(px))

	d.bus.Publish(eventbus.DragStartedEvent{Direction: direction})
}

// Move tracks a pointer move while dragging
func (d *Delegate) Move(px float64) {
	if !d.session.IsDragging {
		return
	}
	d.lastInput = time.Now()
	d.applyAngle(d.angleFor(px))
}

// Release resolves the gesture: past 90 degrees the flip completes,
// otherwise it reverts. The settle animation is not interruptible by
// new gestures; the machine stays flipping until it finishes.
func (d *Delegate) Release() {
	if !d.session.IsDragging {
		return
	}
	d.session.IsDragging = false
	d.resolving = true

	completed := d.session.CurrentAngle > completionThreshold
	target := 0.0
	if completed {
		target = 180.0
	}

	d.animator.Animate(d.session.CurrentAngle, target,
		func(angle float64) { d.applyAngle(angle) },
		func() { d.finish(completed) })
}

// Step drives the settle animation and the stuck-gesture watchdog from
// the host frame loop
func (d *Delegate) Step(now time.Time) bool {
	if d.session.IsDragging && now.Sub(d.lastInput) > stuckTimeout {
		// Pointer lost without a release event
		d.Release()
	}
	return d.animator.Step(now)
}

// Active reports whether a gesture or its settle animation is running
func (d *Delegate) Active() bool {
	return d.session.IsDragging || d.resolving
}

// angleFor computes the flip angle for a pointer x-position per the
// mirror-image formulas: at the edge being dragged from the angle is 0,
// at the opposite edge it is 180.
func (d *Delegate) angleFor(px float64) float64 {
	x := px - d.session.BookLeftEdge
	progress := x / d.session.BookWidth
	if d.session.Direction == domain.DirectionNext {
		progress = 1 - progress
	}
	angle := progress * 180
	if angle < 0 {
		return 0
	}
	if angle > 180 {
		return 180
	}
	return angle
}

// applyAngle records the angle and re-renders the sheet rotation and
// shadow. The rendered rotation is negative for a next-flip so the
// sheet rotates toward the side being dragged from.
func (d *Delegate) applyAngle(angle float64) {
	d.session.CurrentAngle = angle

	rotation := angle
	if d.session.Direction == domain.DirectionNext {
		rotation = -angle
	}
	d.renderer.Surfaces().Sheet.Rotation = rotation
	d.shadow.Update(angle, d.session.Direction, d.layout.IsMobile())
}

// finish tears down the gesture once the settle animation lands
func (d *Delegate) finish(completed bool) {
	d.preparer.CleanupSheet()
	d.shadow.Reset()

	if completed {
		d.sounds.Play(domain.CuePageTurn, sound.VariedRate())
		d.renderer.SwapBuffers()

		step := d.layout.PagesPerFlip()
		target := d.nav.Index + step
		if d.session.Direction == domain.DirectionPrev {
			target = d.nav.Index - step
		}
		d.nav.Index = book.ClampIndex(target, d.renderer.MaxIndex())
	}

	d.machine.TransitionTo(book.StateOpened)

	if completed {
		d.bus.Publish(eventbus.IndexChangedEvent{NewIndex: d.nav.Index})
		d.bus.Publish(eventbus.ChapterUpdatedEvent{})
	}
	d.preparer.CleanupPages(completed)
	d.bus.Publish(eventbus.DragResolvedEvent{Completed: completed})

	d.session = Session{}
	d.resolving = false
}
