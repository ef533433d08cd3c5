package drag

import (
	"pageturn/internal/book"
	"pageturn/internal/domain"
	"pageturn/internal/render"
)

// Preparer sets up and tears down the visual state of the four page
// surfaces and the rotating sheet around a drag session. During a drag
// exactly one off-screen buffer surface is made visible under the
// turning sheet while its active counterpart is hidden; on release the
// temporary visibility is either made permanent (completed flip) or
// reverted (cancelled flip).
type Preparer struct {
	renderer render.Renderer
	// schedule defers work to the next display refresh; the host loop
	// injects its frame scheduler, tests run the work immediately
	schedule func(func())

	revealedRight bool
	prevHidden    bool
}

// NewPreparer creates a preparer. schedule may be nil, in which case
// deferred work runs inline.
func NewPreparer(renderer render.Renderer, schedule func(func())) *Preparer {
	if schedule == nil {
		schedule = func(fn func()) { fn() }
	}
	return &Preparer{renderer: renderer, schedule: schedule}
}

// Prepare stages the surfaces for a drag toward the given direction
func (p *Preparer) Prepare(direction domain.Direction, currentIndex, pagesPerFlip int, isMobile bool) {
	s := p.renderer.Surfaces()
	s.NoTransition = true
	s.Dragging = true

	target := currentIndex + pagesPerFlip
	if direction == domain.DirectionPrev {
		target = currentIndex - pagesPerFlip
	}
	target = book.ClampIndex(target, p.renderer.MaxIndex())

	p.renderer.PrepareBuffer(target, isMobile)
	p.renderer.PrepareSheet(currentIndex, target, direction, isMobile)

	// The single-page layout only ever shows the right-hand pair
	p.revealedRight = isMobile || direction == domain.DirectionNext

	buffer, active := p.pair(s)
	p.prevHidden = buffer.Hidden
	buffer.Hidden = false
	active.Hidden = true
}

// CleanupSheet strips all transient style overrides from the sheet
func (p *Preparer) CleanupSheet() {
	p.renderer.Surfaces().Sheet = render.Sheet{}
}

// CleanupPages restores normal active/buffer visibility after a drag.
// When the flip was cancelled the pre-drag buffer-hidden flag is
// reinstated; when it completed the renderer's own swap has already
// promoted the buffer, so its inactive flag is deliberately left false.
// The no-transition marker is removed on the next display refresh so
// future discrete flips animate normally again.
func (p *Preparer) CleanupPages(completed bool) {
	s := p.renderer.Surfaces()
	buffer, active := p.pair(s)

	if completed {
		active.Hidden = false
		buffer.Hidden = true
	} else {
		buffer.Hidden = p.prevHidden
		active.Hidden = false
	}

	s.Dragging = false
	p.schedule(func() {
		s.NoTransition = false
	})
}

// pair returns the buffer surface revealed during the drag and its
// active counterpart
func (p *Preparer) pair(s *render.Surfaces) (buffer, active *render.Surface) {
	if p.revealedRight {
		return &s.RightBuffer, &s.RightActive
	}
	return &s.LeftBuffer, &s.LeftActive
}
