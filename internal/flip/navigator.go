package flip

import (
	"log"

	"pageturn/internal/anim"
	"pageturn/internal/book"
	"pageturn/internal/domain"
	"pageturn/internal/eventbus"
	"pageturn/internal/layout"
	"pageturn/internal/render"
	"pageturn/internal/sound"
)

// Table-of-contents selectors. Non-negative values index ChapterStarts.
const (
	// TOCEnd jumps to the last page
	TOCEnd = -1
	// TOCBeginning jumps to the start of content
	TOCBeginning = -2
)

// Navigator orchestrates discrete flips: next/prev, jump-to-page, and
// table-of-contents navigation. Every path funnels into the one
// execute-flip sequence, so there is a single page-swap protocol.
//
// Requests that arrive while the state machine is busy are dropped, not
// queued; requests that would move past a boundary are clamped and
// become silent no-ops.
type Navigator struct {
	machine  *book.Machine
	nav      *book.NavState
	renderer render.Renderer
	animator anim.FrameAnimator
	sounds   sound.CuePlayer
	layout   *layout.Query
	bus      eventbus.EventBus

	openBookFn  func()
	closeBookFn func()
}

// NewNavigator creates a discrete flip controller
func NewNavigator(
	machine *book.Machine,
	nav *book.NavState,
	renderer render.Renderer,
	animator anim.FrameAnimator,
	sounds sound.CuePlayer,
	lq *layout.Query,
	bus eventbus.EventBus,
) *Navigator {
	return &Navigator{
		machine:  machine,
		nav:      nav,
		renderer: renderer,
		animator: animator,
		sounds:   sounds,
		layout:   lq,
		bus:      bus,
	}
}

// SetOpenBookFunc sets the action run when a next-flip is requested on
// a closed book
func (n *Navigator) SetOpenBookFunc(fn func()) {
	n.openBookFn = fn
}

// SetCloseBookFunc sets the action run when a prev-flip is requested at
// the first page
func (n *Navigator) SetCloseBookFunc(fn func()) {
	n.closeBookFn = fn
}

// Flip turns one spread in the given direction. At the boundaries it
// delegates to the open/close actions instead of flipping.
func (n *Navigator) Flip(direction domain.Direction) {
	if n.machine.IsClosed() {
		if direction == domain.DirectionNext {
			n.openBook()
		}
		return
	}
	if n.machine.IsBusy() {
		return
	}
	if !n.machine.IsOpened() {
		return
	}
	if direction == domain.DirectionPrev && n.nav.Index == 0 {
		n.closeBook()
		return
	}

	step := n.layout.PagesPerFlip()
	target := n.nav.Index + step
	if direction == domain.DirectionPrev {
		target = n.nav.Index - step
	}
	target = book.ClampIndex(target, n.renderer.MaxIndex())
	if target == n.nav.Index {
		return
	}

	n.executeFlip(target, direction)
}

// FlipToPage flips directly to a page index, clamped into range
func (n *Navigator) FlipToPage(targetIndex int, direction domain.Direction) {
	if n.machine.IsBusy() || !n.machine.IsOpened() {
		return
	}

	target := book.ClampIndex(targetIndex, n.renderer.MaxIndex())
	if target == n.nav.Index {
		return
	}

	n.executeFlip(target, direction)
}

// HandleTOCNavigation navigates from a table-of-contents selection.
// TOCBeginning resolves to the first page, TOCEnd to the last, and a
// chapter number to that chapter's start page, aligned down to an even
// spread boundary on wide layouts. Out-of-range selectors are dropped.
func (n *Navigator) HandleTOCNavigation(selector int) {
	if n.machine.IsClosed() {
		n.openBook()
		return
	}
	if !n.machine.IsOpened() {
		return
	}

	var target int
	switch {
	case selector == TOCBeginning:
		target = 0
	case selector == TOCEnd:
		target = n.renderer.MaxIndex()
	case selector >= 0 && selector < len(n.nav.ChapterStarts):
		target = n.nav.ChapterStarts[selector]
		if !n.layout.IsMobile() {
			// Spreads start on even boundaries
			target -= target % 2
		}
	default:
		return
	}

	if target == n.nav.Index {
		return
	}
	direction := domain.DirectionNext
	if target < n.nav.Index {
		direction = domain.DirectionPrev
	}

	n.executeFlip(target, direction)
}

// executeFlip runs the shared flip sequence: lock the state machine,
// cue the sound, stage the buffers and sheet, and hand off to the frame
// animator. The index is only committed once the animation succeeds.
func (n *Navigator) executeFlip(target int, direction domain.Direction) {
	if !n.machine.TransitionTo(book.StateFlipping) {
		return
	}

	n.sounds.Play(domain.CuePageTurn, sound.VariedRate())

	isMobile := n.layout.IsMobile()
	n.renderer.PrepareBuffer(target, isMobile)
	n.renderer.PrepareSheet(n.nav.Index, target, direction, isMobile)

	n.bus.Publish(eventbus.FlipStartedEvent{Direction: direction, Target: target})

	n.animator.RunFlip(direction, n.renderer.SwapBuffers, func(err error) {
		if err != nil {
			// The book must never stay stuck in the flipping state, so
			// recovery bypasses the transition table. The flip is
			// treated as not having happened: the index stays put and
			// no user-visible error is raised.
			log.Printf("flip animation failed: %v", err)
			n.machine.ForceTransitionTo(book.StateOpened)
			n.bus.Publish(eventbus.FlipFailedEvent{Err: err})
			return
		}

		n.nav.Index = target
		n.machine.TransitionTo(book.StateOpened)
		n.bus.Publish(eventbus.IndexChangedEvent{NewIndex: target})
		n.bus.Publish(eventbus.ChapterUpdatedEvent{})
	})
}

func (n *Navigator) openBook() {
	n.bus.Publish(eventbus.BookOpenedEvent{})
	if n.openBookFn != nil {
		n.openBookFn()
	}
}

func (n *Navigator) closeBook() {
	n.bus.Publish(eventbus.BookClosedEvent{})
	if n.closeBookFn != nil {
		n.closeBookFn()
	}
}
