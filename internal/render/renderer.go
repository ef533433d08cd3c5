package render

import (
	"pageturn/internal/content"
	"pageturn/internal/domain"
)

// Renderer is the page-swap contract shared by the discrete and drag
// flip controllers. Exactly one swap protocol exists in the system:
// prepare the off-screen buffer pair, prepare the rotating sheet, then
// promote the buffers at the animation midpoint.
type Renderer interface {
	MaxIndex() int
	PrepareBuffer(targetIndex int, isMobile bool)
	PrepareSheet(fromIndex, toIndex int, direction domain.Direction, isMobile bool)
	SwapBuffers()
	Surfaces() *Surfaces
}

// BookRenderer renders a content.Book onto the page surfaces
type BookRenderer struct {
	book     *content.Book
	surfaces Surfaces
}

// NewBookRenderer creates a renderer with the active pair showing the
// given start index
func NewBookRenderer(book *content.Book, startIndex int, isMobile bool) *BookRenderer {
	r := &BookRenderer{book: book}
	r.surfaces.LeftBuffer = Surface{Hidden: true, Inactive: true}
	r.surfaces.RightBuffer = Surface{Hidden: true, Inactive: true}
	r.ShowSpread(startIndex, isMobile)
	return r
}

// MaxIndex returns the highest valid page index
func (r *BookRenderer) MaxIndex() int {
	return r.book.MaxIndex()
}

// Surfaces exposes the visual state for the view and the drag helpers
func (r *BookRenderer) Surfaces() *Surfaces {
	return &r.surfaces
}

// Book returns the underlying content
func (r *BookRenderer) Book() *content.Book {
	return r.book
}

// ShowSpread loads the active pair directly, without animation. Used
// when the book is first opened and after layout-mode changes.
func (r *BookRenderer) ShowSpread(index int, isMobile bool) {
	left, right := r.spreadPages(index, isMobile)
	r.surfaces.LeftActive = Surface{Index: left.Index, Content: left.Content}
	r.surfaces.RightActive = Surface{Index: right.Index, Content: right.Content}
	if isMobile {
		r.surfaces.LeftActive.Hidden = true
	}
}

// PrepareBuffer fills the off-screen buffer pair with the target spread
func (r *BookRenderer) PrepareBuffer(targetIndex int, isMobile bool) {
	left, right := r.spreadPages(targetIndex, isMobile)
	left.Hidden, left.Inactive = true, true
	right.Hidden, right.Inactive = true, true
	r.surfaces.LeftBuffer = left
	r.surfaces.RightBuffer = right
}

// PrepareSheet fills the rotating sheet for the transition between two
// spreads. The front face shows the page the reader is leaving, the
// back face the page being revealed.
func (r *BookRenderer) PrepareSheet(fromIndex, toIndex int, direction domain.Direction, isMobile bool) {
	var front, back int
	if direction == domain.DirectionNext {
		front = fromIndex
		if !isMobile {
			front = fromIndex + 1 // the right-hand page turns over
		}
		back = toIndex
	} else {
		front = fromIndex
		back = toIndex
		if !isMobile {
			back = toIndex + 1
		}
	}
	r.surfaces.Sheet = Sheet{
		Prepared:     true,
		FrontIndex:   front,
		BackIndex:    back,
		FrontContent: r.book.Page(front),
		BackContent:  r.book.Page(back),
	}
}

// SwapBuffers promotes the off-screen pair to active and demotes the
// active pair to the off-screen buffers
func (r *BookRenderer) SwapBuffers() {
	s := &r.surfaces
	s.LeftActive, s.LeftBuffer = s.LeftBuffer, s.LeftActive
	s.RightActive, s.RightBuffer = s.RightBuffer, s.RightActive

	s.LeftActive.Hidden = false
	s.LeftActive.Inactive = false
	s.RightActive.Hidden = false
	s.RightActive.Inactive = false
	s.LeftBuffer.Hidden = true
	s.RightBuffer.Hidden = true
}

func (r *BookRenderer) spreadPages(index int, isMobile bool) (left, right Surface) {
	if isMobile {
		// Single-page layout shows only the right-hand surface
		return Surface{Index: index, Hidden: true},
			Surface{Index: index, Content: r.book.Page(index)}
	}
	return Surface{Index: index, Content: r.book.Page(index)},
		Surface{Index: index + 1, Content: r.book.Page(index + 1)}
}
