package drag

import (
	"math"

	"pageturn/internal/domain"
	"pageturn/internal/render"
)

// Shadow intensity bounds. Opacity and size follow a sine of the flip
// angle so the shadow peaks when the sheet stands upright at 90 degrees
// and fades out flat at 0 and 180.
const (
	shadowMaxOpacity = 0.45
	shadowBaseSize   = 2.0
	shadowMaxSize    = 14.0
)

// Shadow computes the drop-shadow cast by the turning sheet and writes
// it as style overrides on the book surface
type Shadow struct {
	surfaces *render.Surfaces
	armed    bool
}

// NewShadow creates a shadow renderer writing to the given surfaces
func NewShadow(surfaces *render.Surfaces) *Shadow {
	return &Shadow{surfaces: surfaces}
}

// Activate arms shadow rendering for a drag in the given direction
func (s *Shadow) Activate(direction domain.Direction) {
	s.armed = true
}

// Armed reports whether the shadow is currently rendering
func (s *Shadow) Armed() bool {
	return s.armed
}

// Update recomputes the shadow for the given flip angle and writes the
// style-variable overrides
func (s *Shadow) Update(angle float64, direction domain.Direction, isMobile bool) {
	if !s.armed {
		return
	}

	peak := math.Sin(math.Pi * angle / 180)
	size := shadowBaseSize + (shadowMaxSize-shadowBaseSize)*peak
	if isMobile {
		size /= 2
	}

	s.surfaces.ShadowOpacity = shadowMaxOpacity * peak
	s.surfaces.ShadowSize = size
}

// Reset clears the overrides and disarms the shadow
func (s *Shadow) Reset() {
	s.armed = false
	s.surfaces.ShadowOpacity = 0
	s.surfaces.ShadowSize = 0
}
