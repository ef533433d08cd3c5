package layout

// Mode is the viewport layout mode: a wide terminal shows a two-page
// spread, a narrow one a single page
type Mode int

const (
	ModeWide Mode = iota
	ModeNarrow
)

// DefaultNarrowWidth is the terminal width below which the single-page
// layout is used
const DefaultNarrowWidth = 90

// Query reports the current layout mode. The TUI updates it from
// WindowSizeMsg; the flip controllers only read it.
type Query struct {
	narrowWidth int
	width       int
}

// NewQuery creates a layout query with the given narrow-width threshold
// (0 uses the default)
func NewQuery(narrowWidth int) *Query {
	if narrowWidth <= 0 {
		narrowWidth = DefaultNarrowWidth
	}
	return &Query{narrowWidth: narrowWidth, width: DefaultNarrowWidth}
}

// SetWidth records the current terminal width
func (q *Query) SetWidth(width int) {
	q.width = width
}

// Mode returns the current layout mode
func (q *Query) Mode() Mode {
	if q.width < q.narrowWidth {
		return ModeNarrow
	}
	return ModeWide
}

// IsMobile reports whether the single-page layout is active
func (q *Query) IsMobile() bool {
	return q.Mode() == ModeNarrow
}

// PagesPerFlip returns how many pages a single flip advances: one on
// the single-page layout, two on a spread
func (q *Query) PagesPerFlip() int {
	if q.IsMobile() {
		return 1
	}
	return 2
}
