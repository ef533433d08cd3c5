package render

// Surface is one of the four page surfaces used for double buffering
type Surface struct {
	Index   int
	Content string
	Hidden  bool
	// Inactive marks a surface as an off-screen buffer being prepared
	Inactive bool
}

// Sheet is the rotating page surface shown during a flip. Rotation is
// a signed angle in degrees: negative values rotate toward the next
// page, positive toward the previous one.
type Sheet struct {
	Prepared     bool
	Rotation     float64
	FrontIndex   int
	BackIndex    int
	FrontContent string
	BackContent  string
}

// Surfaces is the full visual state of the book: the double-buffered
// page quadruple, the rotating sheet, and the transient drag markers
// and style overrides written by the drag controller
type Surfaces struct {
	LeftActive  Surface
	RightActive Surface
	LeftBuffer  Surface
	RightBuffer Surface
	Sheet       Sheet

	// Dragging marks the book as in a drag sub-state
	Dragging bool
	// NoTransition suppresses flip transitions while a drag is live
	NoTransition bool

	// Shadow style-variable overrides, written by the shadow renderer
	ShadowOpacity float64
	ShadowSize    float64
}
