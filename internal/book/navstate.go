package book

// NavState is the navigation state shared by the discrete and drag flip
// controllers. Both controllers mutate it, but only while holding the
// flipping state on the Machine, so there is never more than one writer.
type NavState struct {
	// Index is the leftmost visible page index. On wide layouts it is
	// always even (a spread starts on an even boundary).
	Index int

	// ChapterStarts holds, in ascending order, the page index at which
	// each chapter begins. The start of content (0) counts as the first
	// chapter even when no explicit entry exists.
	ChapterStarts []int
}

// NewNavState creates navigation state positioned at the start of content
func NewNavState(chapterStarts []int) *NavState {
	return &NavState{ChapterStarts: chapterStarts}
}

// ChapterAt returns the index into ChapterStarts of the chapter that
// contains the given page, or 0 if the table is empty
func (n *NavState) ChapterAt(pageIndex int) int {
	chapter := 0
	for i, start := range n.ChapterStarts {
		if start > pageIndex {
			break
		}
		chapter = i
	}
	return chapter
}

// ClampIndex clamps a page index into [0, maxIndex]
func ClampIndex(index, maxIndex int) int {
	if index < 0 {
		return 0
	}
	if index > maxIndex {
		return maxIndex
	}
	return index
}
