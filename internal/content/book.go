package content

// Chapter is a named entry point into the book
type Chapter struct {
	Title     string
	PageStart int
}

// Book holds paginated content: a flat list of fixed-size pages plus
// the chapter table built from headings
type Book struct {
	Title    string
	Pages    []string
	Chapters []Chapter
}

// MaxIndex returns the highest valid page index, or 0 for an empty book
func (b *Book) MaxIndex() int {
	if len(b.Pages) == 0 {
		return 0
	}
	return len(b.Pages) - 1
}

// Page returns the content of the given page, or the empty string for
// an out-of-range index (the blank page after the back cover)
func (b *Book) Page(index int) string {
	if index < 0 || index >= len(b.Pages) {
		return ""
	}
	return b.Pages[index]
}

// ChapterStarts returns the ascending page indexes at which chapters begin
func (b *Book) ChapterStarts() []int {
	starts := make([]int, len(b.Chapters))
	for i, c := range b.Chapters {
		starts[i] = c.PageStart
	}
	return starts
}
