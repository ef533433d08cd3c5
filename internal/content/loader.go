package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pagination geometry. Pages hold a fixed number of text lines; lines
// are wrapped at a fixed width so page count is stable across terminal
// resizes (the layout only decides how many pages are shown at once).
const (
	defaultPageWidth = 38
	defaultPageLines = 18
)

// Loader splits a plain-text file into fixed-size pages and builds the
// chapter table from markdown-style "# " headings
type Loader struct {
	PageWidth int
	PageLines int
}

// NewLoader creates a loader with the default page geometry
func NewLoader() *Loader {
	return &Loader{PageWidth: defaultPageWidth, PageLines: defaultPageLines}
}

// LoadFile reads and paginates a UTF-8 text file
func (l *Loader) LoadFile(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	book := l.Load(title, string(data))
	if len(book.Pages) == 0 {
		return nil, fmt.Errorf("no readable text in %s", path)
	}
	return book, nil
}

// Load paginates raw text into a book. Chapters start on a fresh page.
func (l *Loader) Load(title, text string) *Book {
	book := &Book{Title: title}

	var page []string
	flush := func() {
		if len(page) > 0 {
			book.Pages = append(book.Pages, strings.Join(page, "\n"))
			page = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")

		if heading, ok := strings.CutPrefix(line, "# "); ok {
			flush()
			book.Chapters = append(book.Chapters, Chapter{
				Title:     strings.TrimSpace(heading),
				PageStart: len(book.Pages),
			})
			page = append(page, strings.TrimSpace(heading), "")
			continue
		}

		for _, wrapped := range wrap(line, l.PageWidth) {
			page = append(page, wrapped)
			if len(page) >= l.PageLines {
				flush()
			}
		}
	}
	flush()

	// The start of content always counts as a chapter
	if len(book.Chapters) == 0 && len(book.Pages) > 0 {
		book.Chapters = []Chapter{{Title: title, PageStart: 0}}
	}

	return book
}

// wrap breaks a line into chunks no wider than width, on word
// boundaries where possible
func wrap(line string, width int) []string {
	if line == "" {
		return []string{""}
	}

	var out []string
	var cur strings.Builder
	for _, word := range strings.Fields(line) {
		switch {
		case cur.Len() == 0:
			// A single over-long word is hard-broken
			for len(word) > width {
				out = append(out, word[:width])
				word = word[width:]
			}
			cur.WriteString(word)
		case cur.Len()+1+len(word) <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			out = append(out, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	out = append(out, cur.String())
	return out
}
