package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pageturn/internal/book"
	"pageturn/internal/render"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.showTOC:
		body = m.viewTOC()
	case m.machine.IsClosed() || m.machine.Current() == book.StateClosing:
		body = m.viewCover()
	default:
		body = m.viewSpread()
	}

	status := m.viewStatus()
	helpView := m.styles.Help.Render(m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, body, status, helpView)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewCover renders the closed book
func (m *Model) viewCover() string {
	title := m.styles.CoverTitle.Render(m.renderer.Book().Title)
	hint := m.styles.Dim.Render("press → to open")
	inner := lipgloss.JoinVertical(lipgloss.Center, title, "", hint)
	return m.styles.Cover.Render(inner)
}

// viewSpread renders the open book, including the turning sheet when a
// flip or drag is in progress
func (m *Model) viewSpread() string {
	s := m.renderer.Surfaces()

	if m.layout.IsMobile() {
		page := m.showing(s.RightActive, s.RightBuffer)
		return m.composePages(m.renderPage(page), "")
	}

	left := m.showing(s.LeftActive, s.LeftBuffer)
	right := m.showing(s.RightActive, s.RightBuffer)
	return m.composePages(m.renderPage(left), m.renderPage(right))
}

// showing picks the surface the reader currently sees from an
// active/buffer pair
func (m *Model) showing(active, buffer render.Surface) render.Surface {
	if active.Hidden && !buffer.Hidden {
		return buffer
	}
	return active
}

// composePages joins the page boxes and overlays the turning sheet as a
// narrowing middle panel
func (m *Model) composePages(left, right string) string {
	s := m.renderer.Surfaces()

	if !s.Sheet.Prepared {
		if right == "" {
			return left
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	sheet := m.renderSheet()
	if right == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, sheet)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sheet, right)
}

// renderPage draws one page surface in its frame with a page number
func (m *Model) renderPage(surface render.Surface) string {
	body := surface.Content
	lines := strings.Split(body, "\n")
	for len(lines) < m.cfg.PageLines {
		lines = append(lines, "")
	}
	body = strings.Join(lines[:m.cfg.PageLines], "\n")

	number := m.styles.PageNumber.
		Width(m.cfg.PageWidth).
		Render(fmt.Sprintf("%d", surface.Index+1))

	page := lipgloss.JoinVertical(lipgloss.Left, body, number)
	return m.styles.Page.Width(m.cfg.PageWidth + 2).Render(page)
}

// renderSheet draws the mid-turn sheet. The sheet narrows with the
// cosine of its rotation, showing the front face before the midpoint
// and the back face after it.
func (m *Model) renderSheet() string {
	s := m.renderer.Surfaces()
	angle := math.Abs(s.Sheet.Rotation)

	width := int(math.Round(float64(m.cfg.PageWidth) * math.Abs(math.Cos(angle*math.Pi/180))))
	if width < 1 {
		width = 1
	}

	content := s.Sheet.FrontContent
	index := s.Sheet.FrontIndex
	if angle > 90 {
		content = s.Sheet.BackContent
		index = s.Sheet.BackIndex
	}

	style := m.styles.SheetLight
	if s.ShadowOpacity > 0.25 {
		style = m.styles.SheetDark
	}

	lines := strings.Split(content, "\n")
	for len(lines) < m.cfg.PageLines {
		lines = append(lines, "")
	}
	clipped := make([]string, m.cfg.PageLines)
	for i, line := range lines[:m.cfg.PageLines] {
		if len(line) > width {
			line = line[:width]
		}
		clipped[i] = line
	}
	body := strings.Join(clipped, "\n")

	number := m.styles.PageNumber.
		Width(width).
		Render(fmt.Sprintf("%d", index+1))

	sheet := lipgloss.JoinVertical(lipgloss.Left, style.Render(body), number)
	return m.styles.Page.Width(width + 2).Render(sheet)
}

// viewTOC renders the table of contents overlay
func (m *Model) viewTOC() string {
	bk := m.renderer.Book()
	current := m.navState.ChapterAt(m.navState.Index)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Contents"))
	b.WriteString("\n\n")

	for i, ch := range bk.Chapters {
		cursor := "  "
		if i == m.tocCursor {
			cursor = m.styles.TOCCursor.Render("> ")
		}

		entry := m.styles.TOCEntry
		if i == current {
			entry = m.styles.TOCCurrent
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			entry.Render(ch.Title),
			m.styles.Dim.Render(fmt.Sprintf("p.%d", ch.PageStart+1))))
	}

	return m.styles.TOCBox.Render(b.String())
}

// viewStatus renders the progress line under the book
func (m *Model) viewStatus() string {
	if !m.machine.IsOpened() {
		return m.styles.Status.Render(m.renderer.Book().Title)
	}

	bk := m.renderer.Book()
	index := m.navState.Index
	total := len(bk.Pages)

	var pages string
	if m.layout.IsMobile() || index+1 >= total {
		pages = fmt.Sprintf("p. %d of %d", index+1, total)
	} else {
		pages = fmt.Sprintf("p. %d-%d of %d", index+1, index+2, total)
	}

	chapter := ""
	if ci := m.navState.ChapterAt(index); ci < len(bk.Chapters) {
		chapter = m.styles.Chapter.Render(bk.Chapters[ci].Title)
	}

	var bar string
	if m.cfg.UISettings.ShowProgress && total > 1 {
		bar = m.progress.ViewAs(float64(index) / float64(total-1))
	}

	flash := ""
	if m.lastCue != "" && m.soundOn {
		flash = m.styles.SoundFlash.Render("♪")
	}

	parts := []string{m.styles.Status.Render(pages)}
	if chapter != "" {
		parts = append(parts, chapter)
	}
	if bar != "" {
		parts = append(parts, bar)
	}
	if flash != "" {
		parts = append(parts, flash)
	}
	return strings.Join(parts, "  ")
}
