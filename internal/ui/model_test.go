package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageturn/internal/config"
	"pageturn/internal/content"
	"pageturn/internal/domain"
	"pageturn/internal/eventbus"
	"pageturn/internal/render"
)

type nopBus struct{}

func (nopBus) Publish(eventbus.DomainEvent) {}
func (nopBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func testBook() *content.Book {
	var b strings.Builder
	b.WriteString("# One\n\n")
	for i := 0; i < 40; i++ {
		b.WriteString("Some opening text that fills a few lines of the first chapter.\n\n")
	}
	b.WriteString("# Two\n\n")
	for i := 0; i < 40; i++ {
		b.WriteString("The second chapter continues with more text of its own.\n\n")
	}
	return content.NewLoader().Load("Test Book", b.String())
}

func newTestModel(t *testing.T, width int) *Model {
	t.Helper()
	book := testBook()
	require.Greater(t, len(book.Pages), 4, "fixture book too small")

	renderer := render.NewBookRenderer(book, 0, false)
	m := NewModel(config.DefaultConfig(), nopBus{}, renderer, nil, "")
	m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return m
}

func pressKey(m *Model, k tea.KeyMsg) {
	m.Update(k)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runFrames steps the frame clock far enough for any flip or drag
// settle animation to finish
func runFrames(m *Model) {
	base := time.Now()
	for i := 0; i < 80; i++ {
		m.Update(frameMsg(base.Add(time.Duration(i) * 16 * time.Millisecond)))
	}
}

func TestNextKeyOpensClosedBook(t *testing.T) {
	m := newTestModel(t, 120)

	assert.True(t, m.machine.IsClosed())
	pressKey(m, runes("l"))

	assert.True(t, m.machine.IsOpened())
	assert.Equal(t, 0, m.navState.Index)
}

func TestFlipAdvancesTwoPagesOnWideLayout(t *testing.T) {
	m := newTestModel(t, 120)
	pressKey(m, runes("l"))

	pressKey(m, runes("l"))
	runFrames(m)

	assert.Equal(t, 2, m.navState.Index)
}

func TestFlipAdvancesOnePageOnNarrowLayout(t *testing.T) {
	m := newTestModel(t, 80)
	pressKey(m, runes("l"))

	pressKey(m, runes("l"))
	runFrames(m)

	assert.Equal(t, 1, m.navState.Index)
}

func TestWideningRealignsToEvenSpread(t *testing.T) {
	m := newTestModel(t, 80)
	pressKey(m, runes("l"))
	pressKey(m, runes("l"))
	runFrames(m)
	require.Equal(t, 1, m.navState.Index)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 0, m.navState.Index)
}

func TestTOCOverlaySelectsChapter(t *testing.T) {
	m := newTestModel(t, 120)
	pressKey(m, runes("l"))

	pressKey(m, runes("t"))
	require.True(t, m.showTOC)

	pressKey(m, runes("j"))
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	runFrames(m)

	assert.False(t, m.showTOC)
	want := m.renderer.Book().Chapters[1].PageStart
	want -= want % 2
	assert.Equal(t, want, m.navState.Index)
}

func TestTOCKeyOnClosedBookOpensAtBeginning(t *testing.T) {
	m := newTestModel(t, 120)

	pressKey(m, runes("t"))

	assert.True(t, m.machine.IsOpened())
	assert.False(t, m.showTOC)
	assert.Equal(t, 0, m.navState.Index)
}

func TestCornerZoneHitTest(t *testing.T) {
	m := newTestModel(t, 120)
	left, width := m.bookBox()

	tests := []struct {
		name    string
		x, y    int
		wantDir domain.Direction
		wantHit bool
	}{
		{"right edge", left + width - 1, 5, domain.DirectionNext, true},
		{"left edge", left, 5, domain.DirectionPrev, true},
		{"center", left + width/2, 5, domain.DirectionNext, false},
		{"outside book", left - 1, 5, domain.DirectionNext, false},
		{"above book", left + width - 1, 0, domain.DirectionNext, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, hit := m.cornerZone(tt.x, tt.y, left, width)
			assert.Equal(t, tt.wantHit, hit)
			if tt.wantHit {
				assert.Equal(t, tt.wantDir, dir)
			}
		})
	}
}

func TestCornerDragCompletesFlip(t *testing.T) {
	m := newTestModel(t, 120)
	pressKey(m, runes("l"))
	left, width := m.bookBox()

	m.Update(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      left + width - 1,
		Y:      5,
	})
	require.True(t, m.dragger.Session().IsDragging)

	// Drag well past the spine, then release
	m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, X: left + width/4, Y: 5})
	m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, X: left + width/4, Y: 5})
	runFrames(m)

	assert.Equal(t, 2, m.navState.Index)
	assert.True(t, m.machine.IsOpened())
}

func TestViewShowsSpreadAndStatus(t *testing.T) {
	m := newTestModel(t, 120)
	pressKey(m, runes("l"))

	out := m.View()

	assert.Contains(t, out, "1")
	assert.Contains(t, out, "of")
}

func TestPrevOnFirstPageClosesBook(t *testing.T) {
	m := newTestModel(t, 120)
	pressKey(m, runes("l"))
	require.True(t, m.machine.IsOpened())

	pressKey(m, runes("h"))

	assert.True(t, m.machine.IsClosed())
	assert.Contains(t, m.View(), "Test Book")
}

func TestCoverShownWhileClosed(t *testing.T) {
	m := newTestModel(t, 120)

	out := m.View()

	assert.Contains(t, out, "Test Book")
}

func TestQuitReturnsQuitCommand(t *testing.T) {
	m := newTestModel(t, 120)

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
}
