package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"pageturn/internal/anim"
	"pageturn/internal/book"
	"pageturn/internal/config"
	"pageturn/internal/domain"
	"pageturn/internal/drag"
	"pageturn/internal/eventbus"
	"pageturn/internal/flip"
	"pageturn/internal/layout"
	"pageturn/internal/render"
	"pageturn/internal/sound"
	"pageturn/internal/store"
)

// frameInterval is the target spacing of animation frames
const frameInterval = 16 * time.Millisecond

// EventMsg wraps a domain event forwarded from the event bus
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg is an animation frame tick
type frameMsg time.Time

// Model is the Bubble Tea model for the reader
type Model struct {
	cfg      *config.Config
	bus      eventbus.EventBus
	machine  *book.Machine
	navState *book.NavState
	layout   *layout.Query
	renderer *render.BookRenderer

	navigator *flip.Navigator
	dragger   *drag.Delegate
	flipAnim  *anim.FlipAnimator

	positions *store.Store
	bookHash  string

	styles   *Styles
	keys     KeyMap
	help     help.Model
	progress progress.Model
	pager    *PagerOps

	width  int
	height int

	showTOC   bool
	tocCursor int
	soundOn   bool
	cues      sound.CuePlayer
	bell      sound.CuePlayer
	lastCue   string
	quitting  bool

	// work deferred to the next animation frame
	nextFrame []func()
	ticking   bool
}

// NewModel wires the reader UI around the flip engine
func NewModel(
	cfg *config.Config,
	bus eventbus.EventBus,
	renderer *render.BookRenderer,
	positions *store.Store,
	bookHash string,
) *Model {
	m := &Model{
		cfg:       cfg,
		bus:       bus,
		machine:   book.NewMachine(),
		navState:  book.NewNavState(renderer.Book().ChapterStarts()),
		layout:    layout.NewQuery(cfg.NarrowWidth),
		renderer:  renderer,
		positions: positions,
		bookHash:  bookHash,
		styles:    NewStyles(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
		soundOn:   cfg.Sound,
		bell:      sound.NewBellPlayer(),
		width:     80,
		height:    24,
	}

	m.flipAnim = anim.NewFlipAnimator()
	sounds := sound.NewEventPlayer(bus)
	m.cues = sounds

	m.navigator = flip.NewNavigator(m.machine, m.navState, m.renderer,
		m.flipAnim, sounds, m.layout, bus)
	m.navigator.SetOpenBookFunc(m.openBook)
	m.navigator.SetCloseBookFunc(m.closeBook)

	preparer := drag.NewPreparer(m.renderer, m.schedule)
	shadow := drag.NewShadow(m.renderer.Surfaces())
	m.dragger = drag.NewDelegate(m.machine, m.navState, m.renderer,
		anim.NewDragAnimator(), preparer, shadow, sounds, m.layout, bus)

	return m
}

// SetProgram hands the model its running program, needed to release the
// terminal for the embedded pager
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

// Navigator exposes the discrete flip controller for the orchestrator
func (m *Model) Navigator() *flip.Navigator {
	return m.navigator
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case EventMsg:
		return m.handleEvent(msg.Event)

	case chapterPagerMsg:
		if msg.err != nil {
			log.Printf("chapter pager failed: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.progress.Width = min(msg.Width-8, 48)

	wasMobile := m.layout.IsMobile()
	m.layout.SetWidth(msg.Width)

	if m.machine.IsOpened() && wasMobile != m.layout.IsMobile() {
		// Re-align to an even spread boundary when the layout widens
		if !m.layout.IsMobile() {
			m.navState.Index -= m.navState.Index % 2
		}
		m.renderer.ShowSpread(m.navState.Index, m.layout.IsMobile())
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showTOC {
		return m.handleTOCKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persistPosition()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.navigator.Flip(domain.DirectionNext)
		return m, m.startFrameClock()

	case key.Matches(msg, m.keys.Prev):
		m.navigator.Flip(domain.DirectionPrev)
		return m, m.startFrameClock()

	case key.Matches(msg, m.keys.First):
		m.navigator.HandleTOCNavigation(flip.TOCBeginning)
		return m, m.startFrameClock()

	case key.Matches(msg, m.keys.Last):
		m.navigator.HandleTOCNavigation(flip.TOCEnd)
		return m, m.startFrameClock()

	case key.Matches(msg, m.keys.TOC):
		if m.machine.IsClosed() {
			m.navigator.HandleTOCNavigation(flip.TOCBeginning)
			return m, nil
		}
		if m.machine.IsOpened() {
			m.showTOC = true
			m.tocCursor = m.navState.ChapterAt(m.navState.Index)
		}
		return m, nil

	case key.Matches(msg, m.keys.Pager):
		return m, m.showChapterPager()

	case key.Matches(msg, m.keys.Sound):
		m.soundOn = !m.soundOn
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m *Model) handleTOCKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chapters := m.renderer.Book().Chapters

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.TOC):
		m.showTOC = false

	case key.Matches(msg, m.keys.Up):
		if m.tocCursor > 0 {
			m.tocCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.tocCursor < len(chapters)-1 {
			m.tocCursor++
		}

	case key.Matches(msg, m.keys.Confirm):
		m.showTOC = false
		m.navigator.HandleTOCNavigation(m.tocCursor)
		return m, m.startFrameClock()

	case key.Matches(msg, m.keys.Quit):
		m.persistPosition()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.showTOC {
			return m, nil
		}
		left, width := m.bookBox()
		if dir, ok := m.cornerZone(msg.X, msg.Y, left, width); ok {
			m.dragger.StartDrag(float64(msg.X), dir, float64(left), float64(width))
			return m, m.startFrameClock()
		}

	case tea.MouseActionMotion:
		m.dragger.Move(float64(msg.X))

	case tea.MouseActionRelease:
		m.dragger.Release()
		return m, m.startFrameClock()
	}

	return m, nil
}

func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	// Run work deferred to this frame
	pending := m.nextFrame
	m.nextFrame = nil
	for _, fn := range pending {
		fn()
	}

	flipActive := m.flipAnim.Step(now)
	if flipActive {
		m.renderer.Surfaces().Sheet.Rotation = m.flipAnim.Angle()
	}
	dragActive := m.dragger.Step(now)

	if flipActive || dragActive || m.dragger.Active() || len(m.nextFrame) > 0 {
		return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg {
			return frameMsg(t)
		})
	}

	m.ticking = false
	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.IndexChangedEvent:
		m.persistPosition()

	case eventbus.SoundCueEvent:
		if m.soundOn {
			m.lastCue = string(e.Cue)
			m.bell.Play(e.Cue, e.Rate)
		}

	case eventbus.BookClosedEvent:
		m.persistPosition()
	}

	return m, nil
}

// schedule defers work to the next animation frame
func (m *Model) schedule(fn func()) {
	m.nextFrame = append(m.nextFrame, fn)
}

// startFrameClock begins ticking if an animation or deferred work needs
// frames; repeated calls while ticking are no-ops
func (m *Model) startFrameClock() tea.Cmd {
	needed := m.flipAnim.Active() || m.dragger.Active() || len(m.nextFrame) > 0
	if !needed || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// openBook runs the opening sequence: resume the saved position and
// show the first spread
func (m *Model) openBook() {
	if !m.machine.TransitionTo(book.StateOpening) {
		return
	}

	index := 0
	if m.cfg.UISettings.ResumeLastPage && m.positions != nil {
		index = book.ClampIndex(m.positions.PageIndex(m.bookHash), m.renderer.MaxIndex())
	}
	if !m.layout.IsMobile() {
		index -= index % 2
	}
	m.navState.Index = index
	m.renderer.ShowSpread(index, m.layout.IsMobile())
	m.cues.Play(domain.CueBookOpen, sound.VariedRate())

	m.machine.TransitionTo(book.StateOpened)
}

// closeBook runs the closing sequence and persists the position
func (m *Model) closeBook() {
	if !m.machine.TransitionTo(book.StateClosing) {
		return
	}
	m.persistPosition()
	m.cues.Play(domain.CueBookClose, sound.VariedRate())
	m.machine.TransitionTo(book.StateClosed)
}

func (m *Model) persistPosition() {
	if m.positions == nil {
		return
	}
	if err := m.positions.SetPageIndex(m.bookHash, m.navState.Index); err != nil {
		log.Printf("Failed to save reading position: %v", err)
	}
}

// showChapterPager opens the current chapter as flowing text in ov
func (m *Model) showChapterPager() tea.Cmd {
	if m.pager == nil || !m.machine.IsOpened() {
		return nil
	}

	bk := m.renderer.Book()
	chapter := m.navState.ChapterAt(m.navState.Index)
	start := 0
	end := len(bk.Pages)
	if chapter < len(bk.Chapters) {
		start = bk.Chapters[chapter].PageStart
		if chapter+1 < len(bk.Chapters) {
			end = bk.Chapters[chapter+1].PageStart
		}
	}

	text := ""
	for i := start; i < end; i++ {
		text += bk.Page(i) + "\n\n"
	}

	return func() tea.Msg {
		return chapterPagerMsg{err: m.pager.ShowChapterInPager(text)}
	}
}

// bookBox returns the left edge and width, in cells, of the book area
func (m *Model) bookBox() (left, width int) {
	width = m.pageBoxWidth()
	if !m.layout.IsMobile() {
		width *= 2
	}
	left = (m.width - width) / 2
	if left < 0 {
		left = 0
	}
	return left, width
}

// pageBoxWidth is the rendered width of one page including its frame
func (m *Model) pageBoxWidth() int {
	return m.cfg.PageWidth + 4
}

// cornerZone hit-tests a pointer position against the two corner zones.
// The zones span the outer columns of the book over its full height.
func (m *Model) cornerZone(x, y, left, width int) (domain.Direction, bool) {
	top := 1
	bottom := top + m.cfg.PageLines + 2
	if y < top || y > bottom {
		return domain.DirectionNext, false
	}

	zone := width / 8
	if zone < 3 {
		zone = 3
	}

	switch {
	case x >= left+width-zone && x < left+width:
		return domain.DirectionNext, true
	case x >= left && x < left+zone:
		return domain.DirectionPrev, true
	}
	return domain.DirectionNext, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
