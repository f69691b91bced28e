package pagecontrol

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rileyhilliard/pagedots/internal/indicator"
	"github.com/rileyhilliard/pagedots/internal/logger"
	"github.com/rileyhilliard/pagedots/internal/strip"
	"github.com/rileyhilliard/pagedots/internal/ui"
)

// Defaults taken by New.
const (
	DefaultSpacing          = 1
	DefaultHeight           = 1
	DefaultCollapseDuration = 250 * time.Millisecond
	DefaultExpandDuration   = 200 * time.Millisecond
	DefaultFillDuration     = 2500 * time.Millisecond
)

// expansionRatio is the extra width of an expanded indicator, in multiples
// of its collapsed width.
const expansionRatio = 2

// Model is the page control. Copies share the underlying indicator strip, so
// a host should keep exactly one live copy and replace it with the value
// returned from Update.
type Model struct {
	KeyMap KeyMap

	id  int
	gen int

	strip         *strip.Strip
	height        int
	spacing       int
	initialPages  int
	numberOfPages int
	currentPage   int

	fillDurations    []time.Duration
	collapseDuration time.Duration
	expandDuration   time.Duration
	autoPlay         bool
	pageTint         lipgloss.TerminalColor
	currentTint      lipgloss.TerminalColor

	phase      Phase
	after      afterCollapse
	phaseStart time.Time
	phaseLen   time.Duration
	framing    bool
	ended      bool

	// stroke is the overlay of the running Filling phase, owned here and
	// attached to the indicator at strokeAt.
	stroke   *indicator.Stroke
	strokeAt int

	motion motion

	sink       EventSink
	log        logger.Logger
	clock      Clock
	zones      *zone.Manager
	zonePrefix string
}

// New creates a page control.
func New(opts ...Option) Model {
	m := Model{
		KeyMap:           DefaultKeyMap(),
		id:               nextID(),
		height:           DefaultHeight,
		spacing:          DefaultSpacing,
		fillDurations:    []time.Duration{DefaultFillDuration},
		collapseDuration: DefaultCollapseDuration,
		expandDuration:   DefaultExpandDuration,
		pageTint:         ui.ColorPageTint,
		currentTint:      ui.ColorCurrentPageTint,
		sink:             NopSink{},
		log:              logger.NewEnvLogger("[pagecontrol]"),
		clock:            teaClock{},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.strip = strip.New(m.height, m.spacing)
	if m.initialPages != 0 {
		m.SetNumberOfPages(m.initialPages)
	}
	return m
}

// ID returns the control's unique identifier, carried by its messages.
func (m Model) ID() int {
	return m.id
}

// NumberOfPages returns the number of pages.
func (m Model) NumberOfPages() int {
	return m.numberOfPages
}

// CurrentPage returns the zero-based current page. It is 0 and inert when
// there are no pages.
func (m Model) CurrentPage() int {
	return m.currentPage
}

// Phase returns the current animation phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Animating reports whether a cycle is in progress, from its first phase
// until the trailing collapse completes.
func (m Model) Animating() bool {
	return m.phase != PhaseIdle
}

// Ended reports whether the last page completed its cycle and nothing has
// started since.
func (m Model) Ended() bool {
	return m.ended
}

// AutoPlay reports whether completed pages advance automatically.
func (m Model) AutoPlay() bool {
	return m.autoPlay
}

// FillDurations returns a copy of the per-page fill durations.
func (m Model) FillDurations() []time.Duration {
	out := make([]time.Duration, len(m.fillDurations))
	copy(out, m.fillDurations)
	return out
}

// FillDuration returns the fill duration for page. Pages past the end of the
// configured list reuse its last entry.
func (m Model) FillDuration(page int) time.Duration {
	if page >= 0 && page < len(m.fillDurations) {
		return m.fillDurations[page]
	}
	return m.fillDurations[len(m.fillDurations)-1]
}

// Strip exposes the indicator row for inspection.
func (m Model) Strip() *strip.Strip {
	return m.strip
}

// SetNumberOfPages rebuilds the indicators with n fresh, collapsed dots and
// cancels any running cycle. It does not start playback. n <= 0 leaves no
// indicators and logs a warning.
func (m *Model) SetNumberOfPages(n int) {
	m.cancel()
	m.phase = PhaseIdle

	if n <= 0 {
		m.log.Warn("numberOfPages should be greater than 0, got %d", n)
		n = 0
	}

	m.numberOfPages = n
	m.strip.Rebuild(n, m.pageTint)
	m.motion.reset(n)

	if m.currentPage >= n {
		m.currentPage = max(n-1, 0)
	}
}

// SetCurrentPage moves to page and starts its cycle. Out-of-range pages are
// rejected with a warning; the current page is a no-op.
func (m *Model) SetCurrentPage(page int) tea.Cmd {
	if page < 0 || page >= m.numberOfPages {
		m.log.Warn("page %d is outside [0, %d), keeping page %d", page, m.numberOfPages, m.currentPage)
		return nil
	}
	if page == m.currentPage {
		return nil
	}
	return m.transition(page)
}

// SetFillDurations replaces the per-page fill durations. It takes effect on
// the next Filling phase. An empty list, or one holding a duration that is
// not positive, is rejected with a warning.
func (m *Model) SetFillDurations(durations []time.Duration) {
	if len(durations) == 0 {
		m.log.Warn("fill durations should not be empty, keeping %v", m.fillDurations)
		return
	}
	for _, d := range durations {
		if d <= 0 {
			m.log.Warn("fill duration %s should be positive, keeping %v", d, m.fillDurations)
			return
		}
	}
	m.fillDurations = make([]time.Duration, len(durations))
	copy(m.fillDurations, durations)
}

// SetCollapseDuration sets how long an indicator takes to shrink back.
// Negative durations are rejected with a warning.
func (m *Model) SetCollapseDuration(d time.Duration) {
	if d < 0 {
		m.log.Warn("collapse duration should not be negative, keeping %s", m.collapseDuration)
		return
	}
	m.collapseDuration = d
}

// SetExpandDuration sets how long an indicator takes to grow into a pill.
// Negative durations are rejected with a warning.
func (m *Model) SetExpandDuration(d time.Duration) {
	if d < 0 {
		m.log.Warn("expand duration should not be negative, keeping %s", m.expandDuration)
		return
	}
	m.expandDuration = d
}

// SetAutoPlay turns automatic advancing on or off.
func (m *Model) SetAutoPlay(on bool) {
	m.autoPlay = on
}

// SetSpacing changes the gap between indicators.
func (m *Model) SetSpacing(cells int) {
	m.spacing = cells
	m.strip.SetSpacing(cells)
}

// SetPageIndicatorTint recolors every indicator.
func (m *Model) SetPageIndicatorTint(c lipgloss.TerminalColor) {
	m.pageTint = c
	m.strip.SetColor(c)
	if m.ended {
		m.markEnded()
	}
}

// SetCurrentPageIndicatorTint sets the stroke color, including the running one.
func (m *Model) SetCurrentPageIndicatorTint(c lipgloss.TerminalColor) {
	m.currentTint = c
	if m.stroke != nil {
		m.stroke.Color = c
	}
	if m.ended {
		m.markEnded()
	}
}

// SetSink replaces the event sink. Nil installs NopSink.
func (m *Model) SetSink(s EventSink) {
	if s == nil {
		s = NopSink{}
	}
	m.sink = s
}

// StartFillAnimation (re)starts the Expanding and Filling phases for the
// current page without collapsing anything first. Call it once the control
// becomes visible; setting up pages never starts playback on its own.
func (m *Model) StartFillAnimation() tea.Cmd {
	if m.numberOfPages <= 0 {
		return nil
	}
	m.cancel()
	m.motion.collapseAll()
	m.motion.setTarget(m.currentPage, m.expandedAmount())
	return m.enter(PhaseExpanding, m.expandDuration)
}

// Rewind rebuilds the indicators, returns to the first page and starts its
// fill.
func (m *Model) Rewind() tea.Cmd {
	if m.numberOfPages <= 0 {
		return nil
	}
	m.currentPage = 0
	m.SetNumberOfPages(m.numberOfPages)
	return m.StartFillAnimation()
}

// HandleIndicatorTap reports the tap to the sink and, for any page other
// than the current one, moves there and sends PageChangedMsg.
func (m *Model) HandleIndicatorTap(index int) tea.Cmd {
	m.sink.OnIndicatorSelected(index)

	if index == m.currentPage {
		return nil
	}

	before := m.currentPage
	cmd := m.SetCurrentPage(index)
	if m.currentPage == before {
		return cmd
	}
	return tea.Batch(cmd, emit(PageChangedMsg{ID: m.id, Page: m.currentPage}))
}

// Init implements tea.Model. Playback waits for StartFillAnimation.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles phase completions, animation frames, mouse taps on
// indicator zones, and key presses matching KeyMap.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case phaseDoneMsg:
		if msg.id != m.id || msg.gen != m.gen || msg.phase != m.phase {
			return m, nil
		}
		return m, m.completePhase()

	case frameMsg:
		if msg.id != m.id || msg.gen != m.gen {
			return m, nil
		}
		return m, m.frame(msg.time)

	case tea.MouseMsg:
		if index, ok := m.hit(msg); ok {
			return m, m.HandleIndicatorTap(index)
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.numberOfPages <= 0 {
		return nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Prev):
		if m.currentPage > 0 {
			return m.HandleIndicatorTap(m.currentPage - 1)
		}
	case key.Matches(msg, m.KeyMap.Next):
		if m.currentPage < m.numberOfPages-1 {
			return m.HandleIndicatorTap(m.currentPage + 1)
		}
	case key.Matches(msg, m.KeyMap.Jump):
		page, err := strconv.Atoi(msg.String())
		if err == nil && page >= 1 && page <= m.numberOfPages {
			return m.HandleIndicatorTap(page - 1)
		}
	case key.Matches(msg, m.KeyMap.Play):
		return m.StartFillAnimation()
	}
	return nil
}

// cancel invalidates everything scheduled so far and drops the stroke.
func (m *Model) cancel() {
	m.gen++
	m.framing = false
	m.detachStroke()
	if m.ended {
		m.ended = false
		m.strip.SetColor(m.pageTint)
	}
}

func (m *Model) detachStroke() {
	if m.stroke == nil {
		return
	}
	if ind := m.strip.At(m.strokeAt); ind != nil {
		ind.DetachStroke()
	}
	m.stroke = nil
}

func (m Model) expandedAmount() float64 {
	return float64(expansionRatio * m.strip.DefaultWidth())
}

// transition collapses whatever is expanded, then expands page.
func (m *Model) transition(page int) tea.Cmd {
	m.cancel()
	m.log.Debug("transition %d -> %d", m.currentPage, page)
	m.currentPage = page
	m.motion.collapseAll()
	m.after = thenExpand
	return m.enter(PhaseCollapsing, m.collapseDuration)
}

// enter switches to phase p and schedules its completion after d.
func (m *Model) enter(p Phase, d time.Duration) tea.Cmd {
	m.phase = p
	m.phaseStart = m.clock.Now()
	m.phaseLen = d
	m.motion.tune(d)

	id, gen := m.id, m.gen
	done := m.clock.Tick(d, func(time.Time) tea.Msg {
		return phaseDoneMsg{id: id, gen: gen, phase: p}
	})
	return tea.Batch(done, m.ensureFrames())
}

func (m *Model) ensureFrames() tea.Cmd {
	if m.framing {
		return nil
	}
	m.framing = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	id, gen := m.id, m.gen
	return m.clock.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen, time: t}
	})
}

func (m *Model) frame(now time.Time) tea.Cmd {
	moving := m.motion.step(m.strip)

	if m.phase == PhaseFilling && m.stroke != nil {
		m.stroke.Progress = progress(now.Sub(m.phaseStart), m.phaseLen)
	}

	if m.phase == PhaseIdle && !moving {
		m.framing = false
		return nil
	}
	return m.frameCmd()
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (m *Model) completePhase() tea.Cmd {
	m.motion.snap(m.strip)

	switch m.phase {
	case PhaseCollapsing:
		if m.after == thenExpand {
			m.motion.setTarget(m.currentPage, m.expandedAmount())
			return m.enter(PhaseExpanding, m.expandDuration)
		}
		return m.settle()

	case PhaseExpanding:
		return m.startFilling()

	case PhaseFilling:
		return m.finishFilling()
	}
	return nil
}

func (m *Model) startFilling() tea.Cmd {
	m.stroke = &indicator.Stroke{Color: m.currentTint}
	m.strokeAt = m.currentPage
	if ind := m.strip.At(m.currentPage); ind != nil {
		ind.AttachStroke(m.stroke)
	}
	return m.enter(PhaseFilling, m.FillDuration(m.currentPage))
}

func (m *Model) finishFilling() tea.Cmd {
	page := m.currentPage
	m.stroke.Progress = 1
	m.detachStroke()
	m.log.Debug("page %d filled", page)

	m.motion.setTarget(page, 0)
	m.after = thenSettle
	return tea.Batch(
		emit(FillCompletedMsg{ID: m.id, Page: page}),
		m.enter(PhaseCollapsing, m.collapseDuration),
	)
}

// settle ends the cycle: report the end of the sequence or advance.
func (m *Model) settle() tea.Cmd {
	m.phase = PhaseIdle
	page := m.currentPage

	if page == m.numberOfPages-1 {
		m.markEnded()
		m.sink.OnSequenceEnded()
		return emit(SequenceEndedMsg{ID: m.id})
	}

	if !m.autoPlay {
		return nil
	}

	next := page + 1
	return tea.Batch(
		m.transition(next),
		emit(PageChangedMsg{ID: m.id, Page: next}),
	)
}

// markEnded leaves the last indicator drawn in the current-page tint.
func (m *Model) markEnded() {
	m.ended = true
	if ind := m.strip.At(m.numberOfPages - 1); ind != nil {
		ind.SetColor(m.currentTint)
	}
}
