package pagecontrol

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/pagedots/internal/logger"
	"github.com/stretchr/testify/require"
)

// virtualClock collects Tick requests and fires them in deadline order.
type virtualClock struct {
	now    time.Time
	seq    int
	timers []virtualTimer
}

type virtualTimer struct {
	at  time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

func newVirtualClock() *virtualClock {
	return &virtualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *virtualClock) Now() time.Time { return c.now }

func (c *virtualClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		c.seq++
		c.timers = append(c.timers, virtualTimer{at: c.now.Add(d), seq: c.seq, fn: fn})
		return nil
	}
}

// pop removes and returns the earliest timer due at or before deadline.
func (c *virtualClock) pop(deadline time.Time) (virtualTimer, bool) {
	if len(c.timers) == 0 {
		return virtualTimer{}, false
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	next := c.timers[0]
	if next.at.After(deadline) {
		return virtualTimer{}, false
	}
	c.timers = c.timers[1:]
	return next, true
}

type recordingSink struct {
	ended    int
	selected []int
}

func (s *recordingSink) OnSequenceEnded()              { s.ended++ }
func (s *recordingSink) OnIndicatorSelected(index int) { s.selected = append(s.selected, index) }

// harness drives a Model the way a Bubble Tea program would, on virtual time.
type harness struct {
	t       *testing.T
	m       Model
	clock   *virtualClock
	sink    *recordingSink
	log     *logger.BufferLogger
	start   time.Time
	emitted []tea.Msg
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		clock: newVirtualClock(),
		sink:  &recordingSink{},
		log:   logger.NewBufferLogger(),
	}
	h.start = h.clock.now
	base := []Option{WithClock(h.clock), WithSink(h.sink), WithLogger(h.log)}
	h.m = New(append(base, opts...)...)
	return h
}

// do applies a mutation and runs the command it returns.
func (h *harness) do(fn func(m *Model) tea.Cmd) {
	h.run(fn(&h.m))
}

func (h *harness) send(msg tea.Msg) {
	var cmd tea.Cmd
	h.m, cmd = h.m.Update(msg)
	h.run(cmd)
	h.requireSingleStroke()
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	default:
		h.emitted = append(h.emitted, msg)
	}
}

// advance fires every timer due within d, in order, then moves the clock to now+d.
func (h *harness) advance(d time.Duration) {
	deadline := h.clock.now.Add(d)
	for {
		timer, ok := h.clock.pop(deadline)
		if !ok {
			break
		}
		h.clock.now = timer.at
		h.send(timer.fn(timer.at))
	}
	h.clock.now = deadline
}

// runUntilIdle fires timers until none remain.
func (h *harness) runUntilIdle() {
	for i := 0; i < 100000; i++ {
		timer, ok := h.clock.pop(time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
		if !ok {
			return
		}
		h.clock.now = timer.at
		h.send(timer.fn(timer.at))
	}
	h.t.Fatal("timers never drained")
}

func (h *harness) elapsed() time.Duration {
	return h.clock.now.Sub(h.start)
}

func (h *harness) requireSingleStroke() {
	strokes := 0
	for i := 0; i < h.m.Strip().Len(); i++ {
		if h.m.Strip().At(i).Stroke() != nil {
			strokes++
		}
	}
	require.LessOrEqual(h.t, strokes, 1, "at most one stroke overlay may be attached")
}

func (h *harness) pageChanges() []int {
	var pages []int
	for _, msg := range h.emitted {
		if pc, ok := msg.(PageChangedMsg); ok {
			pages = append(pages, pc.Page)
		}
	}
	return pages
}

func (h *harness) fillsCompleted() []int {
	var pages []int
	for _, msg := range h.emitted {
		if fc, ok := msg.(FillCompletedMsg); ok {
			pages = append(pages, fc.Page)
		}
	}
	return pages
}

func (h *harness) sequenceEnds() int {
	n := 0
	for _, msg := range h.emitted {
		if _, ok := msg.(SequenceEndedMsg); ok {
			n++
		}
	}
	return n
}
