package pagecontrol

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PageChangedMsg is the value-changed signal. It is sent when a tap or an
// autoplay advance moves the current page.
type PageChangedMsg struct {
	ID   int
	Page int
}

// FillCompletedMsg is sent when a page's fill runs to completion without
// being interrupted.
type FillCompletedMsg struct {
	ID   int
	Page int
}

// SequenceEndedMsg is sent alongside EventSink.OnSequenceEnded.
type SequenceEndedMsg struct {
	ID int
}

// phaseDoneMsg reports that the phase scheduled under gen has run its duration.
type phaseDoneMsg struct {
	id    int
	gen   int
	phase Phase
}

// frameMsg drives width easing and stroke progress.
type frameMsg struct {
	id   int
	gen  int
	time time.Time
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
