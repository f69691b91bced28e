package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pagedots/internal/logger"
	"github.com/rileyhilliard/pagedots/internal/ui"
)

// maxEvents is how many log lines the player keeps on screen.
const maxEvents = 5

// EventKind classifies an entry in the event log.
type EventKind int

const (
	EventSelected EventKind = iota
	EventPageChanged
	EventFillCompleted
	EventEnded
)

// String returns the label shown in the log.
func (k EventKind) String() string {
	switch k {
	case EventSelected:
		return "selected"
	case EventPageChanged:
		return "page changed"
	case EventFillCompleted:
		return "fill completed"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is one entry in the log. Page is zero-based and unused for EventEnded.
type Event struct {
	Kind EventKind
	Page int
}

func (e Event) String() string {
	if e.Kind == EventEnded {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s %d", e.Kind, e.Page+1)
}

// eventLog is a bounded log of what the control reported. It doubles as the
// control's event sink, so it is shared by pointer across model copies.
type eventLog struct {
	entries []Event
	limit   int
	log     logger.Logger
}

func newEventLog(limit int) *eventLog {
	return &eventLog{limit: limit, log: logger.NewEnvLogger("[player]")}
}

func (l *eventLog) add(e Event) {
	l.log.Debug("%s", e)
	l.entries = append(l.entries, e)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = l.entries[over:]
	}
}

// OnSequenceEnded implements pagecontrol.EventSink.
func (l *eventLog) OnSequenceEnded() {
	l.add(Event{Kind: EventEnded})
}

// OnIndicatorSelected implements pagecontrol.EventSink.
func (l *eventLog) OnIndicatorSelected(index int) {
	l.add(Event{Kind: EventSelected, Page: index})
}

var (
	eventStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	endedStyle = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
)

func (l *eventLog) render() string {
	lines := make([]string, 0, l.limit)
	for _, e := range l.entries {
		switch e.Kind {
		case EventEnded:
			lines = append(lines, endedStyle.Render(ui.SymbolSuccess+" "+e.String()))
		case EventFillCompleted:
			lines = append(lines, eventStyle.Render(ui.SymbolDone+" "+e.String()))
		default:
			lines = append(lines, eventStyle.Render(ui.SymbolPending+" "+e.String()))
		}
	}
	// Pad so the layout does not jump while the log fills up.
	for len(lines) < l.limit {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
