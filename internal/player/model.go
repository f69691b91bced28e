package player

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rileyhilliard/pagedots/internal/pagecontrol"
)

// Model is the Bubble Tea model for the demo player.
type Model struct {
	control pagecontrol.Model
	zones   *zone.Manager
	keys    KeyMap
	help    help.Model
	events  *eventLog

	width    int
	height   int
	started  bool
	quitting bool
}

// New creates a player around a page control built from opts. The player
// installs its own event sink and mouse zones, overriding any given in opts.
func New(opts ...pagecontrol.Option) Model {
	zones := zone.New()
	events := newEventLog(maxEvents)

	all := make([]pagecontrol.Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, pagecontrol.WithSink(events), pagecontrol.WithZones(zones))

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.FullKey = helpKeyStyle

	return Model{
		control: pagecontrol.New(all...),
		zones:   zones,
		keys:    DefaultKeyMap(),
		help:    h,
		events:  events,
	}
}

// Control returns the hosted page control.
func (m Model) Control() pagecontrol.Model {
	return m.control
}

// Events returns the event log, oldest first.
func (m Model) Events() []Event {
	out := make([]Event, len(m.events.entries))
	copy(out, m.events.entries)
	return out
}

// Started reports whether playback has begun.
func (m Model) Started() bool {
	return m.started
}

// Close stops the mouse zone worker. Call it once the program has exited.
func (m Model) Close() {
	m.zones.Close()
}

// Init implements tea.Model. Playback waits for the first window size.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.started {
			m.started = true
			return m, m.control.StartFillAnimation()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.AutoPlay):
			m.control.SetAutoPlay(!m.control.AutoPlay())
			return m, nil
		case key.Matches(msg, m.keys.Rewind):
			return m, m.control.Rewind()
		}

	case pagecontrol.PageChangedMsg:
		if msg.ID == m.control.ID() {
			m.events.add(Event{Kind: EventPageChanged, Page: msg.Page})
		}
		return m, nil

	case pagecontrol.FillCompletedMsg:
		if msg.ID == m.control.ID() {
			m.events.add(Event{Kind: EventFillCompleted, Page: msg.Page})
		}
		return m, nil

	case pagecontrol.SequenceEndedMsg:
		// Already logged by the sink callback.
		return m, nil
	}

	var cmd tea.Cmd
	m.control, cmd = m.control.Update(msg)
	return m, cmd
}
