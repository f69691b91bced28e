package pagecontrol

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rileyhilliard/pagedots/internal/logger"
)

// Option configures a Model in New.
type Option func(*Model)

// WithPages sets the initial number of pages.
func WithPages(n int) Option {
	return func(m *Model) { m.initialPages = n }
}

// WithHeight sets the indicator height in rows. The collapsed width is
// twice the height.
func WithHeight(rows int) Option {
	return func(m *Model) {
		if rows >= 1 {
			m.height = rows
		}
	}
}

// WithSpacing sets the gap between indicators in cells.
func WithSpacing(cells int) Option {
	return func(m *Model) { m.spacing = cells }
}

// WithAutoPlay turns automatic advancing on or off.
func WithAutoPlay(on bool) Option {
	return func(m *Model) { m.autoPlay = on }
}

// WithFillDurations sets the per-page fill durations.
func WithFillDurations(d ...time.Duration) Option {
	return func(m *Model) { m.SetFillDurations(d) }
}

// WithCollapseDuration sets how long an indicator takes to shrink back to a dot.
func WithCollapseDuration(d time.Duration) Option {
	return func(m *Model) { m.SetCollapseDuration(d) }
}

// WithExpandDuration sets how long an indicator takes to grow into a pill.
func WithExpandDuration(d time.Duration) Option {
	return func(m *Model) { m.SetExpandDuration(d) }
}

// WithTints sets the page and current-page colors.
func WithTints(page, current lipgloss.TerminalColor) Option {
	return func(m *Model) {
		m.pageTint = page
		m.currentTint = current
	}
}

// WithSink sets the event sink.
func WithSink(s EventSink) Option {
	return func(m *Model) { m.SetSink(s) }
}

// WithLogger sets the logger used for validation warnings.
func WithLogger(l logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(m *Model) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithZones enables mouse taps. The host must run zones.Scan over its final
// view for the indicator zones to resolve.
func WithZones(zones *zone.Manager) Option {
	return func(m *Model) {
		m.zones = zones
		if zones != nil {
			m.zonePrefix = zones.NewPrefix()
		}
	}
}
