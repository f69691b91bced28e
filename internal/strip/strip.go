// Package strip lays out page indicators in a single horizontal row with
// uniform spacing and a shared height.
//
// The strip only reflows geometry. It has no notion of time; the page
// controller decides each indicator's expansion and the strip reports the
// resulting widths.
package strip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pagedots/internal/indicator"
)

// Strip is an ordered row of indicators.
type Strip struct {
	height     int
	spacing    int
	indicators []*indicator.Indicator
}

// New creates an empty strip. Height is in rows, spacing in cells.
func New(height, spacing int) *Strip {
	if height < 1 {
		height = 1
	}
	if spacing < 0 {
		spacing = 0
	}
	return &Strip{height: height, spacing: spacing}
}

// Rebuild discards every indicator and creates n fresh, collapsed ones.
// n <= 0 leaves the strip empty.
func (s *Strip) Rebuild(n int, color lipgloss.TerminalColor) {
	if n <= 0 {
		s.indicators = nil
		return
	}
	s.indicators = make([]*indicator.Indicator, n)
	for i := range s.indicators {
		s.indicators[i] = indicator.New(s.height, color)
	}
}

// Len returns the number of indicators.
func (s *Strip) Len() int {
	return len(s.indicators)
}

// At returns the indicator at index i, or nil when out of range.
func (s *Strip) At(i int) *indicator.Indicator {
	if i < 0 || i >= len(s.indicators) {
		return nil
	}
	return s.indicators[i]
}

// Height returns the shared indicator height in rows.
func (s *Strip) Height() int {
	return s.height
}

// DefaultWidth is the collapsed width every indicator shares.
func (s *Strip) DefaultWidth() int {
	return 2 * s.height
}

// Spacing returns the gap between indicators in cells.
func (s *Strip) Spacing() int {
	return s.spacing
}

// SetSpacing changes the gap between indicators. Negative values become 0.
func (s *Strip) SetSpacing(spacing int) {
	if spacing < 0 {
		spacing = 0
	}
	s.spacing = spacing
}

// SetExpansion sets the extra width of the indicator at i.
func (s *Strip) SetExpansion(i int, amount float64) {
	if ind := s.At(i); ind != nil {
		ind.SetExpansion(amount)
	}
}

// Expansion returns the extra width of the indicator at i.
func (s *Strip) Expansion(i int) float64 {
	if ind := s.At(i); ind != nil {
		return ind.Expansion()
	}
	return 0
}

// Width returns the on-screen width of the indicator at i, or 0 when out of range.
func (s *Strip) Width(i int) int {
	if ind := s.At(i); ind != nil {
		return ind.Width()
	}
	return 0
}

// TotalWidth is the width of the whole row including gaps.
func (s *Strip) TotalWidth() int {
	if len(s.indicators) == 0 {
		return 0
	}
	total := s.spacing * (len(s.indicators) - 1)
	for _, ind := range s.indicators {
		total += ind.Width()
	}
	return total
}

// SetColor recolors every indicator.
func (s *Strip) SetColor(c lipgloss.TerminalColor) {
	for _, ind := range s.indicators {
		ind.SetColor(c)
	}
}

// Render draws the row. mark, when non-nil, wraps each rendered indicator,
// which is how callers attach mouse zones.
func (s *Strip) Render(mark func(i int, rendered string) string) string {
	if len(s.indicators) == 0 {
		return ""
	}

	gap := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", s.spacing)+"\n", s.height), "\n")

	parts := make([]string, 0, 2*len(s.indicators)-1)
	for i, ind := range s.indicators {
		if i > 0 && s.spacing > 0 {
			parts = append(parts, gap)
		}
		rendered := ind.Render()
		if mark != nil {
			rendered = mark(i, rendered)
		}
		parts = append(parts, rendered)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
