// Package indicator renders a single page dot: a pill-shaped run of terminal
// cells with a detachable stroke overlay that reveals fill progress.
package indicator

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs used to draw an indicator.
const (
	capLeft  = "◖"
	capRight = "◗"
	body     = "█"
)

// partialBlocks holds left-aligned eighth blocks, indexed by eighths covered.
var partialBlocks = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// Stroke is the fill overlay drawn across an expanded indicator.
// Progress runs from 0 (nothing revealed) to 1 (fully revealed).
type Stroke struct {
	Color    lipgloss.TerminalColor
	Progress float64
}

// Indicator is one page dot. It has no behavior of its own; the page
// controller drives its expansion and stroke.
type Indicator struct {
	height    int
	expansion float64
	color     lipgloss.TerminalColor
	stroke    *Stroke
}

// New creates an indicator with the given shared height in rows.
func New(height int, color lipgloss.TerminalColor) *Indicator {
	if height < 1 {
		height = 1
	}
	return &Indicator{height: height, color: color}
}

// Height returns the indicator height in rows.
func (i *Indicator) Height() int {
	return i.height
}

// DefaultWidth is the collapsed width in cells. Terminal cells are roughly
// twice as tall as they are wide, so a round dot is two cells per row.
func (i *Indicator) DefaultWidth() int {
	return 2 * i.height
}

// Width returns the current on-screen width in cells.
func (i *Indicator) Width() int {
	return i.DefaultWidth() + int(math.Round(i.expansion))
}

// Expansion returns the extra width applied on top of the default width.
func (i *Indicator) Expansion() float64 {
	return i.expansion
}

// SetExpansion sets the extra width. Negative amounts are treated as zero.
func (i *Indicator) SetExpansion(amount float64) {
	if amount < 0 {
		amount = 0
	}
	i.expansion = amount
}

// Color returns the base color.
func (i *Indicator) Color() lipgloss.TerminalColor {
	return i.color
}

// SetColor sets the base color.
func (i *Indicator) SetColor(c lipgloss.TerminalColor) {
	i.color = c
}

// AttachStroke puts s on top of the indicator, replacing any previous overlay.
func (i *Indicator) AttachStroke(s *Stroke) {
	i.stroke = s
}

// DetachStroke removes the overlay, if any.
func (i *Indicator) DetachStroke() {
	i.stroke = nil
}

// Stroke returns the attached overlay, or nil.
func (i *Indicator) Stroke() *Stroke {
	return i.stroke
}

// Render draws the indicator as height identical rows.
func (i *Indicator) Render() string {
	row := i.renderRow()
	if i.height == 1 {
		return row
	}
	rows := make([]string, i.height)
	for r := range rows {
		rows[r] = row
	}
	return strings.Join(rows, "\n")
}

func (i *Indicator) renderRow() string {
	w := i.Width()
	base := lipgloss.NewStyle().Foreground(i.color)

	var filled float64
	var fill lipgloss.Style
	if i.stroke != nil {
		filled = clamp01(i.stroke.Progress) * float64(w)
		fill = lipgloss.NewStyle().Foreground(i.stroke.Color)
	}

	var sb strings.Builder
	for cell := 0; cell < w; cell++ {
		coverage := clamp01(filled - float64(cell))
		glyph := body
		switch cell {
		case 0:
			glyph = capLeft
		case w - 1:
			glyph = capRight
		}

		switch {
		case coverage >= 1:
			sb.WriteString(fill.Render(glyph))
		case coverage <= 0:
			sb.WriteString(base.Render(glyph))
		case glyph != body:
			// Caps have no partial glyph; they flip at half coverage.
			if coverage >= 0.5 {
				sb.WriteString(fill.Render(glyph))
			} else {
				sb.WriteString(base.Render(glyph))
			}
		default:
			eighths := int(coverage * 8)
			if eighths == 0 {
				sb.WriteString(base.Render(glyph))
				continue
			}
			sb.WriteString(fill.Background(i.color).Render(partialBlocks[eighths]))
		}
	}
	return sb.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
