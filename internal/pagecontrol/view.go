package pagecontrol

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// View renders the indicator row. With WithZones, each indicator is wrapped
// in a zone mark.
func (m Model) View() string {
	if m.zones == nil {
		return m.strip.Render(nil)
	}
	return m.strip.Render(func(i int, rendered string) string {
		return m.zones.Mark(m.zoneID(i), rendered)
	})
}

func (m Model) zoneID(i int) string {
	return m.zonePrefix + "indicator_" + strconv.Itoa(i)
}

// hit resolves a mouse release to the indicator under it.
func (m Model) hit(msg tea.MouseMsg) (int, bool) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease {
		return 0, false
	}
	for i := 0; i < m.strip.Len(); i++ {
		if z := m.zones.Get(m.zoneID(i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}
