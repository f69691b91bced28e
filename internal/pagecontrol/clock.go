package pagecontrol

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock is the page control's source of time. The default uses the wall
// clock and tea.Tick; tests substitute a virtual clock.
type Clock interface {
	Now() time.Time
	Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

type teaClock struct{}

func (teaClock) Now() time.Time { return time.Now() }

func (teaClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}
