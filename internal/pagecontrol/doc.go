// Package pagecontrol provides a Bubble Tea page indicator: a row of dots, one
// per page, where the current page's dot grows into a pill and fills with a
// stroke over a configurable duration, then optionally advances to the next
// page.
//
// # Cycle
//
// Every activation of a page runs the same phases:
//
//	Collapsing(previous) -> Expanding(current) -> Filling(current) -> Collapsing(current)
//
// SetCurrentPage starts at the first Collapsing. StartFillAnimation skips it
// and starts at Expanding. When the trailing collapse finishes, the last page
// reports OnSequenceEnded to the EventSink; any other page advances when
// autoplay is on.
//
// # Cancellation
//
// Every scheduled phase completion and animation frame carries the generation
// it was scheduled under. Starting a new cycle, tapping another page, or
// rebuilding the page set bumps the generation and detaches the active stroke,
// so stale completions are dropped and an interrupted page never reports a
// completed fill.
//
// # Usage
//
// Setters that start a phase return tea.Cmds that the host program must return
// from its own Update, and the host must forward messages to the control:
//
//	pc := pagecontrol.New(pagecontrol.WithPages(5), pagecontrol.WithAutoPlay(true))
//	...
//	case tea.WindowSizeMsg:
//		return m, m.pc.StartFillAnimation()
//	default:
//		m.pc, cmd = m.pc.Update(msg)
//
// Page changes caused by a tap or an autoplay advance are reported as
// PageChangedMsg; programmatic SetCurrentPage calls are not.
package pagecontrol
