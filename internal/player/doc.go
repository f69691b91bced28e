// Package player implements the full-screen pagedots demo.
//
// The player hosts a single pagecontrol.Model, centers it on screen with a
// page label, and keeps a short log of everything the control reports.
//
// # Message Flow
//
//  1. The first tea.WindowSizeMsg marks the control as visible and starts
//     the fill of the current page.
//  2. Phase completions and animation frames are forwarded to the control.
//  3. PageChangedMsg and FillCompletedMsg from the control, plus the event
//     sink callbacks, are appended to the event log.
//  4. View() renders the label, the indicators, the log and the help footer,
//     then resolves mouse zones with bubblezone.
//
// # Keyboard Shortcuts
//
//	space, enter  - (Re)start the current page's fill
//	←/h, →/l      - Tap the previous or next page
//	1-9           - Tap a page
//	a             - Toggle autoplay
//	r             - Rewind to the first page
//	q, Ctrl+C     - Quit
package player
