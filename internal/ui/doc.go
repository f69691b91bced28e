// Package ui holds the shared terminal palette and symbols for pagedots.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorPageTint        (gray)  - Idle page indicators
//	ColorCurrentPageTint (green) - Fill stroke of the current page
//	ColorSuccess         (green) - "Completed" label, ended events
//	ColorError           (red)   - CLI error marker
//	ColorInfo            (cyan)  - Autoplay enabled
//	ColorPrimary         (white) - Page label
//	ColorSecondary       (blue)  - Help key bindings
//	ColorMuted           (gray)  - Secondary text, event log
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
package ui
