package ui

// Unicode symbols for CLI status lines.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolPending = "○"
	SymbolDone    = "●"
)
