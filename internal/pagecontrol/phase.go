package pagecontrol

// Phase is the animation phase of the page control.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCollapsing
	PhaseExpanding
	PhaseFilling
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCollapsing:
		return "collapsing"
	case PhaseExpanding:
		return "expanding"
	case PhaseFilling:
		return "filling"
	default:
		return "unknown"
	}
}

// afterCollapse says what a Collapsing phase leads to.
type afterCollapse int

const (
	// thenExpand: a transition collapsed the previous page; expand the new one.
	thenExpand afterCollapse = iota
	// thenSettle: the current page finished filling; the cycle is over.
	thenSettle
)
